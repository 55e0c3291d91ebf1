package services

import (
	"fmt"
	"regexp"
	"sort"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

var gpaPattern = regexp.MustCompile(`(?:gpa|grade|cgpa)[\s:]*(\d\.\d+)`)

// educationScorer looks for degree levels, certifications, institution names
// and GPA mentions.
type educationScorer struct {
	vocab *vocab.Vocabulary
}

func NewEducationScorer(v *vocab.Vocabulary) SectionScorer {
	return &educationScorer{vocab: v}
}

func (s *educationScorer) Score(doc *models.ExtractedDocument) models.SectionResult {
	if doc.IsEmpty() {
		return insufficientResult(SectionEducation, "🎓")
	}

	score := 0.0
	var findings, recs []string
	details := map[string]any{}

	text := doc.NormalizedText

	degrees, maxLevel := detectDegrees(text, s.vocab.DegreeLevels)
	if len(degrees) > 0 {
		findings = append(findings, fmt.Sprintf("Highest education level detected: %s", vocab.DegreeName(maxLevel)))
		findings = append(findings, fmt.Sprintf("Degree keywords found: %s", joinFirst(degrees, 8)))
		score += 40
		details["degree_level"] = maxLevel
		details["degree_keywords"] = degrees
	} else {
		findings = append(findings, "No degree keywords detected")
		recs = append(recs, "Include your degree type (e.g., 'Bachelor of Science', 'MBA').")
		details["degree_level"] = 0
	}

	var certs []string
	for _, cert := range s.vocab.Certifications {
		if containsTerm(text, cert) {
			certs = append(certs, cert)
		}
	}
	if len(certs) > 0 {
		findings = append(findings, fmt.Sprintf("%s detected: %s", countNoun(len(certs), "certification"), joinFirst(certs, 8)))
		score += 35
		details["certifications"] = certs
	} else {
		findings = append(findings, "No specific certifications detected")
		recs = append(recs, "Add relevant certifications (e.g., PMP, AWS Certified, CPA) if you have them.")
		score += 10
	}

	hasInstitution := false
	for _, kw := range s.vocab.Institutions {
		if containsTerm(text, kw) {
			hasInstitution = true
			break
		}
	}
	if hasInstitution {
		findings = append(findings, "Educational institution name found")
		score += 15
	} else {
		findings = append(findings, "No educational institution name detected")
		recs = append(recs, "Include the name of your university or college.")
	}

	if m := gpaPattern.FindStringSubmatch(text); m != nil {
		findings = append(findings, fmt.Sprintf("GPA mentioned: %s", m[1]))
		score += 10
		details["gpa"] = m[1]
	}

	return models.SectionResult{
		Name:            SectionEducation,
		Score:           clampScore(roundScore(score)),
		Icon:            "🎓",
		Findings:        findings,
		Recommendations: recs,
		Details:         details,
	}
}

// detectDegrees returns the degree keywords present and the highest level
// among them.
func detectDegrees(normalizedText string, levels map[string]int) ([]string, int) {
	var found []string
	maxLevel := 0
	for keyword, level := range levels {
		if containsTerm(normalizedText, keyword) {
			found = append(found, keyword)
			if level > maxLevel {
				maxLevel = level
			}
		}
	}
	sort.Strings(found)
	return found, maxLevel
}
