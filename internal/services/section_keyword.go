package services

import (
	"fmt"

	"resumeats/checker/internal/models"
)

// keywordScorer rates skill coverage: eight hard skills or four soft skills
// reach the cap for their part, blended 70/30 in favor of hard skills.
type keywordScorer struct {
	matcher SkillMatcher
}

func NewKeywordScorer(matcher SkillMatcher) SectionScorer {
	return &keywordScorer{matcher: matcher}
}

func (s *keywordScorer) Score(doc *models.ExtractedDocument) models.SectionResult {
	if doc.IsEmpty() {
		return insufficientResult(SectionKeyword, "🔑")
	}

	matches := s.matcher.Match(doc.NormalizedText)
	hard := matches.HardSkills
	soft := matches.SoftSkills

	hardScore := clampScore(float64(len(hard)) / 8 * 100)
	softScore := clampScore(float64(len(soft)) / 4 * 100)
	score := hardScore*0.7 + softScore*0.3

	var findings, recs []string
	if len(hard) > 0 {
		findings = append(findings, fmt.Sprintf("Found %s: %s", countNoun(len(hard), "hard skill"), joinFirst(hard, 15)))
	} else {
		findings = append(findings, "No recognizable hard skills found. Add specific tools, technologies, and methodologies.")
	}
	if len(soft) > 0 {
		findings = append(findings, fmt.Sprintf("Found %s: %s", countNoun(len(soft), "soft skill"), joinFirst(soft, 10)))
	} else {
		findings = append(findings, "No soft skills detected. Consider adding communication, leadership, or teamwork keywords.")
	}

	if len(hard) < 5 {
		recs = append(recs, "Add more specific technical skills and tools relevant to your target role.")
	}
	if len(soft) < 3 {
		recs = append(recs, "Include soft skills like 'collaboration', 'problem solving', or 'leadership'.")
	}

	return models.SectionResult{
		Name:            SectionKeyword,
		Score:           roundScore(score),
		Icon:            "🔑",
		Findings:        findings,
		Recommendations: recs,
		Details: map[string]any{
			"hard_skills": hard,
			"soft_skills": soft,
			"hard_count":  len(hard),
			"soft_count":  len(soft),
		},
	}
}
