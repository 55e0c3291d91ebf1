package services

import (
	"fmt"
	"regexp"
	"strings"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

var decorativeChars = regexp.MustCompile(`[│┃┆┇┊┋╎╏║╟╢╫╬▶►▸▹◆◇○●■□★☆♦♣♠♥→←↑↓⇒⇐]`)

// formattingScorer checks how cleanly an ATS parser would read the layout:
// standard headings present, sensible length, no table artifacts or
// decorative glyphs.
type formattingScorer struct {
	vocab *vocab.Vocabulary
}

func NewFormattingScorer(v *vocab.Vocabulary) SectionScorer {
	return &formattingScorer{vocab: v}
}

func (s *formattingScorer) Score(doc *models.ExtractedDocument) models.SectionResult {
	if doc.IsEmpty() {
		return insufficientResult(SectionFormatting, "📄")
	}

	score := 100.0
	var findings, recs []string

	found := detectHeadings(doc.NormalizedText, s.vocab.Sections.All)

	if containsAny(found, s.vocab.Sections.Experience) {
		findings = append(findings, "Work Experience section found")
	} else {
		findings = append(findings, "No standard 'Work Experience' heading detected")
		recs = append(recs, "Add a clear 'Work Experience' or 'Professional Experience' section heading.")
		score -= 25
	}

	if containsAny(found, s.vocab.Sections.Education) {
		findings = append(findings, "Education section found")
	} else {
		findings = append(findings, "No standard 'Education' heading detected")
		recs = append(recs, "Add a clear 'Education' section heading.")
		score -= 20
	}

	if containsAny(found, s.vocab.Sections.Skills) {
		findings = append(findings, "Skills section found")
	} else {
		findings = append(findings, "No standard 'Skills' heading detected")
		recs = append(recs, "Add a dedicated 'Skills' or 'Technical Skills' section.")
		score -= 15
	}

	switch {
	case doc.WordCount < 100:
		findings = append(findings, fmt.Sprintf("Resume is very short (%d words)", doc.WordCount))
		recs = append(recs, "Your resume seems too brief. Aim for at least 300-600 words.")
		score -= 20
	case doc.WordCount < 300:
		findings = append(findings, fmt.Sprintf("Resume is somewhat short (%d words)", doc.WordCount))
		recs = append(recs, "Consider adding more detail to your experience and skills.")
		score -= 10
	default:
		findings = append(findings, fmt.Sprintf("Good length (%d words)", doc.WordCount))
	}

	specials := len(decorativeChars.FindAllString(doc.RawText, -1))
	if specials > 5 {
		findings = append(findings, fmt.Sprintf("Found %d special/decorative characters", specials))
		recs = append(recs, "Remove decorative symbols and special characters that may confuse ATS parsers.")
		score -= 10
	}

	tabs := strings.Count(doc.RawText, "\t")
	if tabs > 20 {
		findings = append(findings, "Possible table-based layout detected (many tab characters)")
		recs = append(recs, "Avoid table-based layouts. Use a simple, linear format instead.")
		score -= 10
	}

	findings = append(findings, fmt.Sprintf("Detected %s", countNoun(len(found), "standard section heading")))

	return models.SectionResult{
		Name:            SectionFormatting,
		Score:           clampScore(roundScore(score)),
		Icon:            "📄",
		Findings:        findings,
		Recommendations: recs,
		Details: map[string]any{
			"sections_found": found,
			"word_count":     doc.WordCount,
			"special_chars":  specials,
		},
	}
}

// detectHeadings returns the standard headings that appear alone on a line,
// with an optional trailing colon.
func detectHeadings(normalizedText string, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, h := range known {
		knownSet[h] = true
	}

	var found []string
	for _, line := range strings.Split(normalizedText, "\n") {
		stripped := strings.TrimSuffix(strings.TrimSpace(line), ":")
		if knownSet[stripped] {
			found = append(found, stripped)
		}
	}
	return found
}

func containsAny(haystack, needles []string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}
