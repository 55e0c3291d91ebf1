package services

import (
	"fmt"
	"strings"

	"resumeats/checker/internal/models"
)

// Section names are part of the frontend contract.
const (
	SectionKeyword    = "Keyword Matching"
	SectionFormatting = "Formatting & Parseability"
	SectionContact    = "Contact Information"
	SectionExperience = "Work Experience & Longevity"
	SectionEducation  = "Education & Certifications"
	SectionSemantic   = "Semantic Analysis"
)

// SectionScorer turns a parsed document into one 0-100 section result. A
// scorer never returns an error: malformed or empty input degrades to a low
// score with an explanatory finding.
type SectionScorer interface {
	Score(doc *models.ExtractedDocument) models.SectionResult
}

// insufficientResult is the shared empty-input outcome for every scorer.
func insufficientResult(name, icon string) models.SectionResult {
	return models.SectionResult{
		Name:  name,
		Score: 0,
		Icon:  icon,
		Findings: []string{
			"Insufficient text extracted to analyze this section.",
		},
		Recommendations: []string{
			"Upload a resume with selectable text; image-only files cannot be read by ATS software.",
		},
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func roundScore(score float64) float64 {
	return float64(int(score*10+0.5)) / 10
}

// joinFirst renders up to n items as a comma list.
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func countNoun(n int, noun string) string {
	return fmt.Sprintf("%d %s(s)", n, noun)
}
