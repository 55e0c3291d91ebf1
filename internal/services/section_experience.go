package services

import (
	"fmt"
	"regexp"
	"time"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

var (
	yearPattern       = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	quantifiedPattern = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+\+?\s*(?:year|month|client|customer|user|project|team|member|employee)`)
)

// gapThresholdMonths is how far apart two merged employment ranges may sit
// before the scorer flags a gap.
const gapThresholdMonths = 6

// experienceScorer reads the work history: date ranges, total tenure with
// overlapping roles counted once, continuity, job titles, and quantified
// achievements.
type experienceScorer struct {
	vocab *vocab.Vocabulary
	now   func() time.Time
}

func NewExperienceScorer(v *vocab.Vocabulary) SectionScorer {
	return &experienceScorer{vocab: v, now: time.Now}
}

func (s *experienceScorer) Score(doc *models.ExtractedDocument) models.SectionResult {
	if doc.IsEmpty() {
		return insufficientResult(SectionExperience, "💼")
	}

	score := 0.0
	var findings, recs []string
	details := map[string]any{}

	now := s.now()
	ranges := ExtractDateRanges(doc.RawText, now)
	merged := MergeRanges(ranges)

	if len(ranges) > 0 {
		findings = append(findings, fmt.Sprintf("Found %s in work history", countNoun(len(ranges), "date range")))
		score += 30
		texts := make([]string, 0, len(ranges))
		for _, r := range ranges {
			texts = append(texts, r.Text)
		}
		details["date_ranges"] = texts
	} else {
		findings = append(findings, "No date ranges found in work experience")
		recs = append(recs, "Include clear start and end dates for each role (e.g., 'Jan 2020 - Present').")
	}

	tenureMonths := TotalMonths(merged)
	if tenureMonths > 0 {
		tenureYears := float64(tenureMonths) / 12
		details["tenure_months"] = tenureMonths
		if tenureYears >= 1 {
			findings = append(findings, fmt.Sprintf("Approximately %.1f year(s) of total tenure (overlapping roles counted once)", tenureYears))
			score += 20
		} else {
			findings = append(findings, "Experience timeline appears very short")
			score += 5
		}
	} else if years := yearPattern.FindAllString(doc.RawText, -1); len(years) >= 2 {
		// No parseable ranges; fall back to the year span.
		span := yearSpan(years)
		details["estimated_years"] = span
		if span > 0 {
			findings = append(findings, fmt.Sprintf("Estimated ~%d year(s) of experience span", span))
			score += 10
		}
	}

	if gap := LargestGapMonths(merged); gap > gapThresholdMonths {
		findings = append(findings, fmt.Sprintf("Possible employment gap of ~%d months between roles", gap))
		recs = append(recs, "Explain significant employment gaps, or use years-only dates if the gap is short.")
		details["largest_gap_months"] = gap
	} else if len(ranges) >= 2 {
		findings = append(findings, "Multiple roles with continuous dates detected, good for showing progression")
		score += 15
	} else if len(ranges) == 1 {
		findings = append(findings, "Only one role detected")
		recs = append(recs, "If you have multiple roles, make sure each has clear date ranges.")
		score += 5
	}

	titles := matchTitles(doc.NormalizedText, s.vocab.TitleKeywords)
	if len(titles) > 0 {
		findings = append(findings, fmt.Sprintf("Job title keywords detected: %s", joinFirst(titles, 8)))
		score += 15
		details["title_keywords"] = titles
	} else {
		findings = append(findings, "No clear job title keywords detected")
		recs = append(recs, "Use standard job titles (e.g., 'Software Engineer', 'Marketing Manager').")
		score += 5
	}

	quantified := quantifiedPattern.FindAllString(doc.RawText, -1)
	if len(quantified) > 0 {
		findings = append(findings, fmt.Sprintf("%s found", countNoun(len(quantified), "quantified achievement")))
		score += 20
		if len(quantified) > 8 {
			quantified = quantified[:8]
		}
		details["quantified"] = quantified
	} else {
		findings = append(findings, "No quantified achievements found")
		recs = append(recs, "Add measurable results (e.g., 'increased sales by 30%', 'managed team of 12').")
	}

	return models.SectionResult{
		Name:            SectionExperience,
		Score:           clampScore(roundScore(score)),
		Icon:            "💼",
		Findings:        findings,
		Recommendations: recs,
		Details:         details,
	}
}

func matchTitles(normalizedText string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if containsTerm(normalizedText, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func yearSpan(years []string) int {
	min, max := 0, 0
	for _, y := range years {
		v := 0
		fmt.Sscanf(y, "%d", &v)
		if min == 0 || v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
