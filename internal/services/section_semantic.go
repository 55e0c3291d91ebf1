package services

import (
	"fmt"
	"regexp"
	"sort"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

var (
	pronounPattern = regexp.MustCompile(`\b(?:I|me|my|myself)\b`)
	bulletPattern  = regexp.MustCompile(`(?m)^\s*[•\-\*▪▸►]\s`)

	// Achievements with surrounding context, not just a bare number.
	contextualPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:increased|decreased|reduced|improved|grew|boosted|cut|saved|generated|delivered|achieved)\s+\S+(?:\s+\S+)*?\d+`),
		regexp.MustCompile(`\d+%\s+(?:increase|decrease|improvement|growth|reduction)`),
		regexp.MustCompile(`\$[\d,.]+\s*(?:million|billion|k|m|b|revenue|savings|budget)`),
		regexp.MustCompile(`\d+\s*(?:clients|customers|users|projects|products|teams)`),
	}
)

// semanticScorer judges the writing itself: action verbs, achievements with
// metrics, first-person pronouns, buzzword density, bullet usage.
type semanticScorer struct {
	vocab *vocab.Vocabulary
}

func NewSemanticScorer(v *vocab.Vocabulary) SectionScorer {
	return &semanticScorer{vocab: v}
}

func (s *semanticScorer) Score(doc *models.ExtractedDocument) models.SectionResult {
	if doc.IsEmpty() {
		return insufficientResult(SectionSemantic, "🧠")
	}

	score := 0.0
	var findings, recs []string
	details := map[string]any{}

	var verbs []string
	for _, v := range s.vocab.ActionVerbs {
		if containsTerm(doc.NormalizedText, v) {
			verbs = append(verbs, v)
		}
	}
	sort.Strings(verbs)
	switch {
	case len(verbs) >= 8:
		findings = append(findings, fmt.Sprintf("Strong use of action verbs (%d found)", len(verbs)))
		score += 30
	case len(verbs) >= 4:
		findings = append(findings, fmt.Sprintf("Good use of action verbs (%d found)", len(verbs)))
		score += 20
	case len(verbs) > 0:
		findings = append(findings, fmt.Sprintf("Limited action verb usage (%d found)", len(verbs)))
		recs = append(recs, "Use more action verbs like 'achieved', 'implemented', 'led', 'optimized'.")
		score += 10
	default:
		findings = append(findings, "No strong action verbs found")
		recs = append(recs, "Start bullet points with powerful action verbs: 'Developed', 'Managed', 'Increased', etc.")
	}
	details["action_verbs"] = verbs

	var contextual []string
	for _, p := range contextualPatterns {
		contextual = append(contextual, p.FindAllString(doc.NormalizedText, -1)...)
	}
	if len(contextual) > 0 {
		findings = append(findings, fmt.Sprintf("%s with metrics found", countNoun(len(contextual), "contextual achievement")))
		score += 30
		if len(contextual) > 8 {
			contextual = contextual[:8]
		}
		details["contextual_achievements"] = contextual
	} else {
		findings = append(findings, "No contextual achievements with metrics detected")
		recs = append(recs, "Provide context for your skills: 'Increased sales by 20%' instead of just listing 'Sales'.")
	}

	pronouns := len(pronounPattern.FindAllString(doc.RawText, -1))
	switch {
	case pronouns == 0:
		findings = append(findings, "No first-person pronouns (good ATS practice)")
		score += 15
	case pronouns <= 3:
		findings = append(findings, fmt.Sprintf("%s found", countNoun(pronouns, "first-person pronoun")))
		recs = append(recs, "Minimize first-person pronouns (I, me, my). ATS resumes should use implied subject.")
		score += 8
	default:
		findings = append(findings, fmt.Sprintf("%d first-person pronouns found, too many", pronouns))
		recs = append(recs, "Remove first-person pronouns. Instead of 'I managed a team', write 'Managed a team of...'")
	}

	var buzz []string
	for _, b := range s.vocab.Buzzwords {
		if containsTerm(doc.NormalizedText, b) {
			buzz = append(buzz, b)
		}
	}
	if len(buzz) > 0 {
		findings = append(findings, fmt.Sprintf("%s detected: %s", countNoun(len(buzz), "corporate buzzword"), joinFirst(buzz, 8)))
		recs = append(recs, "Replace vague buzzwords with specific, measurable language.")
		score += 5
	} else {
		findings = append(findings, "No excessive corporate buzzwords")
		score += 15
	}

	bullets := len(bulletPattern.FindAllString(doc.RawText, -1))
	switch {
	case bullets >= 5:
		findings = append(findings, fmt.Sprintf("Good use of bullet points (%d found)", bullets))
		score += 10
	case bullets > 0:
		findings = append(findings, fmt.Sprintf("Some bullet points found (%d)", bullets))
		score += 5
	default:
		findings = append(findings, "No bullet points detected")
		recs = append(recs, "Use bullet points (• or -) to organize your experience for better readability.")
	}

	return models.SectionResult{
		Name:            SectionSemantic,
		Score:           clampScore(roundScore(score)),
		Icon:            "🧠",
		Findings:        findings,
		Recommendations: recs,
		Details:         details,
	}
}
