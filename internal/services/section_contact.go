package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"resumeats/checker/internal/models"
)

// Contact field patterns, named so each is testable on its own. Extraction
// runs against the raw text: emails and URLs are case-preserving.
var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-.]?)?\(?\d{2,4}\)?[\s\-.]?\d{3,4}[\s\-.]?\d{3,4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`),              // ZIP code
		regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`),       // City, ST
		regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z][a-z]+\b`),    // City, Country
	}
)

// contactScorer checks the resume exposes the fields recruiters filter on:
// email and phone are essential, LinkedIn, name and location add the rest.
type contactScorer struct{}

func NewContactScorer() SectionScorer {
	return &contactScorer{}
}

func (s *contactScorer) Score(doc *models.ExtractedDocument) models.SectionResult {
	if doc.IsEmpty() {
		return insufficientResult(SectionContact, "📇")
	}

	score := 0.0
	var findings, recs []string
	details := map[string]any{}

	if email := emailPattern.FindString(doc.RawText); email != "" {
		details["email"] = email
		findings = append(findings, fmt.Sprintf("Email found: %s", email))
		score += 25
	} else {
		findings = append(findings, "No email address found")
		recs = append(recs, "Add your professional email address.")
	}

	if phone := strings.TrimSpace(phonePattern.FindString(doc.RawText)); phone != "" {
		details["phone"] = phone
		findings = append(findings, fmt.Sprintf("Phone number found: %s", phone))
		score += 25
	} else {
		findings = append(findings, "No phone number found")
		recs = append(recs, "Add your phone number with country code.")
	}

	if link := linkedinPattern.FindString(doc.RawText); link != "" {
		details["linkedin"] = link
		findings = append(findings, "LinkedIn profile found")
		score += 25
	} else {
		findings = append(findings, "No LinkedIn URL found")
		recs = append(recs, "Add your LinkedIn profile URL (linkedin.com/in/yourname).")
		score += 5
	}

	if name := detectName(doc.RawText); name != "" {
		details["name"] = name
		findings = append(findings, fmt.Sprintf("Name detected: %s", name))
		score += 15
	} else {
		findings = append(findings, "Could not confidently detect name at the top of resume")
		recs = append(recs, "Place your full name prominently at the top of your resume.")
		score += 5
	}

	if loc := detectLocation(doc.RawText); loc != "" {
		details["location"] = loc
		findings = append(findings, "Location/address info found")
		score += 10
	} else {
		findings = append(findings, "No location information detected")
		recs = append(recs, "Add your city and state/country for location-based filtering.")
	}

	return models.SectionResult{
		Name:            SectionContact,
		Score:           clampScore(roundScore(score)),
		Icon:            "📇",
		Findings:        findings,
		Recommendations: recs,
		Details:         details,
	}
}

// detectName applies a heuristic to the first non-empty line: one to five
// words, each alphabetic word capitalized.
func detectName(rawText string) string {
	var first string
	for _, line := range strings.Split(rawText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			first = trimmed
			break
		}
	}
	if first == "" {
		return ""
	}

	words := strings.Fields(first)
	if len(words) < 1 || len(words) > 5 {
		return ""
	}
	for _, w := range words {
		if !isAlphaWord(w) {
			continue
		}
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return ""
		}
	}
	return first
}

func detectLocation(rawText string) string {
	for _, p := range locationPatterns {
		if loc := p.FindString(rawText); loc != "" {
			return loc
		}
	}
	return ""
}

func isAlphaWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
