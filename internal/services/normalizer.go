package services

import (
	"strings"
	"unicode"

	"resumeats/checker/internal/models"
)

// Normalizer cleans raw extracted text for downstream matching. It never
// fails: empty or whitespace-only input yields a valid document with a zero
// word count, and the scorers handle that case themselves.
type Normalizer interface {
	Normalize(raw string) *models.ExtractedDocument
}

type normalizer struct{}

func NewNormalizer() Normalizer {
	return &normalizer{}
}

func (n *normalizer) Normalize(raw string) *models.ExtractedDocument {
	cleaned := stripControl(raw)

	normalized := strings.ToLower(cleaned)
	normalized = collapseSpaces(normalized)

	return &models.ExtractedDocument{
		RawText:        cleaned,
		NormalizedText: normalized,
		WordCount:      len(strings.Fields(normalized)),
		CharCount:      len(cleaned),
	}
}

// stripControl removes control characters except newlines and tabs, which
// the formatting scorer inspects, and normalizes line endings.
func stripControl(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// collapseSpaces reduces runs of spaces and tabs within a line to a single
// space. Line breaks are kept so heading detection still works per line.
func collapseSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
