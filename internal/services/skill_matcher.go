package services

import (
	"sort"
	"strings"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

// SkillMatcher finds the canonical skills present in normalized text. It is a
// pure function of (text, vocabulary): case-insensitive, order-independent,
// and deduplicated to canonical names.
type SkillMatcher interface {
	Match(normalizedText string) models.SkillMatches
	HardSkills(normalizedText string) []string
}

type skillMatcher struct {
	vocab *vocab.Vocabulary
}

func NewSkillMatcher(v *vocab.Vocabulary) SkillMatcher {
	return &skillMatcher{vocab: v}
}

func (m *skillMatcher) Match(text string) models.SkillMatches {
	found := make(map[string]bool)

	// Exact and stem matches against the canonical lists.
	for _, skill := range m.vocab.HardSkills {
		if containsTerm(text, skill) {
			found[skill] = true
		}
	}
	for _, skill := range m.vocab.SoftSkills {
		if containsTerm(text, skill) {
			found[skill] = true
		}
	}

	// Surface forms resolve to their canonical skill.
	for surface, canonical := range m.vocab.Synonyms {
		if containsTerm(text, surface) {
			found[canonical] = true
		}
	}

	var matches models.SkillMatches
	for skill := range found {
		switch {
		case m.vocab.IsHardSkill(skill):
			matches.HardSkills = append(matches.HardSkills, skill)
		case m.vocab.IsSoftSkill(skill):
			matches.SoftSkills = append(matches.SoftSkills, skill)
		}
	}

	for _, title := range m.vocab.TitleKeywords {
		if containsTerm(text, title) {
			matches.Titles = append(matches.Titles, title)
		}
	}

	sort.Strings(matches.HardSkills)
	sort.Strings(matches.SoftSkills)
	sort.Strings(matches.Titles)
	return matches
}

func (m *skillMatcher) HardSkills(text string) []string {
	return m.Match(text).HardSkills
}

// containsTerm reports whether term occurs in text on word boundaries.
// Terms ending in a letter also match their simple plural ("docker" matches
// "dockers", "certification" matches "certifications").
func containsTerm(text, term string) bool {
	return indexOfTerm(text, term) >= 0
}

// indexOfTerm returns the offset of the first word-bounded occurrence of
// term in text, or -1. Substring hits inside larger words do not count:
// "go" is not found in "good".
func indexOfTerm(text, term string) int {
	if term == "" {
		return -1
	}
	start := 0
	for {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return -1
		}
		idx += start
		if boundedAt(text, idx, len(term)) {
			return idx
		}
		start = idx + 1
	}
}

// countTerm counts word-bounded occurrences of term in text.
func countTerm(text, term string) int {
	count := 0
	start := 0
	for {
		idx := indexOfTerm(text[start:], term)
		if idx < 0 {
			return count
		}
		count++
		start += idx + len(term)
	}
}

// boundedAt checks word boundaries around text[idx : idx+n], allowing a
// trailing "s" or "es" on the right.
func boundedAt(text string, idx, n int) bool {
	if idx > 0 && isWordChar(text[idx-1]) {
		return false
	}
	end := idx + n
	if end >= len(text) {
		return true
	}
	if !isWordChar(text[end]) {
		return true
	}
	// Plural tolerance.
	rest := text[end:]
	for _, suffix := range []string{"s", "es"} {
		if strings.HasPrefix(rest, suffix) {
			after := end + len(suffix)
			if after >= len(text) || !isWordChar(text[after]) {
				return true
			}
		}
	}
	return false
}

// isWordChar treats letters, digits, '+' and '#' as part of a word so that
// "c++" and "c#" do not bleed into neighbors, while "go," still matches.
func isWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '#':
		return true
	}
	return false
}
