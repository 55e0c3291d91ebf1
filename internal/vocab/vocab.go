// Package vocab holds the skill and keyword vocabularies the scoring engine
// matches against. A Vocabulary is loaded once at startup, never mutated, and
// injected by reference into every service that needs it, so unsynchronized
// concurrent reads are safe.
package vocab

// Vocabulary is the full set of term lists used by the analyzers. All terms
// are stored lower-cased; matching happens against normalized text.
type Vocabulary struct {
	HardSkills     []string          `mapstructure:"hard_skills"`
	SoftSkills     []string          `mapstructure:"soft_skills"`
	TitleKeywords  []string          `mapstructure:"title_keywords"`
	Synonyms       map[string]string `mapstructure:"synonyms"`
	Sections       SectionHeadings   `mapstructure:"sections"`
	DegreeLevels   map[string]int    `mapstructure:"degree_levels"`
	Certifications []string          `mapstructure:"certifications"`
	Institutions   []string          `mapstructure:"institutions"`
	ActionVerbs    []string          `mapstructure:"action_verbs"`
	Buzzwords      []string          `mapstructure:"buzzwords"`
	Stopwords      []string          `mapstructure:"stopwords"`

	hardSet map[string]bool
	softSet map[string]bool
	stopSet map[string]bool
}

// SectionHeadings groups the standard resume heading vocabulary. Experience,
// Education and Skills are the headings the formatting scorer treats as
// essential; All is the complete recognized set.
type SectionHeadings struct {
	All        []string `mapstructure:"all"`
	Experience []string `mapstructure:"experience"`
	Education  []string `mapstructure:"education"`
	Skills     []string `mapstructure:"skills"`
}

// DegreeName maps a degree level back to its display name.
func DegreeName(level int) string {
	switch level {
	case 5:
		return "Doctorate"
	case 4:
		return "Master's"
	case 3:
		return "Bachelor's"
	case 2:
		return "Associate"
	case 1:
		return "Diploma/Certificate"
	default:
		return "Unknown"
	}
}

// buildSets precomputes lookup sets after loading.
func (v *Vocabulary) buildSets() {
	v.hardSet = toSet(v.HardSkills)
	v.softSet = toSet(v.SoftSkills)
	v.stopSet = toSet(v.Stopwords)
}

// IsHardSkill reports whether the canonical term is a known hard skill.
func (v *Vocabulary) IsHardSkill(term string) bool { return v.hardSet[term] }

// IsSoftSkill reports whether the canonical term is a known soft skill.
func (v *Vocabulary) IsSoftSkill(term string) bool { return v.softSet[term] }

// IsStopword reports whether the word is filtered from keyword extraction.
func (v *Vocabulary) IsStopword(word string) bool { return v.stopSet[word] }

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}
