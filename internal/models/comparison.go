package models

// Action says what a recommendation asks the candidate to do with their resume.
type Action string

const (
	ActionAdd    Action = "add"
	ActionAdjust Action = "adjust"
	ActionRemove Action = "remove"
)

// Priority ranks how impactful a recommendation is for this job.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// SkillMatches groups the canonical skills found in a piece of text.
type SkillMatches struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
	Titles     []string `json:"titles"`
}

// All returns every matched skill across categories, deduplicated.
func (m SkillMatches) All() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(m.HardSkills)+len(m.SoftSkills))
	for _, group := range [][]string{m.HardSkills, m.SoftSkills} {
		for _, s := range group {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// KeywordAnalysis is the detailed skill comparison between a resume and a
// job description. Matched, missing, and extra partition the union of both
// skill sets.
type KeywordAnalysis struct {
	JobSkills            []string `json:"job_skills"`
	ResumeSkills         []string `json:"cv_skills"`
	MatchedSkills        []string `json:"matched_skills"`
	MissingSkills        []string `json:"missing_skills"`
	ExtraSkills          []string `json:"extra_skills"`
	JobKeywordsCount     int      `json:"job_keywords_count"`
	MatchedKeywordsCount int      `json:"matched_keywords_count"`
}

// Recommendation is one actionable suggestion from the job comparison.
type Recommendation struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Action   Action   `json:"action"`
}

// ComparisonReport is the result of matching a resume against a job
// description.
type ComparisonReport struct {
	MatchScore      float64          `json:"match_score"`
	Pros            []string         `json:"pros"`
	Cons            []string         `json:"cons"`
	Recommendations []Recommendation `json:"recommendations"`
	KeywordAnalysis KeywordAnalysis  `json:"keyword_analysis"`
}

// CompareResponse is the full /compare payload: the resume's own ATS report
// alongside the job comparison.
type CompareResponse struct {
	ATSAnalysis *ATSReport        `json:"ats_analysis"`
	Comparison  *ComparisonReport `json:"comparison"`
	FileInfo    *FileInfo         `json:"file_info"`
	TextPreview string            `json:"text_preview,omitempty"`
	Timestamp   int64             `json:"timestamp"`
}
