package models

// SectionResult is the outcome of one scoring module. Findings are ordered
// most significant first, recommendations most impactful first. The JSON
// field names are part of the frontend contract and must not change.
type SectionResult struct {
	Name            string         `json:"name"`
	Score           float64        `json:"score"`
	Icon            string         `json:"icon"`
	Findings        []string       `json:"findings"`
	Recommendations []string       `json:"recommendations"`
	Details         map[string]any `json:"details,omitempty"`
}

// ATSReport is the full analysis response for a single resume.
type ATSReport struct {
	ID           string          `json:"id"`
	OverallScore float64         `json:"overall_score"`
	Sections     []SectionResult `json:"sections"`
	FileInfo     *FileInfo       `json:"file_info,omitempty"`
	TextPreview  string          `json:"text_preview,omitempty"`
	Timestamp    int64           `json:"timestamp"`
}

// Section returns the named section result, or nil when absent.
func (r *ATSReport) Section(name string) *SectionResult {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}
