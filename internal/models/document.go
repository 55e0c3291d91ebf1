package models

// ExtractedDocument holds the text of a parsed upload in both raw and
// normalized form. It is built once per request and never mutated afterwards.
type ExtractedDocument struct {
	RawText        string `json:"raw_text"`
	NormalizedText string `json:"normalized_text"`
	WordCount      int    `json:"word_count"`
	CharCount      int    `json:"char_count"`
}

// IsEmpty reports whether the document carries no usable text.
func (d *ExtractedDocument) IsEmpty() bool {
	return d == nil || d.WordCount == 0
}

// ExtractedFile is what the parsing layer hands upstream: plain text plus the
// detected file format.
type ExtractedFile struct {
	Text   string
	Format string
}

// FileInfo describes the uploaded file an analysis was produced from.
type FileInfo struct {
	Filename   string `json:"filename"`
	Format     string `json:"format"`
	TextLength int    `json:"text_length"`
	WordCount  int    `json:"word_count"`
}
