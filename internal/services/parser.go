package services

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumeats/checker/internal/models"
)

// Parsing errors surface to the API layer as client errors; the scoring
// engine itself never sees binary input.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrCorruptFile       = errors.New("could not extract text from file")
)

// ParserService turns an uploaded file into plain text. One parser per
// supported extension; anything else fails with ErrUnsupportedFormat.
type ParserService interface {
	ExtractText(data []byte, filename string) (*models.ExtractedFile, error)
	SupportedFormats() []string
}

type parserService struct {
	parsers map[string]func([]byte) (string, error)
}

func NewParserService() ParserService {
	s := &parserService{}
	s.parsers = map[string]func([]byte) (string, error){
		".pdf":  parsePDF,
		".txt":  parseTxt,
		".html": parseHTML,
		".htm":  parseHTML,
		".rtf":  parseRTF,
		".docx": parseDocx,
	}
	return s
}

func (s *parserService) SupportedFormats() []string {
	return []string{"pdf", "txt", "html", "htm", "rtf", "docx"}
}

func (s *parserService) ExtractText(data []byte, filename string) (*models.ExtractedFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	parser, ok := s.parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(s.SupportedFormats(), ", "))
	}

	text, err := parser(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	return &models.ExtractedFile{
		Text:   cleanExtractedText(text),
		Format: strings.TrimPrefix(ext, "."),
	}, nil
}

func parsePDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

func parseTxt(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return string(data), nil
	}
	return string(data[3:]), nil
}

// cleanExtractedText normalizes line endings and collapses runs of blank
// lines left behind by the format parsers.
func cleanExtractedText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

var blankLineRuns = regexp.MustCompile(`\n{3,}`)
