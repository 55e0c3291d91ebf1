package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

func newTestAnalyzer() AnalyzerService {
	return NewAnalyzerService(vocab.Default(), zap.NewNop())
}

func TestAnalyze_CompleteReport(t *testing.T) {
	report := newTestAnalyzer().Analyze(sampleResume)

	require.NotNil(t, report)
	assert.NotEmpty(t, report.ID)
	assert.NotZero(t, report.Timestamp)
	require.Len(t, report.Sections, 6)

	for _, name := range []string{
		SectionKeyword, SectionFormatting, SectionContact,
		SectionExperience, SectionEducation, SectionSemantic,
	} {
		section := report.Section(name)
		require.NotNil(t, section, "section %s missing from report", name)
		assert.NotEmpty(t, section.Icon)
		assert.NotEmpty(t, section.Findings)
	}

	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 100.0)
	// A well-formed resume with contact info, dates, a degree, and skills
	// should land comfortably above the midpoint.
	assert.Greater(t, report.OverallScore, 50.0)
}

func TestAnalyze_EmptyText(t *testing.T) {
	report := newTestAnalyzer().Analyze("")

	require.Len(t, report.Sections, 6)
	assert.Equal(t, 0.0, report.OverallScore)
	for _, s := range report.Sections {
		assert.Equal(t, 0.0, s.Score)
	}
}

func TestAnalyze_TextPreviewTruncated(t *testing.T) {
	long := strings.Repeat("experienced engineer ", 50)
	report := newTestAnalyzer().Analyze(long)

	assert.True(t, strings.HasSuffix(report.TextPreview, "..."))
	assert.LessOrEqual(t, len([]rune(report.TextPreview)), 303)
}

func TestAggregateScore(t *testing.T) {
	tests := []struct {
		name     string
		sections []models.SectionResult
		want     float64
	}{
		{
			name: "all sections equal",
			sections: []models.SectionResult{
				{Name: SectionKeyword, Score: 80},
				{Name: SectionFormatting, Score: 80},
				{Name: SectionContact, Score: 80},
				{Name: SectionExperience, Score: 80},
				{Name: SectionEducation, Score: 80},
				{Name: SectionSemantic, Score: 80},
			},
			want: 80,
		},
		{
			name: "weights applied",
			sections: []models.SectionResult{
				{Name: SectionKeyword, Score: 100},
				{Name: SectionFormatting, Score: 0},
				{Name: SectionContact, Score: 0},
				{Name: SectionExperience, Score: 0},
				{Name: SectionEducation, Score: 0},
				{Name: SectionSemantic, Score: 0},
			},
			want: 25,
		},
		{
			name: "missing section leaves both numerator and denominator",
			sections: []models.SectionResult{
				{Name: SectionKeyword, Score: 60},
				{Name: SectionExperience, Score: 60},
			},
			want: 60,
		},
		{
			name:     "no sections",
			sections: nil,
			want:     0,
		},
		{
			name: "unknown section ignored",
			sections: []models.SectionResult{
				{Name: "Mystery", Score: 100},
				{Name: SectionKeyword, Score: 40},
			},
			want: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateScore(tt.sections))
		})
	}
}
