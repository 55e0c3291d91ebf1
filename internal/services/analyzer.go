package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

// sectionWeights drive the overall score. They sum to 1.0; keywords and
// experience weigh the most.
var sectionWeights = map[string]float64{
	SectionKeyword:    0.25,
	SectionFormatting: 0.15,
	SectionContact:    0.15,
	SectionExperience: 0.20,
	SectionEducation:  0.15,
	SectionSemantic:   0.10,
}

// AnalyzerService runs the full ATS analysis pipeline on resume text. It is
// a pure function of (text, vocabulary): stateless, safe for concurrent use.
type AnalyzerService interface {
	Analyze(text string) *models.ATSReport
}

type analyzerService struct {
	normalizer Normalizer
	scorers    []SectionScorer
	logger     *zap.Logger
}

func NewAnalyzerService(v *vocab.Vocabulary, logger *zap.Logger) AnalyzerService {
	matcher := NewSkillMatcher(v)
	return &analyzerService{
		normalizer: NewNormalizer(),
		scorers: []SectionScorer{
			NewKeywordScorer(matcher),
			NewFormattingScorer(v),
			NewContactScorer(),
			NewExperienceScorer(v),
			NewEducationScorer(v),
			NewSemanticScorer(v),
		},
		logger: logger,
	}
}

func (a *analyzerService) Analyze(text string) *models.ATSReport {
	doc := a.normalizer.Normalize(text)

	sections := make([]models.SectionResult, 0, len(a.scorers))
	for _, scorer := range a.scorers {
		sections = append(sections, scorer.Score(doc))
	}

	report := &models.ATSReport{
		ID:           uuid.New().String(),
		OverallScore: AggregateScore(sections),
		Sections:     sections,
		TextPreview:  preview(doc.RawText, 300),
		Timestamp:    time.Now().Unix(),
	}

	a.logger.Info("resume analyzed",
		zap.String("report_id", report.ID),
		zap.Int("word_count", doc.WordCount),
		zap.Float64("overall_score", report.OverallScore),
	)
	return report
}

// AggregateScore computes the weighted mean of the section scores, rounded
// to one decimal. Sections without a configured weight are skipped, and a
// missing section drops out of both numerator and denominator so a partial
// result is not double-penalized.
func AggregateScore(sections []models.SectionResult) float64 {
	var weighted, total float64
	for _, s := range sections {
		w, ok := sectionWeights[s.Name]
		if !ok {
			continue
		}
		weighted += s.Score * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return roundScore(weighted / total)
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
