package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resumeats/checker/internal/metrics"
	"resumeats/checker/internal/models"
	"resumeats/checker/internal/services"
)

type CompareHandler struct {
	analyzeHandler *AnalyzeHandler
	parser         services.ParserService
	analyzer       services.AnalyzerService
	jobMatcher     services.JobMatcherService
	logger         *zap.Logger
}

func NewCompareHandler(
	analyzeHandler *AnalyzeHandler,
	parser services.ParserService,
	analyzer services.AnalyzerService,
	jobMatcher services.JobMatcherService,
	logger *zap.Logger,
) *CompareHandler {
	return &CompareHandler{
		analyzeHandler: analyzeHandler,
		parser:         parser,
		analyzer:       analyzer,
		jobMatcher:     jobMatcher,
		logger:         logger,
	}
}

// HandleCompare handles POST /api/compare: a multipart "resume" file plus a
// job description given either as a "job_description_file" upload or a
// "job_description" text field.
func (h *CompareHandler) HandleCompare(c *fiber.Ctx) error {
	jobText := h.jobDescriptionText(c)
	if len(jobText) < minTextLength {
		metrics.RequestErrors.WithLabelValues("compare", "missing_job_description").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide a job description (at least 20 characters). You can paste it as text or upload a file.",
		})
	}

	extracted, fileInfo, errResp := h.analyzeHandler.extractResume(c, "compare")
	if errResp != nil {
		return errResp
	}

	atsReport := h.analyzer.Analyze(extracted.Text)
	atsReport.FileInfo = fileInfo

	comparison := h.jobMatcher.Compare(extracted.Text, jobText)
	metrics.ComparisonsTotal.Inc()

	h.logger.Info("comparison complete",
		zap.String("filename", fileInfo.Filename),
		zap.Float64("match_score", comparison.MatchScore),
	)

	setNoCache(c)
	return c.JSON(models.CompareResponse{
		ATSAnalysis: atsReport,
		Comparison:  comparison,
		FileInfo:    fileInfo,
		TextPreview: atsReport.TextPreview,
		Timestamp:   time.Now().Unix(),
	})
}

// jobDescriptionText prefers an uploaded job description file; an unreadable
// upload falls back silently to the text field.
func (h *CompareHandler) jobDescriptionText(c *fiber.Ctx) string {
	if fileHeader, err := c.FormFile("job_description_file"); err == nil && fileHeader != nil {
		if data, err := readMultipartFile(fileHeader); err == nil {
			if extracted, err := h.parser.ExtractText(data, fileHeader.Filename); err == nil {
				return strings.TrimSpace(extracted.Text)
			}
		}
	}
	return strings.TrimSpace(c.FormValue("job_description"))
}
