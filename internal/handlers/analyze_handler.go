package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resumeats/checker/internal/metrics"
	"resumeats/checker/internal/models"
	"resumeats/checker/internal/services"
)

// minTextLength is the minimum extracted text size considered meaningful.
// Below it the file is likely empty, image-based, or corrupted.
const minTextLength = 20

type AnalyzeHandler struct {
	parser      services.ParserService
	analyzer    services.AnalyzerService
	maxFileSize int64
	logger      *zap.Logger
}

func NewAnalyzeHandler(
	parser services.ParserService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
	logger *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		parser:      parser,
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleAnalyze handles POST /api/analyze: a multipart "resume" file in,
// an ATS report out.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	extracted, fileInfo, errResp := h.extractResume(c, "analyze")
	if errResp != nil {
		return errResp
	}

	start := time.Now()
	report := h.analyzer.Analyze(extracted.Text)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysesTotal.WithLabelValues(extracted.Format).Inc()

	report.FileInfo = fileInfo

	h.logger.Info("analysis complete",
		zap.String("filename", fileInfo.Filename),
		zap.Float64("overall_score", report.OverallScore),
	)

	setNoCache(c)
	return c.JSON(report)
}

// extractResume pulls the "resume" multipart file, enforces size and format
// limits, and extracts its text. A non-nil error return is the complete
// client response.
func (h *AnalyzeHandler) extractResume(c *fiber.Ctx, endpoint string) (*models.ExtractedFile, *models.FileInfo, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		metrics.RequestErrors.WithLabelValues(endpoint, "missing_file").Inc()
		return nil, nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload a file.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		metrics.RequestErrors.WithLabelValues(endpoint, "too_large").Inc()
		return nil, nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	extracted, err := h.parser.ExtractText(data, fileHeader.Filename)
	if err != nil {
		status := fiber.StatusBadRequest
		reason := "corrupt_file"
		if errors.Is(err, services.ErrUnsupportedFormat) {
			reason = "unsupported_format"
		}
		metrics.RequestErrors.WithLabelValues(endpoint, reason).Inc()
		return nil, nil, c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if len(strings.TrimSpace(extracted.Text)) < minTextLength {
		metrics.RequestErrors.WithLabelValues(endpoint, "no_text").Inc()
		return nil, nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not extract meaningful text from the file. The file may be empty, image-based, or corrupted.",
		})
	}

	fileInfo := &models.FileInfo{
		Filename:   fileHeader.Filename,
		Format:     extracted.Format,
		TextLength: len(extracted.Text),
		WordCount:  len(strings.Fields(extracted.Text)),
	}
	return extracted, fileInfo, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func setNoCache(c *fiber.Ctx) {
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")
}
