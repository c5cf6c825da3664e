package server

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"fincoach/internal/chart"
	"fincoach/internal/fileutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/sample"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// handleHealth reports service status and which document formats this build
// can process.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "fincoach",
		"capabilities": s.proc.Capabilities().Flags(),
	})
}

// handleSample returns the built-in demo dataset.
func (s *Server) handleSample(c *gin.Context) {
	c.JSON(http.StatusOK, sample.Generate(time.Now()))
}

// handleDocuments accepts a multipart statement upload and returns either
// the extracted summary or a structured failure.
func (s *Server) handleDocuments(c *gin.Context) {
	summary, failure, ok := s.processUpload(c)
	if !ok {
		return
	}
	if failure != nil {
		c.JSON(http.StatusUnprocessableEntity, failure)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// handleAnalyze runs the coaching analyses. When a document is attached it
// is processed first; otherwise the sample dataset is analyzed, so the
// endpoint always has something to say.
func (s *Server) handleAnalyze(c *gin.Context) {
	goals := c.PostForm("goals")
	extraPayment := decimal.Zero
	if raw := c.PostForm("extra_payment"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "extra_payment must be a non-negative number"})
			return
		}
		extraPayment = parsed
	}

	var summary *models.FinancialSummary
	source := "sample"
	if _, err := c.FormFile("file"); err == nil {
		s2, failure, ok := s.processUpload(c)
		if !ok {
			return
		}
		if failure != nil {
			c.JSON(http.StatusUnprocessableEntity, failure)
			return
		}
		summary = s2
		source = "upload"
	} else {
		summary = &sample.Generate(time.Now()).FinancialSummary
	}

	report := s.advisor.BuildReport(summary, goals, extraPayment)
	c.JSON(http.StatusOK, gin.H{
		"source":    source,
		"summary":   summary,
		"report":    report,
		"dashboard": chart.BuildDashboard(summary),
	})
}

// processUpload validates the uploaded file, stages it in a temp directory
// and runs the processor. The bool is false when a response has already been
// written.
func (s *Server) processUpload(c *gin.Context) (*models.FinancialSummary, *models.ErrorResult, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided; attach one as multipart field 'file'"})
		return nil, nil, false
	}

	if failure := s.validateUpload(fh); failure != nil {
		c.JSON(http.StatusUnprocessableEntity, failure)
		return nil, nil, false
	}

	dir, err := os.MkdirTemp("", "fincoach-upload-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stage upload"})
		return nil, nil, false
	}
	defer func() {
		if rerr := os.RemoveAll(dir); rerr != nil {
			s.logger.Warn("Failed to clean upload dir", logging.Field{Key: "error", Value: rerr})
		}
	}()

	path := filepath.Join(dir, filepath.Base(fh.Filename))
	if err := c.SaveUploadedFile(fh, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save upload"})
		return nil, nil, false
	}

	result := s.proc.ProcessDocument(path)
	if result.IsError() {
		return nil, result.Failure, true
	}
	return result.Summary, nil, true
}

func (s *Server) validateUpload(fh *multipart.FileHeader) *models.ErrorResult {
	maxBytes := int64(s.cfg.Server.MaxUploadMB) << 20
	if fh.Size > maxBytes {
		return &models.ErrorResult{
			Kind:    models.ErrProcessingException,
			Message: fmt.Sprintf("File exceeds the %dMB upload limit.", s.cfg.Server.MaxUploadMB),
			Suggestions: []string{
				"Split the statement into smaller files",
				"Export a shorter date range",
			},
			CapabilityFlags: s.proc.Capabilities().Flags(),
		}
	}

	ext := fileutils.Extension(fh.Filename)
	if !s.proc.Capabilities().Supports(ext) {
		return s.proc.UnsupportedFormat(ext)
	}
	return nil
}
