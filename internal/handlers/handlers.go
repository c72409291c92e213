package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/id-verify/internal/usecase"
)

// MaxUploadSize bounds each individual file part.
const MaxUploadSize = 10 << 20

// RegisterRoutes wires the HTTP handlers to the Gin router. authMiddleware
// may be nil, in which case the verification routes are open.
func RegisterRoutes(router *gin.Engine, uc *usecase.VerificationUseCase, logger *zap.Logger, authMiddleware gin.HandlerFunc) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/")
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}

	api.POST("/verify", func(c *gin.Context) {
		req, perr := bindVerificationRequest(c)
		if perr != nil {
			respondPipelineError(c, logger, perr)
			return
		}

		outcome, err := uc.Verify(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		if !outcome.Verified {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":    "error",
				"code":      usecase.CodeFaceMismatch,
				"verified":  false,
				"distance":  outcome.Distance,
				"threshold": outcome.Threshold,
				"message":   "the selfie does not match the document photo",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"verified":  true,
			"distance":  outcome.Distance,
			"threshold": outcome.Threshold,
			"model":     outcome.Model,
			"detector":  outcome.Detector,
		})
	})

	api.GET("/result/:id", func(c *gin.Context) {
		log, err := uc.GetResult(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"code":    "RESULT_NOT_FOUND",
				"message": "result not found",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "success",
			"request_id": log.RequestID,
			"verified":   log.Verified,
			"distance":   log.Distance,
			"threshold":  log.Threshold,
			"model":      log.Model,
			"detector":   log.Detector,
			"created_at": log.CreatedAt,
		})
	})

	api.GET("/result/:id/duplicates", func(c *gin.Context) {
		report, err := uc.GetDuplicateReport(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"code":    "RESULT_NOT_FOUND",
				"message": "result not found",
			})
			return
		}
		duplicates := make([]gin.H, 0, len(report.Duplicates))
		for _, d := range report.Duplicates {
			duplicates = append(duplicates, gin.H{
				"request_id": d.RequestID,
				"verified":   d.Verified,
				"distance":   d.Distance,
				"created_at": d.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          "success",
			"request_id":      report.Request.RequestID,
			"duplicate_count": len(duplicates),
			"duplicates":      duplicates,
		})
	})

	api.GET("/metrics/summary", func(c *gin.Context) {
		summary, err := uc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "metrics": summary})
	})
}

// bindVerificationRequest collects the three required file parts. Nothing is
// read or persisted here; the orchestrator validates extensions before it
// opens any part.
func bindVerificationRequest(c *gin.Context) (*usecase.VerificationRequest, *usecase.PipelineError) {
	req := &usecase.VerificationRequest{}
	targets := []struct {
		field string
		dst   *usecase.Upload
	}{
		{usecase.FieldIDCardFront, &req.Front},
		{usecase.FieldIDCardBack, &req.Back},
		{usecase.FieldSelfie, &req.Selfie},
	}
	for _, t := range targets {
		header, err := c.FormFile(t.field)
		if err != nil {
			return nil, &usecase.PipelineError{
				Code:    usecase.CodeMissingFile,
				Field:   t.field,
				Message: fmt.Sprintf("%s file part is required", t.field),
				Err:     err,
			}
		}
		if header.Size > MaxUploadSize {
			return nil, &usecase.PipelineError{
				Code:    usecase.CodeFileTooLarge,
				Field:   t.field,
				Message: fmt.Sprintf("%s exceeds the %d byte upload limit", t.field, MaxUploadSize),
			}
		}
		h := header
		*t.dst = usecase.Upload{
			Field:    t.field,
			Filename: h.Filename,
			Open: func() (io.ReadCloser, error) {
				return h.Open()
			},
		}
	}
	return req, nil
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var perr *usecase.PipelineError
	if errors.As(err, &perr) {
		respondPipelineError(c, logger, perr)
		return
	}
	logger.Error("request failed with unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"code":    usecase.CodeVerificationError,
		"message": "internal verification failure",
	})
}

func respondPipelineError(c *gin.Context, logger *zap.Logger, perr *usecase.PipelineError) {
	status := perr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Error("pipeline server fault",
			zap.String("code", perr.Code),
			zap.String("field", perr.Field),
			zap.Error(perr))
	}
	body := gin.H{"status": "error", "code": perr.Code, "message": perr.Message}
	if perr.Field != "" {
		body["field"] = perr.Field
	}
	c.JSON(status, body)
}
