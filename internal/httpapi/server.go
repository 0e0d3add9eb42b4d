package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/preopcalc/internal/database"
	"github.com/Skufu/preopcalc/internal/preop"
	"github.com/Skufu/preopcalc/internal/render"
)

const invalidMeasurementsMessage = "Please fix invalid height/weight values first."

// Options configures NewRouter. Zero values fall back to defaults.
type Options struct {
	// DB backs /readyz. Leave nil when the database is disabled.
	DB           database.HealthChecker
	Logger       *zap.Logger
	StaticRoot   string
	MaxBodyBytes int64
}

type handler struct {
	db  database.HealthChecker
	log *zap.Logger
}

// NewRouter wires middleware, the static frontend and the JSON API.
func NewRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	staticRoot := opts.StaticRoot
	if staticRoot == "" {
		staticRoot = "."
	}

	h := &handler{db: opts.DB, log: log}

	router := gin.New()
	router.Use(
		requestID(),
		requestLogger(log),
		gin.Recovery(),
		limitBodySize(maxBody),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	// Static frontend: index.html at the root, its scripts under /js and
	// assets under /static. The root itself is never listed or served.
	router.Static("/static", filepath.Join(staticRoot, "static"))
	router.Static("/js", filepath.Join(staticRoot, "js"))
	router.StaticFile("/", filepath.Join(staticRoot, "index.html"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.readyz)

	api := router.Group("/api/preop")
	api.POST("/assess", h.assess)
	api.POST("/summary", h.summary)

	return router
}

func (h *handler) readyz(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("readiness ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func (h *handler) assess(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newAssessmentResponse(preop.Assess(form)))
}

func (h *handler) summary(c *gin.Context) {
	format := c.DefaultQuery("format", "text")
	if format != "text" && format != "html" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	sections, assessment, err := preop.SummarizeSections(form)
	if errors.Is(err, preop.ErrInvalidMeasurements) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"message": invalidMeasurementsMessage,
			"fields": gin.H{
				"height": assessment.Height.Error,
				"weight": assessment.Weight.Error,
			},
		})
		return
	}

	summary := preop.JoinSections(sections)
	resp := summaryResponse{
		Summary:    summary,
		Length:     preop.SummaryLength(summary),
		Assessment: newAssessmentResponse(assessment),
	}
	if format == "html" {
		out, err := render.SummaryHTML(sections)
		if err != nil {
			h.log.Error("render summary", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		resp.HTML = out
	}

	h.log.Debug("summary generated", zap.Int("length", resp.Length), zap.String("format", format))
	c.JSON(http.StatusOK, resp)
}

// bindForm decodes the request body, writing the error response itself
// when it cannot.
func (h *handler) bindForm(c *gin.Context) (preop.Form, bool) {
	var payload formRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return preop.Form{}, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return preop.Form{}, false
	}
	return payload.form(), true
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
