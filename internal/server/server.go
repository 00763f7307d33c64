// Package server exposes the export pipeline and document computations
// over HTTP for the browser editor.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	quotegen "github.com/elevateestimator/quotegenerator"
	"github.com/elevateestimator/quotegenerator/internal/config"
	"github.com/elevateestimator/quotegenerator/internal/document"
	"github.com/elevateestimator/quotegenerator/internal/prefstore"
	"github.com/elevateestimator/quotegenerator/internal/totals"
)

// Exporter is the subset of [quotegen.Exporter] the handlers need.
// Tests substitute a fake.
type Exporter interface {
	Export(ctx context.Context, d *document.Document) (*quotegen.Result, error)
}

// Server wires the HTTP API around an exporter and a preference store.
type Server struct {
	exporter Exporter
	prefs    *prefstore.Store
	log      *zap.Logger
	engine   *gin.Engine
}

// New builds the router. cfg may be nil for defaults.
func New(exporter Exporter, prefs *prefstore.Store, log *zap.Logger, cfg *config.Config) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		exporter: exporter,
		prefs:    prefs,
		log:      log,
	}

	if cfg != nil && cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	if cfg != nil && len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/export", s.handleExport)
		v1.POST("/totals", s.handleTotals)
		v1.GET("/preferences/discount", s.handleGetDiscountPref)
		v1.PUT("/preferences/discount", s.handleSetDiscountPref)
	}

	s.engine = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// handleExport renders the posted document as a PDF and streams it back.
// While an export is running, further requests get 409.
func (s *Server) handleExport(c *gin.Context) {
	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document: " + err.Error()})
		return
	}
	s.applyDiscountPref(&doc)

	res, err := s.exporter.Export(c.Request.Context(), &doc)
	if err != nil {
		switch {
		case errors.Is(err, quotegen.ErrExportInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "an export is already running"})
		case errors.Is(err, quotegen.ErrClosed):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "exporter is shut down"})
		default:
			s.log.Error("export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename()+`"`)
	c.Data(http.StatusOK, "application/pdf", res.Bytes())
}

// handleTotals recomputes the money summary for live preview. No browser
// involved, so it is cheap enough to call on every form change.
func (s *Server) handleTotals(c *gin.Context) {
	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document: " + err.Error()})
		return
	}
	s.applyDiscountPref(&doc)
	doc.ApplyDefaults(time.Now())

	t := totals.Compute(&doc, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"totals":          t,
		"discountVisible": t.DiscountVisible(doc.Discount.Enabled),
	})
}

func (s *Server) handleGetDiscountPref(c *gin.Context) {
	enabled, err := s.prefs.DiscountEnabled()
	if err != nil {
		s.log.Error("reading discount preference", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "preference store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (s *Server) handleSetDiscountPref(c *gin.Context) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	if err := s.prefs.SetDiscountEnabled(body.Enabled); err != nil {
		s.log.Error("writing discount preference", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "preference store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": body.Enabled})
}

// applyDiscountPref overlays the stored discount toggle onto the posted
// document. The client does not send the toggle; it lives server-side so
// all sessions agree.
func (s *Server) applyDiscountPref(doc *document.Document) {
	if s.prefs == nil {
		return
	}
	enabled, err := s.prefs.DiscountEnabled()
	if err != nil {
		s.log.Warn("reading discount preference", zap.Error(err))
		return
	}
	doc.Discount.Enabled = enabled
}
