package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiscalmx/cfdi-extractor/internal/extractor"
	"github.com/fiscalmx/cfdi-extractor/internal/logger"
	"github.com/fiscalmx/cfdi-extractor/internal/model"
)

// uploadField is the multipart form field carrying the CFDI document.
const uploadField = "upfile"

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORS())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/extract", s.handleExtract)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleExtract accepts one uploaded CFDI document and responds with its
// flattened record, or a single-string error body. Input problems map to
// 400, anything unexpected inside extraction maps to 500.
func (s *Server) handleExtract(c *gin.Context) {
	log := logger.WithComponent("server")

	file, err := c.FormFile(uploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}

	// Reject before touching the body: a declared content type without
	// "xml" is not ours to parse.
	contentType := file.Header.Get("Content-Type")
	if !strings.Contains(contentType, "xml") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: contentType})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read uploaded file"})
		return
	}

	invoice, err := extractor.Extract(content)
	if err != nil {
		var syntaxErr *model.SyntaxError
		var schemaErr *model.SchemaError
		switch {
		case errors.As(err, &syntaxErr), errors.As(err, &schemaErr):
			log.Warn().Err(err).Str("file", file.Filename).Msg("rejected CFDI document")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Str("file", file.Filename).Msg("extraction failed")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("Failed to parse XML: %s", err)})
		}
		return
	}

	log.Info().
		Str("uuid", invoice.UUID).
		Str("total", invoice.Total.String()).
		Int("conceptos", len(invoice.Conceptos)).
		Msg("extracted CFDI document")

	c.JSON(http.StatusOK, invoice)
}
