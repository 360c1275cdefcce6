// Package api serves the novelty filter over HTTP so decoding loops
// running out of process can query it per candidate span.
package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/sumkit/internal/logger"
	"github.com/sumkit/internal/version"
	"github.com/sumkit/pkg/ngram"
)

// maxN bounds the n-gram order a request may ask for; anything larger is
// a client mistake, not a real decoding configuration.
const maxN = 32

type Server struct {
	log logger.Logger
}

func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/novelty", s.handleNovelty)
	e.GET("/healthz", s.handleHealth)
}

func (s *Server) handleNovelty(c *echo.Context) error {
	req, err := decodeJSON[NoveltyRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	if req.N == 0 {
		req.N = 3
	}
	if req.N < 1 || req.N > maxN {
		return writeBadRequest(c, "n must be between 1 and 32")
	}

	blocked := ngram.Blocked(req.N, req.Candidate, req.Accepted)
	s.log.Debug("novelty check",
		"n", req.N,
		"accepted", len(req.Accepted),
		"blocked", blocked,
	)

	return c.JSON(http.StatusOK, NoveltyResponse{
		ID:      "nov_" + uuid.NewString(),
		Object:  "novelty.check",
		Blocked: blocked,
		N:       req.N,
	})
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.String(),
	})
}
