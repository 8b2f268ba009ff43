package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quillon/stocksentry/internal/repo"
)

// Server answers the hosting platform's keep-alive probe and exposes a
// small read-only view of recent alert history for operators. No alert
// logic lives here.
type Server struct {
	engine  *gin.Engine
	addr    string
	history repo.AlertRepo
}

func NewServer(addr string, history repo.AlertRepo) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:  engine,
		addr:    addr,
		history: history,
	}

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "alive")
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/alerts", s.recentAlerts)

	return s
}

func (s *Server) recentAlerts(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert history disabled"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	alerts, err := s.history.FindRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// Start serves in the background. A serve error is logged, not fatal:
// the scan loop does not depend on the probe endpoint.
func (s *Server) Start() {
	go func() {
		if err := s.engine.Run(s.addr); err != nil {
			slog.Error("keep-alive server stopped", "error", err)
		}
	}()
}
