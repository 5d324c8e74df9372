package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/infrastructure/persistence"
)

// SystemHandler serves health and build info endpoints.
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	version   string
	startedAt time.Time
}

// NewSystemHandler creates a system handler.
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startedAt: time.Now(),
	}
}

// Ping responds without touching any dependency.
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// Info reports the service version and uptime.
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, gin.H{
		"service": "cargolink-backend",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Health pings the database. A failed ping returns 503 so load balancers
// pull the instance.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(503, gin.H{"status": "unhealthy", "database": "down"})
		return
	}
	h.Success(c, gin.H{"status": "healthy", "database": "up"})
}
