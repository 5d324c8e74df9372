package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/application/tracking"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// TrackingHandler serves identifier detection.
type TrackingHandler struct {
	BaseHandler
	service *tracking.Service
}

// NewTrackingHandler creates a tracking handler.
func NewTrackingHandler(service *tracking.Service) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// DetectRequest carries one identifier, or several for batch lookups.
type DetectRequest struct {
	Identifier  string   `json:"identifier"`
	Identifiers []string `json:"identifiers" binding:"omitempty,max=20"`
}

// Detect analyzes tracking identifiers and returns detection results.
// POST /api/v1/tracking/detect
func (h *TrackingHandler) Detect(c *gin.Context) {
	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Invalid request body", getRequestID(c)))
		return
	}

	if len(req.Identifiers) > 0 {
		results, err := h.service.DetectBatch(c.Request.Context(), req.Identifiers)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, gin.H{"results": results})
		return
	}

	det, err := h.service.Detect(c.Request.Context(), req.Identifier)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, det)
}
