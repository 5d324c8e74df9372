package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/application/directory"
)

// CarrierHandler serves the tracking-links directory.
type CarrierHandler struct {
	BaseHandler
	service *directory.Service
}

// NewCarrierHandler creates a carrier handler.
func NewCarrierHandler(service *directory.Service) *CarrierHandler {
	return &CarrierHandler{service: service}
}

type listCarriersRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	MajorOnly bool   `form:"major_only"`
}

// List returns directory entries matching the query.
// GET /api/v1/carriers
func (h *CarrierHandler) List(c *gin.Context) {
	var req listCarriersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	carriers, err := h.service.List(c.Request.Context(), directory.ListInput{
		Search:    req.Search,
		Category:  req.Category,
		MajorOnly: req.MajorOnly,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"carriers": carriers, "count": len(carriers)})
}

// Categories returns the closed category set.
// GET /api/v1/carriers/categories
func (h *CarrierHandler) Categories(c *gin.Context) {
	h.Success(c, gin.H{"categories": h.service.Categories(c.Request.Context())})
}
