package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cargolink/backend/internal/application/surcharge"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// SurchargeHandler serves the public rates page and admin management.
type SurchargeHandler struct {
	BaseHandler
	service *surcharge.Service
}

// NewSurchargeHandler creates a surcharge handler.
func NewSurchargeHandler(service *surcharge.Service) *SurchargeHandler {
	return &SurchargeHandler{service: service}
}

// AnnounceRequest carries one new announcement. The rate stays a string
// end to end; it is parsed with decimal semantics, never floats.
type AnnounceRequest struct {
	CarrierName   string `json:"carrier_name" binding:"required,max=100"`
	Mode          string `json:"mode" binding:"required,oneof=sea air"`
	RatePercent   string `json:"rate_percent" binding:"required"`
	EffectiveFrom string `json:"effective_from" binding:"required"`
	Note          string `json:"note" binding:"max=300"`
}

// ReviseRequest replaces the rate and note on an announcement.
type ReviseRequest struct {
	RatePercent string `json:"rate_percent" binding:"required"`
	Note        string `json:"note" binding:"max=300"`
}

type effectiveRequest struct {
	At          string `form:"at"`
	CarrierCode string `form:"carrier_code"`
}

// Effective returns the rates in force at a date.
// GET /api/v1/surcharges
func (h *SurchargeHandler) Effective(c *gin.Context) {
	var req effectiveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	var at time.Time
	if req.At != "" {
		parsed, err := time.Parse("2006-01-02", req.At)
		if err != nil {
			h.BadRequest(c, "at must be a YYYY-MM-DD date")
			return
		}
		at = parsed
	}

	rates, err := h.service.Effective(c.Request.Context(), at, req.CarrierCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"surcharges": rates, "count": len(rates)})
}

// History returns the announcement history for one carrier.
// GET /api/v1/surcharges/:carrier_code/history
func (h *SurchargeHandler) History(c *gin.Context) {
	mode := c.DefaultQuery("mode", "sea")
	history, err := h.service.History(c.Request.Context(), c.Param("carrier_code"), mode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"surcharges": history, "count": len(history)})
}

// Announce records a new surcharge period for a carrier.
// PUT /api/v1/admin/surcharges/:carrier_code
func (h *SurchargeHandler) Announce(c *gin.Context) {
	var req AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid surcharge payload")
		return
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		h.BadRequest(c, "effective_from must be a YYYY-MM-DD date")
		return
	}

	sc, err := h.service.Create(c.Request.Context(), surcharge.CreateInput{
		CarrierCode:   c.Param("carrier_code"),
		CarrierName:   req.CarrierName,
		Mode:          req.Mode,
		RatePercent:   req.RatePercent,
		EffectiveFrom: effectiveFrom,
		Note:          req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sc)
}

// List returns all announcements for the admin table.
// GET /api/v1/admin/surcharges
func (h *SurchargeHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.service.List(c.Request.Context(), surcharge.ListInput{
		Page:        req.Page,
		PageSize:    req.PageSize,
		CarrierCode: c.Query("carrier_code"),
		Mode:        c.Query("mode"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Revise updates the rate and note of an announcement.
// PUT /api/v1/admin/surcharges/id/:id
func (h *SurchargeHandler) Revise(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req ReviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid surcharge payload")
		return
	}

	sc, err := h.service.Revise(c.Request.Context(), id, surcharge.ReviseInput{
		RatePercent: req.RatePercent,
		Note:        req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sc)
}

// Delete removes an announcement.
// DELETE /api/v1/admin/surcharges/id/:id
func (h *SurchargeHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *SurchargeHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid surcharge ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid surcharge ID")
		return uuid.Nil, false
	}
	return id, true
}
