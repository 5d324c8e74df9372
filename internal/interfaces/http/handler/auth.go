package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/application/identity"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
	"github.com/cargolink/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves editor authentication.
type AuthHandler struct {
	BaseHandler
	service *identity.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *identity.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest carries editor credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateEditorRequest carries the admin form for a new account.
type CreateEditorRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=editor admin"`
}

// Login authenticates an editor.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Email and password are required", getRequestID(c)))
		return
	}

	result, err := h.service.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Refresh token is required", getRequestID(c)))
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Me returns the authenticated editor.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	editorID := middleware.GetJWTEditorID(c)
	if editorID == "" {
		c.JSON(401, dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", getRequestID(c)))
		return
	}

	info, err := h.service.Me(c.Request.Context(), editorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// CreateEditor registers a staff account. Admin only.
// POST /api/v1/auth/editors
func (h *AuthHandler) CreateEditor(c *gin.Context) {
	var req CreateEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid editor payload")
		return
	}

	info, err := h.service.CreateEditor(c.Request.Context(), identity.CreateEditorInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, info)
}
