package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cargolink/backend/internal/infrastructure/auth"
	"github.com/cargolink/backend/internal/interfaces/http/dto"
)

// JWT context keys.
const (
	JWTClaimsKey   = "jwt_claims"
	JWTEditorIDKey = "jwt_editor_id"
	JWTEmailKey    = "jwt_email"
	JWTRoleKey     = "jwt_role"

	authHeaderKey = "Authorization"
	bearerPrefix  = "Bearer "
)

// JWTAuth guards editor endpoints with a Bearer access token.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderKey)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing or malformed authorization header")
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "TOKEN_EXPIRED", "Access token has expired")
				return
			}
			abortUnauthorized(c, "TOKEN_INVALID", "Invalid access token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTEditorIDKey, claims.EditorID)
		c.Set(JWTEmailKey, claims.Email)
		c.Set(JWTRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole restricts a JWT-guarded route to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(JWTRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetJWTEditorID returns the authenticated editor's ID, or "".
func GetJWTEditorID(c *gin.Context) string {
	return c.GetString(JWTEditorIDKey)
}

// GetJWTRole returns the authenticated editor's role, or "".
func GetJWTRole(c *gin.Context) string {
	return c.GetString(JWTRoleKey)
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
