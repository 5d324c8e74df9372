package identity

import (
	"time"

	"github.com/google/uuid"
)

// LoginInput carries editor credentials.
type LoginInput struct {
	Email    string
	Password string
}

// EditorInfo is the editor view returned alongside tokens.
type EditorInfo struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LoginResult is a successful authentication.
type LoginResult struct {
	AccessToken           string     `json:"access_token"`
	RefreshToken          string     `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time  `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time  `json:"refresh_token_expires_at"`
	TokenType             string     `json:"token_type"`
	Editor                EditorInfo `json:"editor"`
}

// CreateEditorInput carries the admin form for a new staff account.
type CreateEditorInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}
