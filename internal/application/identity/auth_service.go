// Package identity implements editor authentication and account management
// for the CMS endpoints.
package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/identity"
	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/infrastructure/auth"
)

// AuthService handles editor login and token refresh.
type AuthService struct {
	editors    identity.Repository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates an authentication service.
func NewAuthService(editors identity.Repository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		editors:    editors,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates an editor and returns a token pair. Unknown email and
// wrong password produce the same error so the endpoint does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	editor, err := s.editors.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("login attempt for unknown email")
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if err := editor.VerifyPassword(input.Password); err != nil {
		s.logger.Warn("invalid password attempt", zap.String("editor_id", editor.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		EditorID: editor.ID,
		Email:    editor.Email,
		Role:     string(editor.Role),
	})
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	editor.RecordLogin(time.Now())
	if err := s.editors.Save(ctx, editor); err != nil {
		// Login still succeeds; the timestamp is best effort.
		s.logger.Error("failed to record login time", zap.Error(err))
	}

	s.logger.Info("editor logged in", zap.String("editor_id", editor.ID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Editor:                toEditorInfo(editor),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The editor is
// re-read so role changes take effect on the next refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	editorID, err := claims.GetEditorUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid editor ID in token")
	}

	editor, err := s.editors.FindByID(ctx, editorID)
	if err != nil {
		s.logger.Warn("refresh for missing editor", zap.String("editor_id", editorID.String()))
		return nil, shared.NewDomainError("EDITOR_NOT_FOUND", "Editor account no longer exists")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(refreshToken, editor.Email, string(editor.Role))
	if err != nil {
		return nil, mapTokenError(err)
	}

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Editor:                toEditorInfo(editor),
	}, nil
}

// Me returns the account behind a validated access token.
func (s *AuthService) Me(ctx context.Context, editorID string) (*EditorInfo, error) {
	claims := &auth.Claims{EditorID: editorID}
	id, err := claims.GetEditorUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid editor ID in token")
	}

	editor, err := s.editors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := toEditorInfo(editor)
	return &info, nil
}

// CreateEditor registers a new staff account. Admin only; there is no
// public signup.
func (s *AuthService) CreateEditor(ctx context.Context, input CreateEditorInput) (*EditorInfo, error) {
	editor, err := identity.NewEditor(input.Email, input.Name, input.Password, identity.Role(input.Role))
	if err != nil {
		return nil, err
	}

	if existing, err := s.editors.FindByEmail(ctx, editor.Email); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	if err := s.editors.Save(ctx, editor); err != nil {
		return nil, err
	}

	s.logger.Info("editor account created",
		zap.String("editor_id", editor.ID.String()),
		zap.String("role", string(editor.Role)),
	)
	info := toEditorInfo(editor)
	return &info, nil
}

func toEditorInfo(e *identity.Editor) EditorInfo {
	return EditorInfo{
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Role:        string(e.Role),
		LastLoginAt: e.LastLoginAt,
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType), errors.Is(err, auth.ErrInvalidClaims):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
