package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/identity"
	"github.com/cargolink/backend/internal/domain/shared"
	"github.com/cargolink/backend/internal/infrastructure/auth"
	"github.com/cargolink/backend/internal/infrastructure/config"
)

type MockEditorRepository struct {
	mock.Mock
}

func (m *MockEditorRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Editor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Editor), args.Error(1)
}

func (m *MockEditorRepository) FindByEmail(ctx context.Context, email string) (*identity.Editor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Editor), args.Error(1)
}

func (m *MockEditorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Editor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Editor), args.Error(1)
}

func (m *MockEditorRepository) Save(ctx context.Context, editor *identity.Editor) error {
	args := m.Called(ctx, editor)
	return args.Error(0)
}

func (m *MockEditorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEditorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(repo *MockEditorRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "cargolink-test",
	})
	return NewAuthService(repo, jwtService, zap.NewNop())
}

func testEditor(t *testing.T) *identity.Editor {
	t.Helper()
	editor, err := identity.NewEditor("editor@cargolink.co.kr", "홍길동", "password123", identity.RoleEditor)
	require.NoError(t, err)
	return editor
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return tokens and record login", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)
		editor := testEditor(t)

		repo.On("FindByEmail", ctx, "editor@cargolink.co.kr").Return(editor, nil)
		repo.On("Save", ctx, editor).Return(nil)

		result, err := svc.Login(ctx, LoginInput{
			Email:    "editor@cargolink.co.kr",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "editor", result.Editor.Role)
		assert.NotNil(t, editor.LastLoginAt)
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)
		editor := testEditor(t)

		repo.On("FindByEmail", ctx, "nobody@cargolink.co.kr").Return(nil, shared.ErrNotFound)
		repo.On("FindByEmail", ctx, "editor@cargolink.co.kr").Return(editor, nil)

		_, errUnknown := svc.Login(ctx, LoginInput{Email: "nobody@cargolink.co.kr", Password: "x"})
		_, errWrong := svc.Login(ctx, LoginInput{Email: "editor@cargolink.co.kr", Password: "wrong-password"})

		var deUnknown, deWrong *shared.DomainError
		require.ErrorAs(t, errUnknown, &deUnknown)
		require.ErrorAs(t, errWrong, &deWrong)
		assert.Equal(t, deUnknown.Code, deWrong.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", deWrong.Code)
	})

	t.Run("login survives a failed timestamp save", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)
		editor := testEditor(t)

		repo.On("FindByEmail", ctx, "editor@cargolink.co.kr").Return(editor, nil)
		repo.On("Save", ctx, editor).Return(assert.AnError)

		result, err := svc.Login(ctx, LoginInput{
			Email:    "editor@cargolink.co.kr",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token issues a new pair with current role", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)
		editor := testEditor(t)

		repo.On("FindByEmail", ctx, "editor@cargolink.co.kr").Return(editor, nil)
		repo.On("Save", ctx, editor).Return(nil)
		repo.On("FindByID", ctx, editor.ID).Return(editor, nil)

		login, err := svc.Login(ctx, LoginInput{
			Email:    "editor@cargolink.co.kr",
			Password: "password123",
		})
		require.NoError(t, err)

		// Role changed between login and refresh.
		editor.Role = identity.RoleAdmin

		refreshed, err := svc.Refresh(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", refreshed.Editor.Role)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)

		_, err := svc.Refresh(ctx, "not-a-token")
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "TOKEN_INVALID", de.Code)
	})

	t.Run("deleted editor cannot refresh", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)
		editor := testEditor(t)

		repo.On("FindByEmail", ctx, "editor@cargolink.co.kr").Return(editor, nil)
		repo.On("Save", ctx, editor).Return(nil)
		repo.On("FindByID", ctx, editor.ID).Return(nil, shared.ErrNotFound)

		login, err := svc.Login(ctx, LoginInput{
			Email:    "editor@cargolink.co.kr",
			Password: "password123",
		})
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, login.RefreshToken)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "EDITOR_NOT_FOUND", de.Code)
	})
}

func TestAuthService_CreateEditor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)

		repo.On("FindByEmail", ctx, "new@cargolink.co.kr").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.Editor")).Return(nil)

		info, err := svc.CreateEditor(ctx, CreateEditorInput{
			Email:    "NEW@cargolink.co.kr",
			Name:     "신규",
			Password: "password123",
			Role:     "editor",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@cargolink.co.kr", info.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := new(MockEditorRepository)
		svc := newTestAuthService(repo)
		editor := testEditor(t)

		repo.On("FindByEmail", ctx, editor.Email).Return(editor, nil)

		_, err := svc.CreateEditor(ctx, CreateEditorInput{
			Email:    editor.Email,
			Name:     "중복",
			Password: "password123",
			Role:     "editor",
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}
