package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/backend/internal/domain/shared"
)

func TestNewEditor(t *testing.T) {
	t.Run("normalizes email and hashes password", func(t *testing.T) {
		e, err := NewEditor(" Admin@CargoLink.KR ", "운영자", "hunter2hunter2", RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "admin@cargolink.kr", e.Email)
		assert.NotEqual(t, "hunter2hunter2", e.PasswordHash)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewEditor("a@b.kr", "n", "short", RoleEditor)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("rejects bad email", func(t *testing.T) {
		_, err := NewEditor("not-an-email", "n", "longenough", RoleEditor)
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewEditor("a@b.kr", "n", "longenough", Role("root"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestEditor_VerifyPassword(t *testing.T) {
	e, err := NewEditor("a@b.kr", "n", "correct horse", RoleEditor)
	require.NoError(t, err)

	assert.NoError(t, e.VerifyPassword("correct horse"))
	assert.ErrorIs(t, e.VerifyPassword("battery staple"), shared.ErrWrongPassword)
}

func TestEditor_RecordLogin(t *testing.T) {
	e, err := NewEditor("a@b.kr", "n", "longenough", RoleEditor)
	require.NoError(t, err)
	require.Nil(t, e.LastLoginAt)

	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.FixedZone("KST", 9*3600))
	e.RecordLogin(now)
	require.NotNil(t, e.LastLoginAt)
	assert.Equal(t, now.UTC(), *e.LastLoginAt)
}
