package surcharge

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSurcharge(t *testing.T) {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid announcement", func(t *testing.T) {
		s, err := NewSurcharge("maeu", "Maersk", ModeSea, "18.5", from, "")
		require.NoError(t, err)
		assert.Equal(t, "MAEU", s.CarrierCode)
		assert.True(t, s.RatePercent.Equal(decimal.RequireFromString("18.5")))
	})

	t.Run("rate keeps decimal precision", func(t *testing.T) {
		s, err := NewSurcharge("KE", "Korean Air", ModeAir, "23.125", from, "")
		require.NoError(t, err)
		assert.Equal(t, "23.125", s.RatePercent.String())
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := NewSurcharge("KE", "Korean Air", ModeAir, "-1", from, "")
		assert.ErrorIs(t, err, ErrNegativeRate)
	})

	t.Run("rejects rate above hundred", func(t *testing.T) {
		_, err := NewSurcharge("KE", "Korean Air", ModeAir, "100.01", from, "")
		assert.ErrorIs(t, err, ErrRateTooHigh)
	})

	t.Run("rejects garbage rate", func(t *testing.T) {
		_, err := NewSurcharge("KE", "Korean Air", ModeAir, "twenty", from, "")
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := NewSurcharge("KE", "Korean Air", Mode("rail"), "10", from, "")
		assert.ErrorIs(t, err, ErrInvalidMode)
	})

	t.Run("rejects zero effective date", func(t *testing.T) {
		_, err := NewSurcharge("KE", "Korean Air", ModeAir, "10", time.Time{}, "")
		assert.ErrorIs(t, err, ErrZeroEffective)
	})
}

func TestSurcharge_AppliedTo(t *testing.T) {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewSurcharge("MAEU", "Maersk", ModeSea, "17.5", from, "")
	require.NoError(t, err)

	got := s.AppliedTo(decimal.NewFromInt(2000))
	assert.Equal(t, "350", got.String())
}

func TestSurcharge_Revise(t *testing.T) {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewSurcharge("MAEU", "Maersk", ModeSea, "17.5", from, "")
	require.NoError(t, err)
	v := s.Version

	require.NoError(t, s.Revise("19.0", "유가 인상분 반영"))
	assert.Equal(t, v+1, s.Version)
	assert.True(t, s.RatePercent.Equal(decimal.RequireFromString("19")))

	assert.ErrorIs(t, s.Revise("abc", ""), ErrInvalidPercent)
}
