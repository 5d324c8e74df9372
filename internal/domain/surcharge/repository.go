package surcharge

import (
	"context"
	"time"

	"github.com/cargolink/backend/internal/domain/shared"
)

// Repository is the persistence port for surcharge announcements.
type Repository interface {
	shared.Repository[Surcharge]
	// FindEffective returns, per carrier+mode, the latest announcement whose
	// EffectiveFrom is on or before the given date.
	FindEffective(ctx context.Context, at time.Time, carrierCode string) ([]Surcharge, error)
	// FindByCarrierMode returns the announcement history for one carrier and
	// mode, newest first.
	FindByCarrierMode(ctx context.Context, carrierCode string, mode Mode) ([]Surcharge, error)
}
