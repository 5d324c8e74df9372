package surcharge

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cargolink/backend/internal/domain/shared"
)

// Mode is the transport mode the surcharge applies to.
type Mode string

const (
	ModeSea Mode = "sea"
	ModeAir Mode = "air"
)

// IsValid reports whether the mode belongs to the closed set.
func (m Mode) IsValid() bool {
	return m == ModeSea || m == ModeAir
}

var (
	ErrEmptyCarrier   = shared.NewDomainError("EMPTY_CARRIER", "Carrier code is required")
	ErrInvalidMode    = shared.NewDomainError("INVALID_MODE", "Transport mode must be sea or air")
	ErrNegativeRate   = shared.NewDomainError("NEGATIVE_RATE", "Surcharge rate cannot be negative")
	ErrRateTooHigh    = shared.NewDomainError("RATE_TOO_HIGH", "Surcharge rate exceeds 100 percent")
	ErrZeroEffective  = shared.NewDomainError("ZERO_EFFECTIVE", "Effective date is required")
	ErrInvalidPercent = shared.NewDomainError("INVALID_PERCENT", "Rate must be a decimal number")
)

var maxRate = decimal.NewFromInt(100)

// Surcharge is one fuel surcharge announcement: a carrier's percentage rate
// effective from a given date. Carriers publish a new record per period;
// the latest record effective at a query date wins.
type Surcharge struct {
	shared.BaseAggregateRoot
	CarrierCode   string          `gorm:"not null;size:10;index:idx_surcharge_lookup"`
	CarrierName   string          `gorm:"not null;size:100"`
	Mode          Mode            `gorm:"not null;size:4;index:idx_surcharge_lookup"`
	RatePercent   decimal.Decimal `gorm:"not null;type:decimal(6,3)"`
	EffectiveFrom time.Time       `gorm:"not null;index:idx_surcharge_lookup"`
	Note          string          `gorm:"size:300"`
}

// NewSurcharge validates and builds one announcement. The rate is parsed
// with decimal semantics; float drift in published percentages is not
// acceptable on a rates page.
func NewSurcharge(carrierCode, carrierName string, mode Mode, ratePercent string, effectiveFrom time.Time, note string) (*Surcharge, error) {
	carrierCode = strings.ToUpper(strings.TrimSpace(carrierCode))
	if carrierCode == "" {
		return nil, ErrEmptyCarrier
	}
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(ratePercent))
	if err != nil {
		return nil, ErrInvalidPercent
	}
	if rate.IsNegative() {
		return nil, ErrNegativeRate
	}
	if rate.GreaterThan(maxRate) {
		return nil, ErrRateTooHigh
	}
	if effectiveFrom.IsZero() {
		return nil, ErrZeroEffective
	}
	return &Surcharge{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CarrierCode:       carrierCode,
		CarrierName:       strings.TrimSpace(carrierName),
		Mode:              mode,
		RatePercent:       rate,
		EffectiveFrom:     effectiveFrom.UTC().Truncate(24 * time.Hour),
		Note:              strings.TrimSpace(note),
	}, nil
}

// Revise replaces the rate and note on an existing announcement.
func (s *Surcharge) Revise(ratePercent, note string) error {
	rate, err := decimal.NewFromString(strings.TrimSpace(ratePercent))
	if err != nil {
		return ErrInvalidPercent
	}
	if rate.IsNegative() {
		return ErrNegativeRate
	}
	if rate.GreaterThan(maxRate) {
		return ErrRateTooHigh
	}
	s.RatePercent = rate
	s.Note = strings.TrimSpace(note)
	s.IncrementVersion()
	return nil
}

// AppliedTo returns base multiplied by the surcharge percentage.
func (s *Surcharge) AppliedTo(base decimal.Decimal) decimal.Decimal {
	return base.Mul(s.RatePercent).Div(maxRate)
}
