package feedback

import (
	"strings"

	"github.com/cargolink/backend/internal/domain/shared"
)

// Kind classifies what the visitor is telling us.
type Kind string

const (
	KindSuggestion Kind = "suggestion"
	KindBug        Kind = "bug"
	KindCarrier    Kind = "carrier_request"
	KindOther      Kind = "other"
)

// IsValid reports whether the kind belongs to the closed set.
func (k Kind) IsValid() bool {
	switch k {
	case KindSuggestion, KindBug, KindCarrier, KindOther:
		return true
	}
	return false
}

// Status tracks triage; new entries start unread.
type Status string

const (
	StatusNew      Status = "new"
	StatusReviewed Status = "reviewed"
)

var (
	ErrEmptyMessage = shared.NewDomainError("EMPTY_MESSAGE", "Message is required")
	ErrInvalidKind  = shared.NewDomainError("INVALID_KIND", "Unknown feedback kind")
	ErrLongMessage  = shared.NewDomainError("LONG_MESSAGE", "Message exceeds 2000 characters")
)

// Feedback is one anonymous visitor submission. Email is optional; PageURL
// and UserAgent come from the request for context, not identification.
type Feedback struct {
	shared.BaseAggregateRoot
	Kind      Kind   `gorm:"not null;size:20;index"`
	Message   string `gorm:"not null;size:2000"`
	Email     string `gorm:"size:200"`
	PageURL   string `gorm:"size:500"`
	UserAgent string `gorm:"size:300"`
	Status    Status `gorm:"not null;size:12;index;default:new"`
}

// NewFeedback validates and builds a submission in the new state.
func NewFeedback(kind Kind, message, email, pageURL, userAgent string) (*Feedback, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len([]rune(message)) > 2000 {
		return nil, ErrLongMessage
	}
	return &Feedback{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		Message:           message,
		Email:             strings.TrimSpace(email),
		PageURL:           pageURL,
		UserAgent:         userAgent,
		Status:            StatusNew,
	}, nil
}

// MarkReviewed moves the entry out of the triage queue.
func (f *Feedback) MarkReviewed() {
	if f.Status == StatusReviewed {
		return
	}
	f.Status = StatusReviewed
	f.IncrementVersion()
}

// Repository is the persistence port for feedback.
type Repository interface {
	shared.Repository[Feedback]
}
