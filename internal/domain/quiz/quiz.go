package quiz

import "github.com/cargolink/backend/internal/domain/shared"

// Dimension groups questions by the trade-off they probe. Dimension totals
// are reported alongside the overall result so users can see which factor
// pulled them toward buyer- or seller-side terms.
type Dimension string

const (
	DimensionControl      Dimension = "control"
	DimensionRisk         Dimension = "risk"
	DimensionCost         Dimension = "cost"
	DimensionLogistics    Dimension = "logistics"
	DimensionRelationship Dimension = "relationship"
)

// Option is one answer choice. Weight runs from -3 (buyer takes on the
// obligation) to +3 (seller takes it on).
type Option struct {
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// Question is one quiz item with exactly four options.
type Question struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
	Options   []Option  `json:"options"`
}

const (
	// QuestionCount is the fixed size of the bank; answers must carry
	// exactly this many entries.
	QuestionCount = 10
	minWeight     = -3
	maxWeight     = 3
)

var (
	// ErrAnswerCount rejects answer sets that do not cover the full bank.
	ErrAnswerCount = shared.NewDomainError("ANSWER_COUNT", "Exactly one answer per question is required")
	// ErrAnswerRange rejects option indexes outside the question's options.
	ErrAnswerRange = shared.NewDomainError("ANSWER_RANGE", "Answer index out of range")
)
