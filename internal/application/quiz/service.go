// Package quiz serves the Trade-MBTI questionnaire: fixed question bank,
// scoring, and shareable Incoterms profiles.
package quiz

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/quiz"
	"github.com/cargolink/backend/internal/domain/shared"
)

var ErrUnknownProfile = shared.NewDomainError("UNKNOWN_PROFILE", "Unknown Incoterms profile code")

// Service exposes the quiz operations. All data is compiled in; there is
// no persistence and results are never stored server-side.
type Service struct {
	logger *zap.Logger
}

// NewService creates a quiz service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Questions returns the full bank in presentation order.
func (s *Service) Questions(ctx context.Context) []quiz.Question {
	return quiz.Questions()
}

// Score maps one completed answer sheet to an Incoterms profile.
func (s *Service) Score(ctx context.Context, answers []int) (*quiz.Result, error) {
	result, err := quiz.Score(answers)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("quiz scored",
		zap.Int("total", result.Total),
		zap.String("profile", result.Profile.Code),
	)
	return &result, nil
}

// Profiles returns all eleven profiles ordered by seller obligation.
func (s *Service) Profiles(ctx context.Context) []quiz.Profile {
	return quiz.Profiles()
}

// Profile resolves one profile by code, for shared result links.
// Codes arrive from a query parameter and are matched case-insensitively.
func (s *Service) Profile(ctx context.Context, code string) (*quiz.Profile, error) {
	p, ok := quiz.ProfileByCode(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return nil, ErrUnknownProfile
	}
	return &p, nil
}
