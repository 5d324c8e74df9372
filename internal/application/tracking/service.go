package tracking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/domain/carrier"
	"github.com/cargolink/backend/internal/domain/shared"
)

// maxBatchSize caps how many identifiers one request may submit.
const maxBatchSize = 20

var (
	ErrEmptyIdentifier = shared.NewDomainError("EMPTY_IDENTIFIER", "Tracking identifier is required")
	ErrBatchTooLarge   = shared.NewDomainError("BATCH_TOO_LARGE", "At most 20 identifiers per request")
)

// Service analyzes tracking identifiers and resolves tracking links.
type Service struct {
	detector *carrier.Detector
	logger   *zap.Logger
}

// NewService creates a tracking service over the given directory.
func NewService(dir *carrier.Directory, logger *zap.Logger) *Service {
	return &Service{
		detector: carrier.NewDetector(dir),
		logger:   logger,
	}
}

// Detect analyzes one raw identifier.
func (s *Service) Detect(ctx context.Context, raw string) (*carrier.Detection, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyIdentifier
	}

	det := s.detector.Detect(raw)

	s.logger.Debug("identifier detected",
		zap.String("status", string(det.Status)),
		zap.String("category", string(det.Category)),
	)
	return &det, nil
}

// DetectBatch analyzes several identifiers in one call. Blank entries are
// skipped; order is preserved.
func (s *Service) DetectBatch(ctx context.Context, raws []string) ([]carrier.Detection, error) {
	if len(raws) == 0 {
		return nil, ErrEmptyIdentifier
	}
	if len(raws) > maxBatchSize {
		return nil, ErrBatchTooLarge
	}

	results := make([]carrier.Detection, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		results = append(results, s.detector.Detect(raw))
	}
	if len(results) == 0 {
		return nil, ErrEmptyIdentifier
	}
	return results, nil
}
