package repository

import (
	"context"

	"personalityai-service/internal/domain/entity"
)

// ScreeningClient defines the interface for the external classification
// service. Analyze performs exactly one request; on failure it returns a
// *entity.AnalysisError and never a partial result.
type ScreeningClient interface {
	Analyze(ctx context.Context, input string) (*entity.ScreeningAnalysis, error)
}
