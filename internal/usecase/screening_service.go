package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	"personalityai-service/pkg/logger"
	"personalityai-service/pkg/metrics"
)

// ErrEmptyInput is returned when the screening text is empty or whitespace
var ErrEmptyInput = errors.New("screening input is empty")

// ScreeningService orchestrates the single-call symptom classification flow
// and keeps a session-local history of successful analyses per user. The
// history is never written to the snapshot store and dies with the process.
type ScreeningService struct {
	client  repository.ScreeningClient
	metrics *metrics.Metrics
	logger  logger.Logger

	mu      sync.Mutex
	history map[string][]*entity.ScreeningHistoryEntry
}

// NewScreeningService creates a new screening service
func NewScreeningService(client repository.ScreeningClient, m *metrics.Metrics, log logger.Logger) *ScreeningService {
	return &ScreeningService{
		client:  client,
		metrics: m,
		logger:  log,
		history: make(map[string][]*entity.ScreeningHistoryEntry),
	}
}

// Analyze validates the input, performs exactly one classification call and,
// on success only, records the result at the head of the caller's session
// history. Failures propagate as tagged *entity.AnalysisError values.
func (s *ScreeningService) Analyze(ctx context.Context, userEmail, input string) (*entity.ScreeningAnalysis, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	started := time.Now()
	analysis, err := s.client.Analyze(ctx, input)
	s.metrics.AnalysisTime.Observe(time.Since(started).Seconds())

	if err != nil {
		outcome := "failure"
		var aerr *entity.AnalysisError
		if errors.As(err, &aerr) {
			outcome = string(aerr.Kind)
		}
		s.metrics.ScreeningRequests.WithLabelValues(outcome).Inc()
		s.logger.Warn("Screening analysis failed", "outcome", outcome, "error", err)
		return nil, err
	}

	s.metrics.ScreeningRequests.WithLabelValues("success").Inc()

	entry := &entity.ScreeningHistoryEntry{
		UserInput: input,
		Analysis:  analysis,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.history[userEmail] = append([]*entity.ScreeningHistoryEntry{entry}, s.history[userEmail]...)
	saved := len(s.history[userEmail])
	s.mu.Unlock()

	s.logger.Info("Screening analysis completed", "savedAnalyses", saved)
	return analysis, nil
}

// History returns a copy of the caller's session history, most recent first
func (s *ScreeningService) History(userEmail string) []*entity.ScreeningHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.history[userEmail]
	out := make([]*entity.ScreeningHistoryEntry, len(entries))
	for i, e := range entries {
		cp := *e
		out[i] = &cp
	}
	return out
}
