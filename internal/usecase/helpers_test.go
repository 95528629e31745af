package usecase_test

import (
	"context"
	"errors"
	"sync"

	"personalityai-service/internal/domain/entity"
	"personalityai-service/internal/domain/repository"
	recordRepo "personalityai-service/internal/interface/repository"
	"personalityai-service/pkg/logger"
	"personalityai-service/pkg/metrics"
)

// One metrics set per test binary: promauto registers against the default
// registry and duplicate names panic.
var testMetrics = metrics.NewMetrics("test_usecase")

// memSnapshotStore is an in-memory SnapshotStore for tests
type memSnapshotStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{data: make(map[string][]byte)}
}

func (s *memSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	return data, ok, nil
}

func (s *memSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}

// fakeNotifier records every dispatched message
type fakeNotifier struct {
	mu       sync.Mutex
	failWith error
	sent     []sentMessage
}

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

func (n *fakeNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failWith != nil {
		return n.failWith
	}
	n.sent = append(n.sent, sentMessage{To: to, Subject: subject, Body: body})
	return nil
}

func (n *fakeNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

// fakeScreeningClient returns a canned analysis or error
type fakeScreeningClient struct {
	analysis *entity.ScreeningAnalysis
	err      error
	calls    int
}

func (c *fakeScreeningClient) Analyze(ctx context.Context, input string) (*entity.ScreeningAnalysis, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.analysis, nil
}

func newSeededStore(ctx context.Context) (repository.RecordStore, error) {
	return recordRepo.NewMemoryRecordStore(ctx, newMemSnapshotStore(), logger.NewNopLogger())
}

var errBoom = errors.New("boom")
