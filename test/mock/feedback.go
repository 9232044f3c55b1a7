package mock

import (
	"context"
	"sync"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
)

// FeedbackSink is a configurable mock implementation of domain.FeedbackSink
// that keeps every recorded submission in memory.
type FeedbackSink struct {
	err     error
	records []domain.FeedbackSubmission
	mu      sync.Mutex
}

// NewFeedbackSink creates a sink that accepts every submission.
func NewFeedbackSink() *FeedbackSink {
	return &FeedbackSink{}
}

// WithError configures the sink to reject submissions with err.
func (s *FeedbackSink) WithError(err error) *FeedbackSink {
	s.err = err
	return s
}

// Record implements domain.FeedbackSink.Record.
func (s *FeedbackSink) Record(ctx context.Context, submission domain.FeedbackSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, submission)
	return nil
}

// Records returns a copy of the accepted submissions in arrival order.
func (s *FeedbackSink) Records() []domain.FeedbackSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FeedbackSubmission, len(s.records))
	copy(out, s.records)
	return out
}

// CallCount returns the number of accepted submissions.
func (s *FeedbackSink) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Ensure FeedbackSink implements domain.FeedbackSink at compile time.
var _ domain.FeedbackSink = (*FeedbackSink)(nil)
