// Package feedback provides FeedbackSink implementations.
package feedback

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/logger"
)

// componentName tags every entry written by the sink.
const componentName = "feedback"

// LogSink writes feedback submissions to the structured log and nowhere else.
type LogSink struct {
	log *logger.Logger
}

// Ensure LogSink implements domain.FeedbackSink.
var _ domain.FeedbackSink = (*LogSink)(nil)

// NewLogSink creates a sink writing to log. A nil log discards submissions.
func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSink{log: log.WithComponent(componentName)}
}

// Record implements domain.FeedbackSink.Record.
// The email address is masked before it reaches the log.
func (s *LogSink) Record(ctx context.Context, submission domain.FeedbackSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := submission.Feedback
	s.log.FromContext(ctx).Info().
		Str("submission_id", submission.ID).
		Time("submitted_at", submission.SubmittedAt).
		Str("name", f.Name).
		Str("email", MaskEmail(f.Email)).
		Int("rating", f.Rating).
		Str("usage_type", string(f.UsageType)).
		Strs("improvements", f.Improvements).
		Bool("recommend", f.Recommend).
		Int("feedback_chars", utf8.RuneCountInString(f.Message)).
		Str("feedback", f.Message).
		Msg("Feedback received")
	return nil
}

// MaskEmail keeps the first character of the local part and the domain.
// "sam@example.com" becomes "s***@example.com". Empty input stays empty.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(email)
	return string(first) + "***" + email[at:]
}
