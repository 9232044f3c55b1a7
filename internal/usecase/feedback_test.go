package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// validFeedback returns a submission that passes every rule.
func validFeedback() domain.Feedback {
	return domain.Feedback{
		Name:         "Sam",
		Email:        "sam@example.com",
		Rating:       4,
		UsageType:    domain.UsagePlanning,
		Message:      "Synthetic routes found me a much better deal.",
		Improvements: []string{"Mobile experience", "More airlines"},
		Recommend:    true,
	}
}

// =====================================================
// Submit Tests
// =====================================================

func TestFeedbackSubmit_RecordsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := domain.NewMockFeedbackSink(ctrl)
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	uc := NewFeedbackUseCase(sink, timeutil.NewMockClock(now))

	var recorded domain.FeedbackSubmission
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, s domain.FeedbackSubmission) error {
			recorded = s
			return nil
		},
	).Times(1)

	submission, err := uc.Submit(context.Background(), validFeedback())

	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, now, submission.SubmittedAt)
	assert.Equal(t, validFeedback(), submission.Feedback)
	assert.Equal(t, *submission, recorded)
}

func TestFeedbackSubmit_MinimalFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := domain.NewMockFeedbackSink(ctrl)
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	uc := NewFeedbackUseCase(sink, nil)

	submission, err := uc.Submit(context.Background(), domain.Feedback{Message: "  Nice  "})

	require.NoError(t, err)
	assert.Equal(t, "Nice", submission.Feedback.Message)
	assert.Equal(t, 0, submission.Feedback.Rating)
	assert.Empty(t, submission.Feedback.Improvements)
}

func TestFeedbackSubmit_DeduplicatesImprovements(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := domain.NewMockFeedbackSink(ctrl)
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	uc := NewFeedbackUseCase(sink, nil)

	f := validFeedback()
	f.Improvements = []string{"Loading speed", "Loading speed", "Results display"}

	submission, err := uc.Submit(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, []string{"Loading speed", "Results display"}, submission.Feedback.Improvements)
}

func TestFeedbackSubmit_ValidationFailureSkipsSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := domain.NewMockFeedbackSink(ctrl)
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)
	uc := NewFeedbackUseCase(sink, nil)

	f := validFeedback()
	f.Message = "   "

	submission, err := uc.Submit(context.Background(), f)

	assert.Nil(t, submission)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFeedback))
}

func TestFeedbackSubmit_SinkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := domain.NewMockFeedbackSink(ctrl)
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("sink closed"))
	uc := NewFeedbackUseCase(sink, nil)

	submission, err := uc.Submit(context.Background(), validFeedback())

	assert.Nil(t, submission)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
	assert.False(t, errors.Is(err, domain.ErrInvalidFeedback))
}

// =====================================================
// ValidateFeedback Tests
// =====================================================

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*domain.Feedback)
		wantFields []string
	}{
		{
			name:   "valid feedback",
			modify: func(f *domain.Feedback) {},
		},
		{
			name:   "anonymous feedback without rating",
			modify: func(f *domain.Feedback) { f.Name, f.Email, f.Rating, f.UsageType = "", "", 0, "" },
		},
		{
			name:       "missing message",
			modify:     func(f *domain.Feedback) { f.Message = "" },
			wantFields: []string{"feedback"},
		},
		{
			name:       "rating too high",
			modify:     func(f *domain.Feedback) { f.Rating = 6 },
			wantFields: []string{"rating"},
		},
		{
			name:       "negative rating",
			modify:     func(f *domain.Feedback) { f.Rating = -1 },
			wantFields: []string{"rating"},
		},
		{
			name:       "malformed email",
			modify:     func(f *domain.Feedback) { f.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "unknown usage type",
			modify:     func(f *domain.Feedback) { f.UsageType = "browsing" },
			wantFields: []string{"usageType"},
		},
		{
			name:       "unknown improvement tag",
			modify:     func(f *domain.Feedback) { f.Improvements = []string{"Dark mode", "Also bad"} },
			wantFields: []string{"improvements"},
		},
		{
			name:       "name too long",
			modify:     func(f *domain.Feedback) { f.Name = strings.Repeat("a", 101) },
			wantFields: []string{"name"},
		},
		{
			name: "several fields at once",
			modify: func(f *domain.Feedback) {
				f.Message = ""
				f.Email = "nope"
				f.Rating = 9
			},
			wantFields: []string{"email", "feedback", "rating"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFeedback()
			tt.modify(&f)

			err := ValidateFeedback(f)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verr *FeedbackValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
			assert.True(t, errors.Is(err, domain.ErrInvalidFeedback))
		})
	}
}

func TestFeedbackValidationError_Message(t *testing.T) {
	err := &FeedbackValidationError{Fields: map[string]string{
		"rating":   "must be between 1 and 5, or 0 for no rating",
		"feedback": "feedback is required",
	}}

	assert.Equal(t,
		"invalid feedback: feedback: feedback is required; rating: must be between 1 and 5, or 0 for no rating",
		err.Error())
}
