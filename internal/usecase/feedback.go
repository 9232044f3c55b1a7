package usecase

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names so errors line up with the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("usage_type", validateUsageType)
	validate.RegisterValidation("improvement_tag", validateImprovementTag)
}

// validateUsageType accepts one of the known usage types.
func validateUsageType(fl validator.FieldLevel) bool {
	return domain.UsageType(fl.Field().String()).IsValid()
}

// validateImprovementTag accepts one of the selectable improvement areas.
func validateImprovementTag(fl validator.FieldLevel) bool {
	return domain.IsImprovementTag(fl.Field().String())
}

// feedbackInput mirrors domain.Feedback with validation rules.
type feedbackInput struct {
	Name         string   `json:"name" validate:"max=100"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Rating       int      `json:"rating" validate:"min=0,max=5"`
	UsageType    string   `json:"usageType" validate:"omitempty,usage_type"`
	Message      string   `json:"feedback" validate:"required,max=5000"`
	Improvements []string `json:"improvements" validate:"max=8,dive,improvement_tag"`
}

// FeedbackValidationError lists the fields of a rejected feedback submission.
// It unwraps to domain.ErrInvalidFeedback.
type FeedbackValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *FeedbackValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", domain.ErrInvalidFeedback, strings.Join(parts, "; "))
}

// Unwrap returns domain.ErrInvalidFeedback.
func (e *FeedbackValidationError) Unwrap() error {
	return domain.ErrInvalidFeedback
}

// FeedbackUseCase handles feedback form submissions.
type FeedbackUseCase interface {
	// Submit validates the feedback, hands it to the sink and returns the recorded submission.
	Submit(ctx context.Context, feedback domain.Feedback) (*domain.FeedbackSubmission, error)
}

// feedbackUseCase implements FeedbackUseCase.
type feedbackUseCase struct {
	sink  domain.FeedbackSink
	clock timeutil.Clock
}

// NewFeedbackUseCase creates a FeedbackUseCase. A nil clock uses the system time.
func NewFeedbackUseCase(sink domain.FeedbackSink, clock timeutil.Clock) FeedbackUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &feedbackUseCase{sink: sink, clock: clock}
}

// Submit implements FeedbackUseCase.Submit.
func (uc *feedbackUseCase) Submit(ctx context.Context, feedback domain.Feedback) (*domain.FeedbackSubmission, error) {
	feedback = normalizeFeedback(feedback)

	if err := ValidateFeedback(feedback); err != nil {
		return nil, err
	}

	submission := domain.FeedbackSubmission{
		ID:          uuid.New().String(),
		SubmittedAt: uc.clock.Now(),
		Feedback:    feedback,
	}

	if err := uc.sink.Record(ctx, submission); err != nil {
		return nil, fmt.Errorf("record feedback: %w", err)
	}
	return &submission, nil
}

// ValidateFeedback checks a feedback entry against the form rules.
// Returns a *FeedbackValidationError when any field is rejected.
func ValidateFeedback(f domain.Feedback) error {
	input := feedbackInput{
		Name:         f.Name,
		Email:        f.Email,
		Rating:       f.Rating,
		UsageType:    string(f.UsageType),
		Message:      strings.TrimSpace(f.Message),
		Improvements: f.Improvements,
	}

	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFeedback, err)
	}

	out := &FeedbackValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if strings.HasPrefix(field, "improvements[") {
			field = "improvements"
		}
		if _, exists := out.Fields[field]; exists {
			continue
		}
		out.Fields[field] = feedbackErrorMessage(fe)
	}
	return out
}

// feedbackErrorMessage turns a field error into a user-facing message.
func feedbackErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a valid email address"
	case "min", "max":
		if fe.Field() == "rating" {
			return fmt.Sprintf("must be between 1 and %d, or 0 for no rating", domain.MaxRating)
		}
		return fmt.Sprintf("must be at most %s %s", fe.Param(), lengthUnit(fe.Kind()))
	case "usage_type":
		return "must be one of planning, booking, research, comparison"
	case "improvement_tag":
		return fmt.Sprintf("%q is not a known improvement area", fe.Value())
	default:
		return "is invalid"
	}
}

// lengthUnit names what a max rule counts for the given kind.
func lengthUnit(k reflect.Kind) string {
	if k == reflect.Slice {
		return "items"
	}
	return "characters"
}

// normalizeFeedback trims text fields and drops duplicate improvement tags.
func normalizeFeedback(f domain.Feedback) domain.Feedback {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)

	form := domain.NewFeedbackForm()
	for _, tag := range f.Improvements {
		form.ToggleImprovement(tag, true)
	}
	f.Improvements = form.Improvements
	return f
}

// Ensure feedbackUseCase implements FeedbackUseCase at compile time.
var _ FeedbackUseCase = (*feedbackUseCase)(nil)
