package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=feedback.go -destination=feedback_mock.go -package=domain

// UsageType describes what the user was doing with the optimizer.
type UsageType string

// Available usage types.
const (
	UsagePlanning   UsageType = "planning"
	UsageBooking    UsageType = "booking"
	UsageResearch   UsageType = "research"
	UsageComparison UsageType = "comparison"
)

// MaxRating is the highest star rating a user can give.
const MaxRating = 5

// UsageTypes lists the allowed usage types in display order.
func UsageTypes() []UsageType {
	return []UsageType{UsagePlanning, UsageBooking, UsageResearch, UsageComparison}
}

// IsValid checks if the usage type is one of the known values.
func (u UsageType) IsValid() bool {
	for _, known := range UsageTypes() {
		if u == known {
			return true
		}
	}
	return false
}

// improvementTags are the areas a user can ask us to improve.
var improvementTags = []string{
	"Search interface",
	"Results display",
	"Value calculations",
	"Route visualization",
	"Mobile experience",
	"Loading speed",
	"More airlines",
	"Hotel redemptions",
}

// ImprovementTags returns the selectable improvement areas in display order.
func ImprovementTags() []string {
	out := make([]string, len(improvementTags))
	copy(out, improvementTags)
	return out
}

// IsImprovementTag reports whether tag is one of the selectable improvement areas.
func IsImprovementTag(tag string) bool {
	for _, known := range improvementTags {
		if tag == known {
			return true
		}
	}
	return false
}

// Feedback is the captured content of the feedback form.
type Feedback struct {
	// Name is the optional display name of the user
	Name string `json:"name"`

	// Email is the optional contact address
	Email string `json:"email"`

	// Rating is 1-5 stars, or 0 when the user did not rate
	Rating int `json:"rating"`

	// UsageType is the single selected usage type, empty when none
	UsageType UsageType `json:"usageType"`

	// Message is the required free-text body
	Message string `json:"feedback"`

	// Improvements is the set of selected improvement tags
	Improvements []string `json:"improvements"`

	// Recommend tells whether the user would recommend the service
	Recommend bool `json:"recommend"`
}

// FeedbackForm holds feedback form state between edits.
// Use NewFeedbackForm; the zero value has a nil improvements list.
type FeedbackForm struct {
	Feedback
}

// NewFeedbackForm returns a form with initial empty values.
func NewFeedbackForm() *FeedbackForm {
	f := &FeedbackForm{}
	f.Reset()
	return f
}

// Reset restores every field to its initial empty value.
func (f *FeedbackForm) Reset() {
	f.Feedback = Feedback{Improvements: []string{}}
}

// SetRating sets the star rating. Values outside 1-5 are ignored.
func (f *FeedbackForm) SetRating(stars int) {
	if stars < 1 || stars > MaxRating {
		return
	}
	f.Rating = stars
}

// ToggleImprovement adds or removes an improvement tag.
// Selection has set semantics: checking a tag twice keeps a single entry.
func (f *FeedbackForm) ToggleImprovement(tag string, checked bool) {
	idx := -1
	for i, t := range f.Improvements {
		if t == tag {
			idx = i
			break
		}
	}

	switch {
	case checked && idx < 0:
		f.Improvements = append(f.Improvements, tag)
	case !checked && idx >= 0:
		f.Improvements = append(f.Improvements[:idx:idx], f.Improvements[idx+1:]...)
	}
}

// Snapshot returns a copy of the captured feedback that does not share the improvements slice.
func (f *FeedbackForm) Snapshot() Feedback {
	out := f.Feedback
	out.Improvements = make([]string, len(f.Improvements))
	copy(out.Improvements, f.Improvements)
	return out
}

// FeedbackSubmission is a feedback entry as handed to a sink.
type FeedbackSubmission struct {
	// ID identifies the submission in logs
	ID string `json:"id"`

	// SubmittedAt is when the form was submitted
	SubmittedAt time.Time `json:"submittedAt"`

	// Feedback is the captured form content
	Feedback Feedback `json:"feedback"`
}

// FeedbackSink receives submitted feedback.
// Implementations must not send the submission over the network or persist it.
type FeedbackSink interface {
	// Record handles one submission.
	Record(ctx context.Context, submission FeedbackSubmission) error
}
