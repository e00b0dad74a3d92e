package prompt

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// ErrMissingAnswer is returned when a static source has no answer for
// a question
var ErrMissingAnswer = goerr.New("no answer supplied for question")

// Static serves answers from a pre-supplied map, keyed by question ID.
// It backs non-interactive runs (answer files) and tests.
type Static struct {
	vendor  string
	answers map[types.QuestionID]string
}

var _ interfaces.AnswerSource = &Static{}

// NewStatic creates a static answer source
func NewStatic(vendor string, answers map[types.QuestionID]string) *Static {
	return &Static{
		vendor:  vendor,
		answers: answers,
	}
}

// VendorName returns the configured vendor name
func (s *Static) VendorName(ctx context.Context) (string, error) {
	if s.vendor == "" {
		return "", goerr.New("vendor name is required for non-interactive assessment")
	}
	return s.vendor, nil
}

// Answer returns the supplied answer for the question
func (s *Static) Answer(ctx context.Context, q *model.Question, attempt int) (string, error) {
	answer, ok := s.answers[q.ID]
	if !ok {
		return "", goerr.Wrap(ErrMissingAnswer, "answer file does not cover question",
			goerr.V(model.QuestionIDKey, q.ID))
	}
	return answer, nil
}

// Interactive always returns false; an invalid supplied answer fails
// the run
func (s *Static) Interactive() bool {
	return false
}
