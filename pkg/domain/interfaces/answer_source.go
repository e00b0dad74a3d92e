package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
)

// AnswerSource supplies candidate answers for the collection phase.
// Validation never happens here; every candidate goes through
// model.NormalizeAnswer in the use case so that terminal input, answer
// files and test fixtures share one validation path.
type AnswerSource interface {
	// VendorName returns the name of the vendor under assessment
	VendorName(ctx context.Context) (string, error)

	// Answer returns a raw candidate answer for the question.
	// attempt is 0 for the first ask and increments on each re-ask
	// after a validation failure.
	Answer(ctx context.Context, q *model.Question, attempt int) (string, error)

	// Interactive reports whether the source can be re-asked after a
	// validation failure. Non-interactive sources fail the whole run
	// on the first invalid answer.
	Interactive() bool
}
