package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// Question represents a single entry of a questionnaire template.
// Questions are immutable once loaded; the template file is the source
// of truth.
type Question struct {
	ID         types.QuestionID
	Text       string
	AnswerType types.AnswerType
	RiskWeight int
	RiskArea   string
	Controls   []types.ControlRef
}

// Validate checks if the Question satisfies the template contract
func (q *Question) Validate() error {
	if err := q.ID.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidQuestion, "invalid question ID", goerr.V(QuestionIDKey, q.ID))
	}
	if q.Text == "" {
		return goerr.Wrap(ErrInvalidQuestion, "question text is required", goerr.V(QuestionIDKey, q.ID))
	}
	if err := q.AnswerType.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question", goerr.V(QuestionIDKey, q.ID))
	}
	if q.RiskWeight < 1 || q.RiskWeight > 5 {
		return goerr.Wrap(ErrInvalidQuestion, "risk weight must be between 1 and 5",
			goerr.V(QuestionIDKey, q.ID),
			goerr.V("risk_weight", q.RiskWeight))
	}
	for _, ctrl := range q.Controls {
		if err := ctrl.Validate(); err != nil {
			return goerr.Wrap(err, "invalid control reference", goerr.V(QuestionIDKey, q.ID))
		}
	}
	return nil
}
