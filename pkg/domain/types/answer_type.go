package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// AnswerType represents the expected input format of a question
type AnswerType string

const (
	// AnswerTypeYesNo accepts only "yes" or "no"
	AnswerTypeYesNo AnswerType = "yes_no"
	// AnswerTypeScore1to5 accepts an integer between 1 and 5
	AnswerTypeScore1to5 AnswerType = "score_1_5"
	// AnswerTypeText accepts any non-empty free text
	AnswerTypeText AnswerType = "text"
)

// Validate checks if the AnswerType is one of the supported types
func (t AnswerType) Validate() error {
	switch t {
	case AnswerTypeYesNo, AnswerTypeScore1to5, AnswerTypeText:
		return nil
	default:
		return goerr.New("unsupported answer type", goerr.V("type", t))
	}
}

// String returns the string representation of AnswerType
func (t AnswerType) String() string {
	return string(t)
}
