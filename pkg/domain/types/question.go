package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// QuestionID represents a unique identifier for a questionnaire question
type QuestionID string

var questionIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !questionIDPattern.MatchString(string(q)) {
		return goerr.New("question ID must be alphanumeric with dots, underscores or hyphens", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}
