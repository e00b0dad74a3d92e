package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	ErrNoQuestions     = goerr.New("no questions loaded")
	ErrUnknownQuestion = goerr.New("answer references unknown question")
	ErrEmptyVendor     = goerr.New("vendor name cannot be empty")
)

// Context keys for error values
const (
	QuestionIDKey = "question_id"
	VendorKey     = "vendor"
)
