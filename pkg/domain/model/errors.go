package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the questionnaire domain
var (
	ErrInvalidAnswer   = goerr.New("invalid answer")
	ErrInvalidQuestion = goerr.New("invalid question definition")
)

// Context keys for error values
const (
	QuestionIDKey = "question_id"
	AnswerTypeKey = "answer_type"
	AnswerKey     = "answer"
)
