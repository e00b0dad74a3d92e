package model

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// NormalizeAnswer validates a raw answer against an answer type and
// returns its canonical form. It is a pure function so that every
// input source (terminal, answer file, tests) goes through the same
// validation path.
//
// Canonical forms: yes_no answers become "yes" or "no" ("y"/"n"
// shorthand accepted, case-insensitive); score_1_5 answers become the
// decimal digit; text answers are trimmed but otherwise kept as given.
func NormalizeAnswer(answerType types.AnswerType, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	switch answerType {
	case types.AnswerTypeYesNo:
		switch strings.ToLower(trimmed) {
		case "yes", "y":
			return "yes", nil
		case "no", "n":
			return "no", nil
		default:
			return "", goerr.Wrap(ErrInvalidAnswer, "answer must be 'yes' or 'no'",
				goerr.V(AnswerTypeKey, answerType),
				goerr.V(AnswerKey, trimmed))
		}

	case types.AnswerTypeScore1to5:
		score, err := strconv.Atoi(trimmed)
		if err != nil {
			return "", goerr.Wrap(ErrInvalidAnswer, "answer must be a number",
				goerr.V(AnswerTypeKey, answerType),
				goerr.V(AnswerKey, trimmed))
		}
		if score < 1 || score > 5 {
			return "", goerr.Wrap(ErrInvalidAnswer, "answer must be between 1 and 5",
				goerr.V(AnswerTypeKey, answerType),
				goerr.V(AnswerKey, trimmed))
		}
		return strconv.Itoa(score), nil

	case types.AnswerTypeText:
		if trimmed == "" {
			return "", goerr.Wrap(ErrInvalidAnswer, "answer cannot be empty",
				goerr.V(AnswerTypeKey, answerType))
		}
		return trimmed, nil

	default:
		return "", goerr.Wrap(ErrInvalidAnswer, "unsupported answer type",
			goerr.V(AnswerTypeKey, answerType))
	}
}
