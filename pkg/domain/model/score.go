package model

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// ScoredAnswer is the scoring outcome for one (question, answer) pair
type ScoredAnswer struct {
	Points int
	Risky  bool
}

// Score derives risk points and riskiness from a question and its
// normalized answer value. Both the assessment phase and the framework
// mapping phase call this function; the classification rule must never
// be re-derived elsewhere, or the two phases diverge.
//
// Rules:
//   - yes_no: "no" earns the full risk weight and is risky; "yes" earns 0.
//   - score_1_5: points = (5 - value) * weight; risky iff value < 5.
//   - text: always 0 points and never risky (captured for review only).
func Score(q *Question, value string) (ScoredAnswer, error) {
	switch q.AnswerType {
	case types.AnswerTypeYesNo:
		switch value {
		case "no":
			return ScoredAnswer{Points: q.RiskWeight, Risky: true}, nil
		case "yes":
			return ScoredAnswer{}, nil
		default:
			return ScoredAnswer{}, goerr.Wrap(ErrInvalidAnswer, "unscorable yes/no answer",
				goerr.V(QuestionIDKey, q.ID),
				goerr.V(AnswerKey, value))
		}

	case types.AnswerTypeScore1to5:
		score, err := strconv.Atoi(value)
		if err != nil || score < 1 || score > 5 {
			return ScoredAnswer{}, goerr.Wrap(ErrInvalidAnswer, "unscorable 1-5 answer",
				goerr.V(QuestionIDKey, q.ID),
				goerr.V(AnswerKey, value))
		}
		points := (5 - score) * q.RiskWeight
		return ScoredAnswer{Points: points, Risky: points > 0}, nil

	case types.AnswerTypeText:
		return ScoredAnswer{}, nil

	default:
		return ScoredAnswer{}, goerr.Wrap(ErrInvalidAnswer, "unsupported answer type",
			goerr.V(QuestionIDKey, q.ID),
			goerr.V(AnswerTypeKey, q.AnswerType))
	}
}
