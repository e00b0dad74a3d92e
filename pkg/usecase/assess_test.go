package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/memory"
	"github.com/secmon-lab/briareus/pkg/service/prompt"
	"github.com/secmon-lab/briareus/pkg/usecase"
)

func acmeQuestions() []*model.Question {
	return []*model.Question{
		{
			ID:         "Q1",
			Text:       "Do you enforce MFA for privileged accounts?",
			AnswerType: types.AnswerTypeYesNo,
			RiskWeight: 3,
			RiskArea:   "Access Control",
		},
		{
			ID:         "Q2",
			Text:       "Rate your access review maturity",
			AnswerType: types.AnswerTypeScore1to5,
			RiskWeight: 4,
			RiskArea:   "Access Control",
			Controls:   types.ParseControlList("ISO27001:A.9.2.1"),
		},
	}
}

// scriptedSource replays canned inputs per question and counts the
// attempts, acting as an interactive source for re-ask tests.
type scriptedSource struct {
	vendor   string
	scripts  map[types.QuestionID][]string
	attempts map[types.QuestionID]int
}

func (s *scriptedSource) VendorName(ctx context.Context) (string, error) {
	return s.vendor, nil
}

func (s *scriptedSource) Answer(ctx context.Context, q *model.Question, attempt int) (string, error) {
	if s.attempts == nil {
		s.attempts = make(map[types.QuestionID]int)
	}
	s.attempts[q.ID]++

	script := s.scripts[q.ID]
	if attempt >= len(script) {
		return script[len(script)-1], nil
	}
	return script[attempt], nil
}

func (s *scriptedSource) Interactive() bool {
	return true
}

func TestAssess_StaticSource(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	src := prompt.NewStatic("Acme", map[types.QuestionID]string{
		"Q1": "no",
		"Q2": "2",
	})

	record, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.NoError(t, err).Required()

	gt.Value(t, record.Vendor).Equal("Acme")
	gt.String(t, record.ID).NotEqual("")
	gt.Bool(t, record.AssessedAt.IsZero()).False()
	gt.Array(t, record.Results).Length(2)
	gt.Number(t, record.Results[0].Points).Equal(3)
	gt.Number(t, record.Results[1].Points).Equal(12)
	gt.Number(t, record.TotalScore()).Equal(15)
}

func TestAssess_NormalizesShorthand(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	src := prompt.NewStatic("Acme", map[types.QuestionID]string{
		"Q1": "Y",
		"Q2": " 5 ",
	})

	record, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.NoError(t, err).Required()
	gt.Value(t, record.Results[0].AnswerGiven).Equal("yes")
	gt.Value(t, record.Results[1].AnswerGiven).Equal("5")
	gt.Number(t, record.TotalScore()).Equal(0)
}

func TestAssess_InvalidAnswerNonInteractive(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	src := prompt.NewStatic("Acme", map[types.QuestionID]string{
		"Q1": "maybe",
		"Q2": "2",
	})

	_, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.Error(t, err).Is(model.ErrInvalidAnswer)
}

func TestAssess_MissingAnswerNonInteractive(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	src := prompt.NewStatic("Acme", map[types.QuestionID]string{
		"Q1": "no",
	})

	_, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.Error(t, err).Is(prompt.ErrMissingAnswer)
}

func TestAssess_InteractiveReask(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	src := &scriptedSource{
		vendor: "Acme",
		scripts: map[types.QuestionID][]string{
			"Q1": {"maybe", "definitely", "no"},
			"Q2": {"6", "2"},
		},
	}

	record, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.NoError(t, err).Required()
	gt.Number(t, src.attempts["Q1"]).Equal(3)
	gt.Number(t, src.attempts["Q2"]).Equal(2)
	gt.Value(t, record.Results[0].AnswerGiven).Equal("no")
	gt.Number(t, record.TotalScore()).Equal(15)
}

func TestAssess_EmptyVendor(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	src := prompt.NewStatic("", map[types.QuestionID]string{"Q1": "no", "Q2": "2"})
	_, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.Value(t, err).NotNil()
}

func TestAssess_NoQuestions(t *testing.T) {
	uc := usecase.New(memory.New())
	src := prompt.NewStatic("Acme", nil)

	_, err := uc.Assess(context.Background(), nil, src)
	gt.Error(t, err).Is(usecase.ErrNoQuestions)
}

func TestPublishAssessment(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	src := prompt.NewStatic("Acme", map[types.QuestionID]string{"Q1": "no", "Q2": "2"})
	record, err := uc.Assess(ctx, acmeQuestions(), src)
	gt.NoError(t, err).Required()

	recordPath, reportPath, err := uc.PublishAssessment(ctx, record)
	gt.NoError(t, err).Required()
	gt.String(t, recordPath).NotEqual("")
	gt.String(t, reportPath).NotEqual("")

	stored, err := repo.Assessment().Latest(ctx, "Acme")
	gt.NoError(t, err).Required()
	gt.Number(t, stored.TotalScore()).Equal(15)
	gt.String(t, repo.Reports()[record.ID]).NotEqual("")
}
