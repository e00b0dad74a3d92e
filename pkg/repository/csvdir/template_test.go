package csvdir_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/csvdir"
)

const validTemplate = `QuestionID,QuestionText,AnswerType,RiskWeight,RiskArea,RelevantFrameworkControl
Q1,Do you encrypt data at rest?,yes_no,3,Data Protection,ISO27001:A.8.2.3; NISTCSF:PR.DS-1
Q2,Rate your access review maturity,score_1_5,4,Access Control,ISO27001:A.9.2.1
Q3,Describe your incident response process,text,5,Incident Response,
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.csv")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadTemplate(t *testing.T) {
	ctx := context.Background()
	questions, err := csvdir.LoadTemplate(ctx, writeTemplate(t, validTemplate))
	gt.NoError(t, err).Required()
	gt.Array(t, questions).Length(3)

	q1 := questions[0]
	gt.Value(t, q1.ID).Equal(types.QuestionID("Q1"))
	gt.Value(t, q1.AnswerType).Equal(types.AnswerTypeYesNo)
	gt.Number(t, q1.RiskWeight).Equal(3)
	gt.Value(t, q1.RiskArea).Equal("Data Protection")
	gt.Array(t, q1.Controls).Length(2)
	gt.Value(t, q1.Controls[0]).Equal(types.ControlRef("ISO27001:A.8.2.3"))

	gt.Array(t, questions[2].Controls).Length(0)
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := csvdir.LoadTemplate(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	gt.Value(t, err).NotNil()
}

func TestLoadTemplate_MissingColumn(t *testing.T) {
	content := `QuestionID,QuestionText,AnswerType,RiskArea
Q1,Do you encrypt data at rest?,yes_no,Data Protection
`
	_, err := csvdir.LoadTemplate(context.Background(), writeTemplate(t, content))
	gt.Error(t, err).Is(csvdir.ErrMalformedTemplate)
}

func TestLoadTemplate_NonNumericWeight(t *testing.T) {
	content := `QuestionID,QuestionText,AnswerType,RiskWeight,RiskArea,RelevantFrameworkControl
Q1,Do you encrypt data at rest?,yes_no,heavy,Data Protection,
`
	_, err := csvdir.LoadTemplate(context.Background(), writeTemplate(t, content))
	gt.Error(t, err).Is(csvdir.ErrMalformedTemplate)
}

func TestLoadTemplate_DuplicateQuestionID(t *testing.T) {
	content := `QuestionID,QuestionText,AnswerType,RiskWeight,RiskArea,RelevantFrameworkControl
Q1,First question,yes_no,3,Area,
Q1,Second question,yes_no,2,Area,
`
	_, err := csvdir.LoadTemplate(context.Background(), writeTemplate(t, content))
	gt.Error(t, err).Is(csvdir.ErrMalformedTemplate)
}

func TestLoadTemplate_BadAnswerType(t *testing.T) {
	content := `QuestionID,QuestionText,AnswerType,RiskWeight,RiskArea,RelevantFrameworkControl
Q1,First question,multiple_choice,3,Area,
`
	_, err := csvdir.LoadTemplate(context.Background(), writeTemplate(t, content))
	gt.Value(t, err).NotNil()
}

func TestLoadTemplate_Empty(t *testing.T) {
	content := `QuestionID,QuestionText,AnswerType,RiskWeight,RiskArea,RelevantFrameworkControl
`
	_, err := csvdir.LoadTemplate(context.Background(), writeTemplate(t, content))
	gt.Error(t, err).Is(csvdir.ErrMalformedTemplate)
}
