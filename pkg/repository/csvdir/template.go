package csvdir

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/utils/safe"
)

// Template column names. RelevantFrameworkControl is optional; an
// un-annotated template still supports the assessment phase.
const (
	colQuestionID   = "QuestionID"
	colQuestionText = "QuestionText"
	colAnswerType   = "AnswerType"
	colRiskWeight   = "RiskWeight"
	colRiskArea     = "RiskArea"
	colControls     = "RelevantFrameworkControl"
	colVendorName   = "VendorName"
	colAssessedAt   = "AssessedAt"
	colAnswerGiven  = "AnswerGiven"
	colRiskPoints   = "RiskPoints"
	colAssessmentID = "AssessmentID"
)

var templateRequiredColumns = []string{
	colQuestionID, colQuestionText, colAnswerType, colRiskWeight, colRiskArea,
}

// LoadTemplate reads a questionnaire template CSV and returns its
// questions in file order. Any structural problem (missing required
// column, non-numeric weight, invalid answer type, duplicate ID)
// aborts the load; a bad row never degrades into a partial template.
func LoadTemplate(ctx context.Context, path string) ([]*model.Question, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open template file", goerr.V(PathKey, path))
	}
	defer safe.Close(ctx, f)

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedTemplate, "failed to read template header", goerr.V(PathKey, path))
	}

	columns, err := indexColumns(header, templateRequiredColumns)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid template header", goerr.V(PathKey, path))
	}

	seen := make(map[types.QuestionID]bool)
	var questions []*model.Question
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedTemplate, "failed to read template row",
				goerr.V(PathKey, path), goerr.V(RowKey, row))
		}

		q, err := questionFromRow(columns, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid template row",
				goerr.V(PathKey, path), goerr.V(RowKey, row))
		}
		if seen[q.ID] {
			return nil, goerr.Wrap(ErrMalformedTemplate, "duplicate question ID",
				goerr.V(PathKey, path), goerr.V(RowKey, row), goerr.V(model.QuestionIDKey, q.ID))
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, goerr.Wrap(ErrMalformedTemplate, "template has no questions", goerr.V(PathKey, path))
	}

	return questions, nil
}

func questionFromRow(columns map[string]int, record []string) (*model.Question, error) {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	weight, err := strconv.Atoi(get(colRiskWeight))
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedTemplate, "risk weight must be numeric",
			goerr.V(ColumnKey, colRiskWeight),
			goerr.V("value", get(colRiskWeight)))
	}

	q := &model.Question{
		ID:         types.QuestionID(get(colQuestionID)),
		Text:       get(colQuestionText),
		AnswerType: types.AnswerType(get(colAnswerType)),
		RiskWeight: weight,
		RiskArea:   get(colRiskArea),
		Controls:   types.ParseControlList(get(colControls)),
	}
	if err := q.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid question")
	}
	return q, nil
}

// indexColumns maps column names to their positions and verifies that
// every required column is present.
func indexColumns(header []string, required []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, goerr.Wrap(ErrMalformedTemplate, "missing required column",
				goerr.V(ColumnKey, name))
		}
	}
	return columns, nil
}
