package csvdir

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/utils/safe"
)

// recordStampFormat is the sortable timestamp embedded in artifact
// filenames. The authoritative timestamp lives inside the record rows;
// the filename stamp only keeps concurrent vendors from colliding.
const recordStampFormat = "20060102T150405Z"

const recordFilePrefix = "assessment_"

var recordColumns = []string{
	colAssessmentID, colVendorName, colAssessedAt,
	colQuestionID, colQuestionText, colAnswerType, colRiskWeight, colRiskArea,
	colControls, colAnswerGiven, colRiskPoints,
}

type assessmentRepository struct {
	dir string
}

var _ interfaces.AssessmentRepository = &assessmentRepository{}

// Publish writes the record CSV and the narrative report. Both files
// go through temp-file-then-rename so a failure never leaves a record
// without its report or vice versa.
func (r *assessmentRepository) Publish(ctx context.Context, record *model.AssessmentRecord, reportMarkdown string) (string, string, error) {
	if err := record.Validate(); err != nil {
		return "", "", goerr.Wrap(err, "cannot publish invalid record")
	}

	stamp := record.AssessedAt.UTC().Format(recordStampFormat)
	slug := slugify(record.Vendor)
	recordPath := filepath.Join(r.dir, fmt.Sprintf("%s%s_%s.csv", recordFilePrefix, slug, stamp))
	reportPath := filepath.Join(r.dir, fmt.Sprintf("assessment_report_%s_%s.md", slug, stamp))

	recordTmp := recordPath + ".tmp"
	reportTmp := reportPath + ".tmp"

	if err := writeRecordFile(ctx, recordTmp, record); err != nil {
		safe.Remove(ctx, func() error { return os.Remove(recordTmp) })
		return "", "", err
	}
	if err := os.WriteFile(reportTmp, []byte(reportMarkdown), 0o600); err != nil {
		safe.Remove(ctx, func() error { return os.Remove(recordTmp) })
		return "", "", goerr.Wrap(err, "failed to write assessment report", goerr.V(PathKey, reportTmp))
	}

	if err := os.Rename(recordTmp, recordPath); err != nil {
		safe.Remove(ctx, func() error { return os.Remove(recordTmp) })
		safe.Remove(ctx, func() error { return os.Remove(reportTmp) })
		return "", "", goerr.Wrap(err, "failed to finalize assessment record", goerr.V(PathKey, recordPath))
	}
	if err := os.Rename(reportTmp, reportPath); err != nil {
		safe.Remove(ctx, func() error { return os.Remove(recordPath) })
		safe.Remove(ctx, func() error { return os.Remove(reportTmp) })
		return "", "", goerr.Wrap(err, "failed to finalize assessment report", goerr.V(PathKey, reportPath))
	}

	return recordPath, reportPath, nil
}

// Latest selects the most recent record for a vendor by the AssessedAt
// value embedded in the record rows. Filesystem mtime is never
// consulted, keeping discovery reproducible after copies or restores.
// Ties break on filename to stay deterministic.
func (r *assessmentRepository) Latest(ctx context.Context, vendor string) (*model.AssessmentRecord, error) {
	records, paths, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	var best *model.AssessmentRecord
	var bestPath string
	for i, record := range records {
		if vendor != "" && !strings.EqualFold(record.Vendor, vendor) {
			continue
		}
		if best == nil ||
			record.AssessedAt.After(best.AssessedAt) ||
			(record.AssessedAt.Equal(best.AssessedAt) && paths[i] > bestPath) {
			best = record
			bestPath = paths[i]
		}
	}

	if best == nil {
		return nil, goerr.Wrap(ErrNoAssessmentRecord, "no completed assessment available",
			goerr.V("dir", r.dir), goerr.V(VendorKey, vendor))
	}
	return best, nil
}

// List returns every record in the directory
func (r *assessmentRepository) List(ctx context.Context) ([]*model.AssessmentRecord, error) {
	records, _, err := r.loadAll(ctx)
	return records, err
}

// Load reads one record file by explicit path, bypassing discovery
func (r *assessmentRepository) Load(ctx context.Context, path string) (*model.AssessmentRecord, error) {
	return readRecordFile(ctx, path)
}

func (r *assessmentRepository) loadAll(ctx context.Context) ([]*model.AssessmentRecord, []string, error) {
	pattern := filepath.Join(r.dir, recordFilePrefix+"*.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to scan for assessment records", goerr.V("pattern", pattern))
	}

	var records []*model.AssessmentRecord
	var loaded []string
	for _, path := range paths {
		// Report artifacts share the prefix but never the extension;
		// skip anything that is not a record file.
		if strings.Contains(filepath.Base(path), "assessment_report_") {
			continue
		}
		record, err := readRecordFile(ctx, path)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to load assessment record", goerr.V(PathKey, path))
		}
		records = append(records, record)
		loaded = append(loaded, path)
	}
	return records, loaded, nil
}

func writeRecordFile(ctx context.Context, path string, record *model.AssessmentRecord) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return goerr.Wrap(err, "failed to create assessment record", goerr.V(PathKey, path))
	}
	defer safe.Close(ctx, f)

	w := csv.NewWriter(f)
	if err := w.Write(recordColumns); err != nil {
		return goerr.Wrap(err, "failed to write record header", goerr.V(PathKey, path))
	}

	assessedAt := record.AssessedAt.UTC().Format(time.RFC3339)
	for _, result := range record.Results {
		row := []string{
			record.ID,
			record.Vendor,
			assessedAt,
			result.Question.ID.String(),
			result.Question.Text,
			result.Question.AnswerType.String(),
			strconv.Itoa(result.Question.RiskWeight),
			result.Question.RiskArea,
			joinControls(result.Question.Controls),
			result.AnswerGiven,
			strconv.Itoa(result.Points),
		}
		if err := w.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write record row", goerr.V(PathKey, path))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush assessment record", goerr.V(PathKey, path))
	}
	return nil
}

func readRecordFile(ctx context.Context, path string) (*model.AssessmentRecord, error) {
	// #nosec G304 - path comes from directory discovery or CLI argument
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open assessment record", goerr.V(PathKey, path))
	}
	defer safe.Close(ctx, f)

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedRecord, "failed to read record header", goerr.V(PathKey, path))
	}
	columns, err := indexColumns(header, recordColumns)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid record header", goerr.V(PathKey, path))
	}

	record := &model.AssessmentRecord{}
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedRecord, "failed to read record row",
				goerr.V(PathKey, path), goerr.V(RowKey, row))
		}

		get := func(name string) string {
			idx := columns[name]
			if idx >= len(fields) {
				return ""
			}
			return fields[idx]
		}

		if record.ID == "" {
			record.ID = get(colAssessmentID)
			record.Vendor = get(colVendorName)
			assessedAt, err := time.Parse(time.RFC3339, get(colAssessedAt))
			if err != nil {
				return nil, goerr.Wrap(ErrMalformedRecord, "invalid assessment timestamp",
					goerr.V(PathKey, path), goerr.V("value", get(colAssessedAt)))
			}
			record.AssessedAt = assessedAt.UTC()
		}

		weight, err := strconv.Atoi(get(colRiskWeight))
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedRecord, "risk weight must be numeric",
				goerr.V(PathKey, path), goerr.V(RowKey, row))
		}
		points, err := strconv.Atoi(get(colRiskPoints))
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedRecord, "risk points must be numeric",
				goerr.V(PathKey, path), goerr.V(RowKey, row))
		}

		record.Results = append(record.Results, model.AssessmentResult{
			Question: model.Question{
				ID:         types.QuestionID(get(colQuestionID)),
				Text:       get(colQuestionText),
				AnswerType: types.AnswerType(get(colAnswerType)),
				RiskWeight: weight,
				RiskArea:   get(colRiskArea),
				Controls:   types.ParseControlList(get(colControls)),
			},
			AnswerGiven: get(colAnswerGiven),
			Points:      points,
		})
	}

	if len(record.Results) == 0 {
		return nil, goerr.Wrap(ErrMalformedRecord, "record has no rows", goerr.V(PathKey, path))
	}
	return record, nil
}

func joinControls(controls []types.ControlRef) string {
	tokens := make([]string, len(controls))
	for i, c := range controls {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, "; ")
}

// LoadRecord reads one assessment record by explicit path, bypassing
// latest-record discovery.
func (c *Client) LoadRecord(ctx context.Context, path string) (*model.AssessmentRecord, error) {
	return c.assessment.Load(ctx, path)
}

// WriteComplianceReport stores the phase-2 narrative next to the
// assessment artifacts it was derived from.
func (c *Client) WriteComplianceReport(ctx context.Context, vendor string, analyzedAt time.Time, markdown string) (string, error) {
	stamp := analyzedAt.UTC().Format(recordStampFormat)
	path := filepath.Join(c.assessment.dir,
		fmt.Sprintf("framework_compliance_report_%s_%s.md", slugify(vendor), stamp))

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(markdown), 0o600); err != nil {
		safe.Remove(ctx, func() error { return os.Remove(tmp) })
		return "", goerr.Wrap(err, "failed to write compliance report", goerr.V(PathKey, tmp))
	}
	if err := os.Rename(tmp, path); err != nil {
		safe.Remove(ctx, func() error { return os.Remove(tmp) })
		return "", goerr.Wrap(err, "failed to finalize compliance report", goerr.V(PathKey, path))
	}
	return path, nil
}
