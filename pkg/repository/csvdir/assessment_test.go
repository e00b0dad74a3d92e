package csvdir_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/csvdir"
)

func testRecord(vendor string, assessedAt time.Time) *model.AssessmentRecord {
	return &model.AssessmentRecord{
		ID:         "11111111-2222-3333-4444-555555555555",
		Vendor:     vendor,
		AssessedAt: assessedAt,
		Results: []model.AssessmentResult{
			{
				Question: model.Question{
					ID:         "Q1",
					Text:       "Do you encrypt data at rest?",
					AnswerType: types.AnswerTypeYesNo,
					RiskWeight: 3,
					RiskArea:   "Data Protection",
					Controls:   types.ParseControlList("ISO27001:A.8.2.3; NISTCSF:PR.DS-1"),
				},
				AnswerGiven: "no",
				Points:      3,
			},
			{
				Question: model.Question{
					ID:         "Q2",
					Text:       "Rate your access review maturity",
					AnswerType: types.AnswerTypeScore1to5,
					RiskWeight: 4,
					RiskArea:   "Access Control",
				},
				AnswerGiven: "2",
				Points:      12,
			},
		},
	}
}

func TestAssessmentRepository_PublishAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := csvdir.New(dir)

	assessedAt := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	record := testRecord("Acme Corp", assessedAt)

	recordPath, reportPath, err := repo.Assessment().Publish(ctx, record, "# report\n")
	gt.NoError(t, err).Required()
	gt.String(t, filepath.Base(recordPath)).Equal("assessment_acme_corp_20260831T103000Z.csv")
	gt.String(t, filepath.Base(reportPath)).Equal("assessment_report_acme_corp_20260831T103000Z.md")

	// No temp files left behind
	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	gt.NoError(t, err).Required()
	gt.Array(t, leftovers).Length(0)

	loaded, err := repo.LoadRecord(ctx, recordPath)
	gt.NoError(t, err).Required()
	gt.Value(t, loaded.ID).Equal(record.ID)
	gt.Value(t, loaded.Vendor).Equal("Acme Corp")
	gt.Bool(t, loaded.AssessedAt.Equal(assessedAt)).True()
	gt.Array(t, loaded.Results).Length(2)
	gt.Value(t, loaded.Results[0].Question).Equal(record.Results[0].Question)
	gt.Value(t, loaded.Results[0].AnswerGiven).Equal("no")
	gt.Number(t, loaded.Results[1].Points).Equal(12)
}

func TestAssessmentRepository_LatestByEmbeddedTimestamp(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := csvdir.New(dir)

	older := testRecord("Acme Corp", time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	newer := testRecord("Acme Corp", time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	other := testRecord("Globex", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	// Publish the newest first so mtime order contradicts embedded order
	for _, record := range []*model.AssessmentRecord{newer, older, other} {
		_, _, err := repo.Assessment().Publish(ctx, record, "# report\n")
		gt.NoError(t, err).Required()
	}

	latest, err := repo.Assessment().Latest(ctx, "Acme Corp")
	gt.NoError(t, err).Required()
	gt.Bool(t, latest.AssessedAt.Equal(newer.AssessedAt)).True()

	// Vendor filter is case-insensitive
	latest, err = repo.Assessment().Latest(ctx, "acme corp")
	gt.NoError(t, err).Required()
	gt.Value(t, latest.Vendor).Equal("Acme Corp")

	// Without a vendor filter the overall newest wins
	latest, err = repo.Assessment().Latest(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, latest.Vendor).Equal("Globex")

	all, err := repo.Assessment().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, all).Length(3)
}

func TestAssessmentRepository_LatestMissing(t *testing.T) {
	repo := csvdir.New(t.TempDir())
	_, err := repo.Assessment().Latest(context.Background(), "Acme Corp")
	gt.Error(t, err).Is(csvdir.ErrNoAssessmentRecord)
}

func TestAssessmentRepository_MalformedRecord(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := csvdir.New(dir)

	path := filepath.Join(dir, "assessment_broken_20260831T000000Z.csv")
	gt.NoError(t, os.WriteFile(path, []byte("not,a,record\n"), 0o600)).Required()

	_, err := repo.Assessment().Latest(ctx, "")
	gt.Value(t, err).NotNil()
}

func TestWriteComplianceReport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := csvdir.New(dir)

	analyzedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	path, err := repo.WriteComplianceReport(ctx, "Acme Corp", analyzedAt, "# compliance\n")
	gt.NoError(t, err).Required()
	gt.String(t, filepath.Base(path)).Equal("framework_compliance_report_acme_corp_20260901T120000Z.md")

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.Bool(t, strings.HasPrefix(string(data), "# compliance")).True()
}
