package cli

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/cli/config"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/repository/csvdir"
	"github.com/secmon-lab/briareus/pkg/service/report"
	"github.com/secmon-lab/briareus/pkg/usecase"
	"github.com/secmon-lab/briareus/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMap() *cli.Command {
	var templatePath string
	var outputDir string
	var vendorName string
	var recordPath string
	var configPath string

	return &cli.Command{
		Name:    "map",
		Aliases: []string{"m"},
		Usage:   "Map risky answers of the latest assessment onto framework controls",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "Control-annotated questionnaire template CSV",
				Value:       defaultTemplatePath,
				Sources:     cli.EnvVars("BRIAREUS_TEMPLATE"),
				Destination: &templatePath,
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Aliases:     []string{"o"},
				Usage:       "Directory holding assessment records and receiving the report",
				Value:       ".",
				Sources:     cli.EnvVars("BRIAREUS_OUTPUT_DIR"),
				Destination: &outputDir,
			},
			&cli.StringFlag{
				Name:        "vendor",
				Usage:       "Only consider records of this vendor",
				Sources:     cli.EnvVars("BRIAREUS_VENDOR"),
				Destination: &vendorName,
			},
			&cli.StringFlag{
				Name:        "record",
				Usage:       "Explicit assessment record path (bypasses discovery)",
				Destination: &recordPath,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Scoring configuration TOML (risk level thresholds)",
				Sources:     cli.EnvVars("BRIAREUS_CONFIG"),
				Destination: &configPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			thresholds, err := config.LoadRiskThresholds(configPath)
			if err != nil {
				return goerr.Wrap(err, "invalid scoring configuration")
			}

			questions, err := csvdir.LoadTemplate(ctx, templatePath)
			if err != nil {
				return goerr.Wrap(err, "failed to load questionnaire template")
			}

			repo := csvdir.New(outputDir)
			uc := usecase.New(repo, usecase.WithThresholds(thresholds))

			var record *model.AssessmentRecord
			if recordPath != "" {
				record, err = repo.LoadRecord(ctx, recordPath)
				if err != nil {
					return goerr.Wrap(err, "failed to load assessment record")
				}
			} else {
				record, err = uc.LatestAssessment(ctx, vendorName)
				if errors.Is(err, csvdir.ErrNoAssessmentRecord) {
					logger.Error("No completed assessment found. Run 'briareus assess' first.",
						"dir", outputDir)
					return err
				}
				if err != nil {
					return err
				}
			}

			logger.Info("Using assessment record",
				"vendor", record.Vendor,
				"assessed_at", record.AssessedAt.Format(time.RFC3339),
			)

			rep, err := uc.MapFrameworks(ctx, questions, record)
			if err != nil {
				return goerr.Wrap(err, "framework mapping failed")
			}

			markdown := report.RenderCompliance(rep)
			reportPath, err := repo.WriteComplianceReport(ctx, rep.Vendor, rep.AnalyzedAt, markdown)
			if err != nil {
				return goerr.Wrap(err, "failed to write compliance report")
			}

			summary := color.New(color.FgGreen, color.Bold)
			_, _ = summary.Printf("\nFramework mapping for %s completed.\n", rep.Vendor)
			_, _ = color.New(color.FgWhite).Printf("Impacted controls: %d\n", len(rep.Findings))
			if len(rep.Unmapped) > 0 {
				_, _ = color.New(color.FgYellow).Printf("Unmapped risky answers: %d\n", len(rep.Unmapped))
			}
			_, _ = color.New(color.FgWhite).Printf("Report: %s\n", reportPath)
			return nil
		},
	}
}
