package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/cli/config"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/repository/csvdir"
	"github.com/secmon-lab/briareus/pkg/service/prompt"
	"github.com/secmon-lab/briareus/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const defaultTemplatePath = "vendor_questionnaire_template.csv"

func cmdAssess() *cli.Command {
	var templatePath string
	var outputDir string
	var answersPath string
	var vendorName string
	var configPath string

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Run a questionnaire assessment and publish the scored record and report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "Questionnaire template CSV",
				Value:       defaultTemplatePath,
				Sources:     cli.EnvVars("BRIAREUS_TEMPLATE"),
				Destination: &templatePath,
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Aliases:     []string{"o"},
				Usage:       "Directory for published artifacts",
				Value:       ".",
				Sources:     cli.EnvVars("BRIAREUS_OUTPUT_DIR"),
				Destination: &outputDir,
			},
			&cli.StringFlag{
				Name:        "answers",
				Usage:       "TOML answer file for a non-interactive run",
				Sources:     cli.EnvVars("BRIAREUS_ANSWERS"),
				Destination: &answersPath,
			},
			&cli.StringFlag{
				Name:        "vendor",
				Usage:       "Vendor name (overrides the answer file, skips the prompt)",
				Sources:     cli.EnvVars("BRIAREUS_VENDOR"),
				Destination: &vendorName,
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
			thresholds, err := config.LoadRiskThresholds(configPath)
			if err != nil {
				return goerr.Wrap(err, "invalid scoring configuration")
			}

			questions, err := csvdir.LoadTemplate(ctx, templatePath)
			if err != nil {
				return goerr.Wrap(err, "failed to load questionnaire template")
			}

			src, err := buildAnswerSource(answersPath, vendorName)
			if err != nil {
				return err
			}

			repo := csvdir.New(outputDir)
			uc := usecase.New(repo, usecase.WithThresholds(thresholds))

			record, err := uc.Assess(ctx, questions, src)
			if err != nil {
				return goerr.Wrap(err, "assessment failed")
			}

			recordPath, reportPath, err := uc.PublishAssessment(ctx, record)
			if err != nil {
				return goerr.Wrap(err, "failed to publish assessment")
			}

			total := record.TotalScore()
			summary := color.New(color.FgGreen, color.Bold)
			_, _ = summary.Printf("\nAssessment for %s completed.\n", record.Vendor)
			_, _ = color.New(color.FgWhite).Printf("Total risk score: %d (%s)\n", total, thresholds.Level(total).Label())
			_, _ = color.New(color.FgWhite).Printf("Record: %s\nReport: %s\n", recordPath, reportPath)
			return nil
		},
	}
}

func buildAnswerSource(answersPath, vendorName string) (interfaces.AnswerSource, error) {
	if answersPath == "" {
		var opts []prompt.TerminalOption
		if vendorName != "" {
			opts = append(opts, prompt.WithVendorName(vendorName))
		}
		return prompt.NewTerminal(os.Stdin, os.Stdout, opts...), nil
	}

	file, err := config.LoadAnswerFile(answersPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load answer file")
	}

	vendor := file.Vendor
	if vendorName != "" {
		vendor = vendorName
	}
	return prompt.NewStatic(vendor, file.AnswerMap()), nil
}
