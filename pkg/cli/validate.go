package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/csvdir"
	"github.com/secmon-lab/briareus/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var templatePath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a questionnaire template without running an assessment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "Questionnaire template CSV",
				Value:       defaultTemplatePath,
				Sources:     cli.EnvVars("BRIAREUS_TEMPLATE"),
				Destination: &templatePath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			questions, err := csvdir.LoadTemplate(ctx, templatePath)
			if err != nil {
				return goerr.Wrap(err, "template validation failed")
			}

			byType := make(map[types.AnswerType]int)
			annotated := 0
			controls := make(map[types.ControlRef]bool)
			for _, q := range questions {
				byType[q.AnswerType]++
				if len(q.Controls) > 0 {
					annotated++
				}
				for _, ctrl := range q.Controls {
					controls[ctrl] = true
				}
			}

			logger.Info("Template validation passed",
				"path", templatePath,
				"questions", len(questions),
				"yes_no", byType[types.AnswerTypeYesNo],
				"score_1_5", byType[types.AnswerTypeScore1to5],
				"text", byType[types.AnswerTypeText],
				"control_annotated", annotated,
				"distinct_controls", len(controls),
			)
			return nil
		},
	}
}
