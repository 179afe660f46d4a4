package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/utils"
)

func paperFromFlags(cmd *cli.Command) (models.QuestionPaper, error) {
	year := 0
	if raw := cmd.String("year"); raw != "" {
		var err error
		year, err = utils.StrToInt(raw)
		if err != nil {
			return models.QuestionPaper{}, err
		}
	}
	return models.QuestionPaper{
		Name:    cmd.String("name"),
		Subject: models.Ref(cmd.String("subject")),
		Exam:    models.Ref(cmd.String("exam")),
		Board:   models.Ref(cmd.String("board")),
		Section: cmd.String("section"),
		Year:    year,
	}, nil
}

func (a *App) QuestionPapersCommand() *cli.Command {
	return &cli.Command{
		Name:    "papers",
		Aliases: []string{"question-papers"},
		Usage:   "manage question papers",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list papers for a subject, grouped by section in priority order",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Usage: "subject id", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					subjectID := cmd.String("subject")
					subject, err := a.Client.GetSubject(ctx, subjectID)
					if err != nil {
						return a.fail(err)
					}
					papers, err := a.Client.ListQuestionPapers(ctx, subjectID)
					if err != nil {
						return a.fail(err)
					}
					papers = models.PapersBySubject(papers, subjectID)

					grouped := models.GroupBySection(papers)
					for _, section := range models.SectionNames(grouped, subject) {
						fmt.Fprintf(a.Out, "\n%s\n", section)
						rows := make([][]string, 0, len(grouped[section]))
						for _, p := range grouped[section] {
							rows = append(rows, []string{p.ID, p.Name, utils.IntOrDash(p.Year)})
						}
						utils.PrintTable(a.Out, []string{"ID", "NAME", "YEAR"}, rows)
					}
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a question paper under a subject",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "paper name", Required: true},
					&cli.StringFlag{Name: "subject", Usage: "subject id", Required: true},
					&cli.StringFlag{Name: "exam", Usage: "exam id", Required: true},
					&cli.StringFlag{Name: "board", Usage: "board id", Required: true},
					&cli.StringFlag{Name: "section", Usage: "section label", Value: "General"},
					&cli.StringFlag{Name: "year", Usage: "paper year (optional)"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					paper, err := paperFromFlags(cmd)
					if err != nil {
						return err
					}
					if err := a.Client.CreateQuestionPaper(ctx, paper); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update a question paper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "paper id", Required: true},
					&cli.StringFlag{Name: "name", Usage: "paper name", Required: true},
					&cli.StringFlag{Name: "subject", Usage: "subject id"},
					&cli.StringFlag{Name: "exam", Usage: "exam id"},
					&cli.StringFlag{Name: "board", Usage: "board id"},
					&cli.StringFlag{Name: "section", Usage: "section label", Value: "General"},
					&cli.StringFlag{Name: "year", Usage: "paper year (optional)"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					paper, err := paperFromFlags(cmd)
					if err != nil {
						return err
					}
					if err := a.Client.UpdateQuestionPaper(ctx, cmd.String("id"), paper); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete a question paper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "paper id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if !cmd.Bool("yes") && !utils.Confirm(a.In, a.Out, "Delete this paper and its questions?") {
						return nil
					}
					if err := a.Client.DeleteQuestionPaper(ctx, cmd.String("id")); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
		},
	}
}
