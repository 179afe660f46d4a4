package commands

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/utils"
)

func (a *App) ExamsCommand() *cli.Command {
	return &cli.Command{
		Name:  "exams",
		Usage: "manage exams",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list exams (sub-exams are hidden)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Usage: "filter by board id"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					exams, err := a.Client.ListExams(ctx)
					if err != nil {
						return a.fail(err)
					}
					exams = models.RootExams(exams)
					if boardID := cmd.String("board"); boardID != "" {
						exams = models.ExamsByBoard(exams, boardID)
					}
					rows := make([][]string, 0, len(exams))
					for _, e := range exams {
						rows = append(rows, []string{e.ID, e.Title, e.Board.String(), strconv.Itoa(e.Priority)})
					}
					utils.PrintTable(a.Out, []string{"ID", "TITLE", "BOARD", "PRIORITY"}, rows)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create an exam under a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "exam title", Required: true},
					&cli.StringFlag{Name: "board", Usage: "board id", Required: true},
					&cli.StringFlag{Name: "priority", Usage: "display priority (lower first)", Value: "0"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					priority, err := utils.StrToInt(cmd.String("priority"))
					if err != nil {
						return err
					}
					exam := models.Exam{
						Title:    cmd.String("title"),
						Board:    models.Ref(cmd.String("board")),
						Priority: priority,
					}
					if err := a.Client.CreateExam(ctx, exam); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update an exam",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "exam id", Required: true},
					&cli.StringFlag{Name: "title", Usage: "exam title", Required: true},
					&cli.StringFlag{Name: "board", Usage: "board id", Required: true},
					&cli.StringFlag{Name: "priority", Usage: "display priority (lower first)", Value: "0"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					priority, err := utils.StrToInt(cmd.String("priority"))
					if err != nil {
						return err
					}
					exam := models.Exam{
						Title:    cmd.String("title"),
						Board:    models.Ref(cmd.String("board")),
						Priority: priority,
					}
					if err := a.Client.UpdateExam(ctx, cmd.String("id"), exam); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete an exam",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "exam id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if !cmd.Bool("yes") && !utils.Confirm(a.In, a.Out, "Delete this exam and everything under it?") {
						return nil
					}
					if err := a.Client.DeleteExam(ctx, cmd.String("id")); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
		},
	}
}
