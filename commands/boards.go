package commands

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/utils"
)

func (a *App) BoardsCommand() *cli.Command {
	return &cli.Command{
		Name:  "boards",
		Usage: "manage exam boards",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list boards ordered by display priority",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					boards, err := a.Client.ListBoards(ctx)
					if err != nil {
						return a.fail(err)
					}
					models.SortBoards(boards)
					rows := make([][]string, 0, len(boards))
					for _, b := range boards {
						rows = append(rows, []string{b.ID, b.Name, strconv.Itoa(b.Priority), b.Description})
					}
					utils.PrintTable(a.Out, []string{"ID", "NAME", "PRIORITY", "DESCRIPTION"}, rows)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "board name", Required: true},
					&cli.StringFlag{Name: "description", Usage: "board description"},
					&cli.StringFlag{Name: "priority", Usage: "display priority (lower first)", Value: "0"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					priority, err := utils.StrToInt(cmd.String("priority"))
					if err != nil {
						return err
					}
					board := models.Board{
						Name:        cmd.String("name"),
						Description: cmd.String("description"),
						Priority:    priority,
					}
					if err := a.Client.CreateBoard(ctx, board); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "board id", Required: true},
					&cli.StringFlag{Name: "name", Usage: "board name", Required: true},
					&cli.StringFlag{Name: "description", Usage: "board description"},
					&cli.StringFlag{Name: "priority", Usage: "display priority (lower first)", Value: "0"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					priority, err := utils.StrToInt(cmd.String("priority"))
					if err != nil {
						return err
					}
					board := models.Board{
						Name:        cmd.String("name"),
						Description: cmd.String("description"),
						Priority:    priority,
					}
					if err := a.Client.UpdateBoard(ctx, cmd.String("id"), board); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "board id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if !cmd.Bool("yes") && !utils.Confirm(a.In, a.Out, "Delete this board and everything under it?") {
						return nil
					}
					if err := a.Client.DeleteBoard(ctx, cmd.String("id")); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
		},
	}
}
