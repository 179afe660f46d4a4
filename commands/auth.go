package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/session"
)

func (a *App) AuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "login, logout and account info",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "log in and store the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "account email", Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "account password", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					resp, err := a.Client.Login(ctx, models.Credentials{
						Email:    cmd.String("email"),
						Password: cmd.String("password"),
					})
					if err != nil {
						return a.fail(err)
					}
					if err := a.Session.Save(resp.Token, resp.User); err != nil {
						return err
					}
					fmt.Fprintln(a.Out, "Logged in.")
					return nil
				},
			},
			{
				Name:  "register",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "display name", Required: true},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "account email", Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "account password", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					resp, err := a.Client.Register(ctx, models.Credentials{
						Name:     cmd.String("name"),
						Email:    cmd.String("email"),
						Password: cmd.String("password"),
					})
					if err != nil {
						return a.fail(err)
					}
					if resp.Token != "" {
						if err := a.Session.Save(resp.Token, resp.User); err != nil {
							return err
						}
					}
					fmt.Fprintln(a.Out, "Account created.")
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "clear the stored session",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if err := a.Session.Clear(); err != nil {
						return err
					}
					fmt.Fprintln(a.Out, "Logged out.")
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "show the logged-in account",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if session.TokenExpired(a.Session.Token()) {
						fmt.Fprintln(a.Out, "Not logged in (or token expired).")
						return nil
					}
					user, err := a.Client.Me(ctx)
					if err != nil {
						return a.fail(err)
					}
					fmt.Fprintf(a.Out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
					return nil
				},
			},
		},
	}
}
