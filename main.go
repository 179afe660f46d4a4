package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"examfit/api"
	"examfit/commands"
	"examfit/config"
	"examfit/session"
)

var Version = "v0.1.0"

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logrus.New()
	log.SetLevel(cfg.ParseLogLevel())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	store := session.NewFileStore(cfg.SessionFile)
	client := api.New(cfg.APIBaseURL, store, log)

	app := &commands.App{
		Client:  client,
		Session: store,
		Log:     log,
		In:      os.Stdin,
		Out:     os.Stdout,
	}

	cmd := &cli.Command{
		Name:    "examfit",
		Usage:   "examfit admin console and practice portal",
		Version: Version,
		Commands: []*cli.Command{
			app.AuthCommand(),
			app.BoardsCommand(),
			app.ExamsCommand(),
			app.SubjectsCommand(),
			app.QuestionPapersCommand(),
			app.QuestionsCommand(),
			app.PracticeCommand(),
			app.TestCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
