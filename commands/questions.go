package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/utils"
)

func questionFromFlags(cmd *cli.Command) (models.Question, error) {
	optionTexts := cmd.StringSlice("option")
	if len(optionTexts) < 2 {
		return models.Question{}, fmt.Errorf("a question needs at least 2 --option values")
	}
	correctIndex, err := utils.StrToInt(cmd.String("correct"))
	if err != nil {
		return models.Question{}, fmt.Errorf("invalid --correct value: %v", err)
	}
	if correctIndex < 0 || correctIndex >= len(optionTexts) {
		return models.Question{}, fmt.Errorf("--correct must index one of the %d options (0-based)", len(optionTexts))
	}

	options := make([]models.Option, len(optionTexts))
	for i, text := range optionTexts {
		options[i] = models.Option{Text: text}
	}

	var media []string
	for _, path := range cmd.StringSlice("image") {
		dataURL, err := utils.ReadImageDataURL(path)
		if err != nil {
			return models.Question{}, err
		}
		media = append(media, dataURL)
	}

	return models.Question{
		Text:          cmd.String("text"),
		Options:       options,
		CorrectIndex:  correctIndex,
		Explanation:   cmd.String("explanation"),
		Media:         media,
		Difficulty:    cmd.String("difficulty"),
		Status:        cmd.String("status"),
		QuestionPaper: models.Ref(cmd.String("paper")),
		Subject:       models.Ref(cmd.String("subject")),
		Exam:          models.Ref(cmd.String("exam")),
	}, nil
}

func questionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "text", Usage: "question text", Required: true},
		&cli.StringSliceFlag{Name: "option", Usage: "answer option text (repeatable, in order)"},
		&cli.StringFlag{Name: "correct", Usage: "0-based index of the correct option", Value: "0"},
		&cli.StringFlag{Name: "explanation", Usage: "explanation shown in review"},
		&cli.StringSliceFlag{Name: "image", Usage: "attach a local image file (repeatable)"},
		&cli.StringFlag{Name: "difficulty", Usage: "easy, medium or hard", Value: models.DifficultyMedium},
		&cli.StringFlag{Name: "status", Usage: "draft or published", Value: models.StatusPublished},
		&cli.StringFlag{Name: "paper", Usage: "question paper id", Required: true},
		&cli.StringFlag{Name: "subject", Usage: "subject id", Required: true},
		&cli.StringFlag{Name: "exam", Usage: "exam id", Required: true},
	}
}

func (a *App) QuestionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "questions",
		Usage: "manage questions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list questions of a paper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "paper", Usage: "question paper id", Required: true},
					&cli.StringFlag{Name: "search", Usage: "filter by question text"},
					&cli.StringFlag{Name: "page", Usage: "page number", Value: "1"},
					&cli.StringFlag{Name: "per-page", Usage: "questions per page", Value: "30"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					questions, err := a.Client.ListQuestions(ctx, cmd.String("paper"))
					if err != nil {
						return a.fail(err)
					}
					questions = models.SearchQuestions(questions, cmd.String("search"))

					page, err := utils.StrToInt(cmd.String("page"))
					if err != nil {
						return err
					}
					perPage, err := utils.StrToInt(cmd.String("per-page"))
					if err != nil {
						return err
					}
					total := len(questions)
					questions = models.Paginate(questions, page, perPage)

					rows := make([][]string, 0, len(questions))
					for _, q := range questions {
						rows = append(rows, []string{
							q.ID,
							q.Text,
							strconv.Itoa(len(q.Options)),
							strconv.Itoa(q.CorrectIndex),
							q.Difficulty,
							q.Status,
						})
					}
					utils.PrintTable(a.Out, []string{"ID", "TEXT", "OPTIONS", "CORRECT", "DIFFICULTY", "STATUS"}, rows)
					fmt.Fprintf(a.Out, "\npage %d of %d (%d questions)\n", page, models.PageCount(total, perPage), total)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "create one question",
				Flags: questionFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					question, err := questionFromFlags(cmd)
					if err != nil {
						return err
					}
					if err := a.Client.CreateQuestion(ctx, question); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update a question",
				Flags: append(questionFlags(),
					&cli.StringFlag{Name: "id", Usage: "question id", Required: true}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					question, err := questionFromFlags(cmd)
					if err != nil {
						return err
					}
					if err := a.Client.UpdateQuestion(ctx, cmd.String("id"), question); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete a question",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "question id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if !cmd.Bool("yes") && !utils.Confirm(a.In, a.Out, "Delete this question?") {
						return nil
					}
					if err := a.Client.DeleteQuestion(ctx, cmd.String("id")); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			a.bulkUploadCommand(),
		},
	}
}
