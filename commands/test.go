package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"examfit/api"
	"examfit/models"
	"examfit/student"
	"examfit/utils"
)

func (a *App) TestCommand() *cli.Command {
	return &cli.Command{
		Name:  "test",
		Usage: "take practice tests",
		Commands: []*cli.Command{
			{
				Name:  "start",
				Usage: "start an attempt on a question paper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "paper", Usage: "question paper id", Required: true},
					&cli.StringFlag{Name: "exam", Usage: "exam id"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					testID, err := a.Client.CreateTest(ctx, api.CreateTestRequest{
						QuestionPaperID: cmd.String("paper"),
						ExamID:          cmd.String("exam"),
					})
					if err != nil {
						return a.fail(err)
					}
					fmt.Fprintf(a.Out, "Test started: %s\nRun `examfit test take --id %s` to begin.\n", testID, testID)
					return nil
				},
			},
			{
				Name:  "take",
				Usage: "answer the questions of an attempt",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "test id", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return a.takeTest(ctx, cmd.String("id"))
				},
			},
			{
				Name:  "result",
				Usage: "show the score and review of an attempt",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "test id", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					result, err := a.Client.GetTestResult(ctx, cmd.String("id"))
					if err != nil {
						return a.fail(err)
					}
					a.printResult(result)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "discard an attempt",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "test id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if !cmd.Bool("yes") && !utils.Confirm(a.In, a.Out, "Discard this attempt?") {
						return nil
					}
					if err := a.Client.DeleteTest(ctx, cmd.String("id")); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
		},
	}
}

// takeTest runs the interactive answering loop. Answers save immediately on
// selection and cannot be changed; the autosave task re-posts held answers
// every 10 seconds until the loop ends.
func (a *App) takeTest(ctx context.Context, testID string) error {
	runner := student.NewRunner(a.Client, testID, a.Log)
	test, err := runner.Load(ctx)
	if err != nil {
		return a.fail(err)
	}
	if test.Submitted {
		fmt.Fprintf(a.Out, "This test is already submitted. Run `examfit test result --id %s`.\n", testID)
		return nil
	}

	runner.StartAutosave(ctx)
	defer runner.StopAutosave()

	fmt.Fprintf(a.Out, "%s — %d questions\n", test.DisplayTitle(), len(test.Questions))
	fmt.Fprintln(a.Out, "Answer with 1-4 (or a-d), press enter to skip, type `submit` to finish.")

	scanner := bufio.NewScanner(a.In)
	for i, question := range test.Questions {
		if runner.Answered(question.ID) {
			continue
		}
		fmt.Fprintf(a.Out, "\nQ%d. %s\n", i+1, question.Text)
		for j, opt := range question.Options {
			fmt.Fprintf(a.Out, "  %c) %s\n", 'a'+j, opt.Text)
		}

		for {
			fmt.Fprint(a.Out, "> ")
			if !scanner.Scan() {
				fmt.Fprintln(a.Out, "\nAttempt kept; resume with the same test id.")
				return nil
			}
			input := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if input == "" {
				break
			}
			if input == "submit" {
				return a.submitTest(ctx, runner)
			}
			option, ok := parseSelection(input, len(question.Options))
			if !ok {
				fmt.Fprintln(a.Out, "Enter 1-4, a-d, blank to skip, or `submit`.")
				continue
			}
			if err := runner.Answer(ctx, question.ID, option); err != nil {
				if errors.Is(err, student.ErrAlreadyAnswered) {
					fmt.Fprintln(a.Out, "Answer already locked for this question.")
					break
				}
				return a.fail(err)
			}
			break
		}
	}

	fmt.Fprintf(a.Out, "\n%d of %d answered. Submit now?\n", len(runner.Answers()), len(test.Questions))
	if utils.Confirm(a.In, a.Out, "Submit test") {
		return a.submitTest(ctx, runner)
	}
	fmt.Fprintln(a.Out, "Attempt kept; resume with the same test id.")
	return nil
}

func (a *App) submitTest(ctx context.Context, runner *student.Runner) error {
	result, err := runner.Submit(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printResult(result)
	return nil
}

func (a *App) printResult(result *models.TestResult) {
	if !result.Submitted {
		fmt.Fprintf(a.Out, "Test in progress: %d questions, %d answered.\n",
			len(result.Questions), len(result.Answers))
		return
	}
	fmt.Fprintf(a.Out, "Score: %d/%d\n", result.Score, result.Total)
	for i, q := range result.Questions {
		marker := " "
		answer, answered := result.Answers[q.ID]
		switch {
		case !answered:
			marker = "-"
		case answer == q.CorrectIndex:
			marker = "+"
		default:
			marker = "x"
		}
		fmt.Fprintf(a.Out, "%s Q%d. %s\n", marker, i+1, q.Text)
		if answered && answer != q.CorrectIndex && q.CorrectIndex < len(q.Options) {
			fmt.Fprintf(a.Out, "    correct: %s\n", q.Options[q.CorrectIndex].Text)
		}
		if q.Explanation != "" {
			fmt.Fprintf(a.Out, "    %s\n", q.Explanation)
		}
	}
}

// parseSelection maps "1"-"4" or "a"-"d" to a 0-based option index.
func parseSelection(input string, optionCount int) (int, bool) {
	if len(input) != 1 {
		return 0, false
	}
	c := input[0]
	var idx int
	switch {
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	case c >= 'a' && c <= 'z':
		idx = int(c - 'a')
	default:
		return 0, false
	}
	if idx >= optionCount {
		return 0, false
	}
	return idx, true
}
