package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"examfit/importer"
)

// bulkUploadCommand imports questions from a spreadsheet: parse, reconcile,
// then submit the batch in one request. Rows with defaulted answers are
// reported as warnings; failed rows are counted, never retried.
func (a *App) bulkUploadCommand() *cli.Command {
	return &cli.Command{
		Name:  "bulk-upload",
		Usage: "import questions from a .csv/.xlsx/.xls spreadsheet",
		Description: "Expected columns: Question, Option 1..4, Correct Answer (1-4 or A-D), " +
			"Explanation, Difficulty.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "spreadsheet path", Required: true},
			&cli.StringFlag{Name: "exam", Usage: "exam id", Required: true},
			&cli.StringFlag{Name: "subject", Usage: "subject id", Required: true},
			&cli.StringFlag{Name: "paper", Usage: "question paper id", Required: true},
			&cli.BoolFlag{Name: "dry-run", Usage: "reconcile and report without uploading"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rows, err := importer.ParseFile(cmd.String("file"))
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("no question rows found in %s", cmd.String("file"))
			}

			result := importer.Reconcile(rows)
			for _, warning := range result.Warnings {
				fmt.Fprintf(a.Out, "warning: %s\n", warning)
			}
			if result.Dropped > 0 {
				fmt.Fprintf(a.Out, "%d row(s) dropped\n", result.Dropped)
			}
			if len(result.Questions) == 0 {
				return fmt.Errorf("no usable questions after reconciliation")
			}

			if cmd.Bool("dry-run") {
				fmt.Fprintf(a.Out, "dry run: %d question(s) ready to upload\n", len(result.Questions))
				return nil
			}

			submitter := importer.NewSubmitter(a.Client, a.Log)
			outcome, err := submitter.Submit(ctx, result.Questions, importer.Target{
				Exam:          cmd.String("exam"),
				Subject:       cmd.String("subject"),
				QuestionPaper: cmd.String("paper"),
			})
			if err != nil {
				return a.fail(err)
			}

			fmt.Fprintf(a.Out, "uploaded %d/%d question(s)", outcome.Succeeded, outcome.Submitted)
			if outcome.Failed > 0 {
				fmt.Fprintf(a.Out, ", %d failed (fix the sheet and re-upload)", outcome.Failed)
			}
			fmt.Fprintln(a.Out)
			for _, rowErr := range outcome.Errors {
				fmt.Fprintf(a.Out, "  row %d: %s\n", rowErr.Index, rowErr.Message)
			}
			return nil
		},
	}
}
