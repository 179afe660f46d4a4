package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/utils"
)

// PracticeCommand is the student-facing browse surface: boards down to
// question papers, sections ordered the way the portal shows them.
func (a *App) PracticeCommand() *cli.Command {
	return &cli.Command{
		Name:  "practice",
		Usage: "browse the practice catalogue",
		Commands: []*cli.Command{
			{
				Name:  "boards",
				Usage: "list boards",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					boards, err := a.Client.ListStudentBoards(ctx)
					if err != nil {
						return a.fail(err)
					}
					models.SortBoards(boards)
					rows := make([][]string, 0, len(boards))
					for _, b := range boards {
						rows = append(rows, []string{b.ID, b.Name, b.Description})
					}
					utils.PrintTable(a.Out, []string{"ID", "NAME", "DESCRIPTION"}, rows)
					return nil
				},
			},
			{
				Name:  "exams",
				Usage: "list exams of a board",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Usage: "board id", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					exams, err := a.Client.ListExams(ctx)
					if err != nil {
						return a.fail(err)
					}
					exams = models.ExamsByBoard(models.RootExams(exams), cmd.String("board"))
					rows := make([][]string, 0, len(exams))
					for _, e := range exams {
						rows = append(rows, []string{e.ID, e.Title, strconv.Itoa(e.Priority)})
					}
					utils.PrintTable(a.Out, []string{"ID", "TITLE", "PRIORITY"}, rows)
					return nil
				},
			},
			{
				Name:  "subjects",
				Usage: "list subjects of an exam",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "exam", Usage: "exam id", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					subjects, err := a.Client.ListSubjects(ctx)
					if err != nil {
						return a.fail(err)
					}
					subjects = models.SubjectsByExam(subjects, cmd.String("exam"))
					rows := make([][]string, 0, len(subjects))
					for _, s := range subjects {
						rows = append(rows, []string{s.ID, s.Icon + " " + s.Name, s.Description})
					}
					utils.PrintTable(a.Out, []string{"ID", "SUBJECT", "DESCRIPTION"}, rows)
					return nil
				},
			},
			{
				Name:  "papers",
				Usage: "list a subject's question papers by section",
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
						fmt.Fprintf(a.Out, "\n== %s ==\n", section)
						for _, p := range grouped[section] {
							if p.Year != 0 {
								fmt.Fprintf(a.Out, "  %s  %s (%d)\n", p.ID, p.Name, p.Year)
							} else {
								fmt.Fprintf(a.Out, "  %s  %s\n", p.ID, p.Name)
							}
						}
					}
					return nil
				},
			},
		},
	}
}
