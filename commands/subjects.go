package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"examfit/models"
	"examfit/utils"
)

// parseSectionPriorities turns repeated "Section Name=2" flag values into
// the sectionPriorities mapping.
func parseSectionPriorities(entries []string) (map[string]int, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	priorities := make(map[string]int, len(entries))
	for _, entry := range entries {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("invalid section priority %q, expected NAME=NUMBER", entry)
		}
		priority, err := utils.StrToInt(value)
		if err != nil {
			return nil, fmt.Errorf("invalid section priority %q: %v", entry, err)
		}
		priorities[strings.TrimSpace(name)] = priority
	}
	return priorities, nil
}

func subjectFromFlags(cmd *cli.Command) (models.Subject, error) {
	priority, err := utils.StrToInt(cmd.String("priority"))
	if err != nil {
		return models.Subject{}, err
	}
	sectionPriorities, err := parseSectionPriorities(cmd.StringSlice("section-priority"))
	if err != nil {
		return models.Subject{}, err
	}
	return models.Subject{
		Name:              cmd.String("name"),
		Slug:              cmd.String("slug"),
		Exam:              models.Ref(cmd.String("exam")),
		Board:             models.Ref(cmd.String("board")),
		Icon:              cmd.String("icon"),
		Priority:          priority,
		Description:       cmd.String("description"),
		SectionPriorities: sectionPriorities,
	}, nil
}

func subjectFlags(requireRefs bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "subject name", Required: true},
		&cli.StringFlag{Name: "slug", Usage: "url slug"},
		&cli.StringFlag{Name: "exam", Usage: "exam id", Required: requireRefs},
		&cli.StringFlag{Name: "board", Usage: "board id", Required: requireRefs},
		&cli.StringFlag{Name: "icon", Usage: "display icon", Value: "📚"},
		&cli.StringFlag{Name: "priority", Usage: "display priority (lower first)", Value: "0"},
		&cli.StringFlag{Name: "description", Usage: "subject description"},
		&cli.StringSliceFlag{Name: "section-priority", Usage: "section display order, e.g. --section-priority 'Paper 1=1' (repeatable)"},
	}
}

func (a *App) SubjectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "subjects",
		Usage: "manage subjects",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list subjects",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "exam", Usage: "filter by exam id"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					subjects, err := a.Client.ListSubjects(ctx)
					if err != nil {
						return a.fail(err)
					}
					if examID := cmd.String("exam"); examID != "" {
						subjects = models.SubjectsByExam(subjects, examID)
					}
					rows := make([][]string, 0, len(subjects))
					for _, s := range subjects {
						rows = append(rows, []string{s.ID, s.Name, s.Slug, s.Exam.String(), strconv.Itoa(s.Priority)})
					}
					utils.PrintTable(a.Out, []string{"ID", "NAME", "SLUG", "EXAM", "PRIORITY"}, rows)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "show one subject including its section priorities",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "subject id", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					subject, err := a.Client.GetSubject(ctx, cmd.String("id"))
					if err != nil {
						return a.fail(err)
					}
					return utils.PrintJSON(a.Out, subject)
				},
			},
			{
				Name:  "create",
				Usage: "create a subject under an exam",
				Flags: subjectFlags(true),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					subject, err := subjectFromFlags(cmd)
					if err != nil {
						return err
					}
					if err := a.Client.CreateSubject(ctx, subject); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "update a subject",
				Flags: append(subjectFlags(false),
					&cli.StringFlag{Name: "id", Usage: "subject id", Required: true}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					subject, err := subjectFromFlags(cmd)
					if err != nil {
						return err
					}
					if err := a.Client.UpdateSubject(ctx, cmd.String("id"), subject); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete a subject",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "subject id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip confirmation"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if !cmd.Bool("yes") && !utils.Confirm(a.In, a.Out, "Delete this subject and its question papers?") {
						return nil
					}
					if err := a.Client.DeleteSubject(ctx, cmd.String("id")); err != nil {
						return a.fail(err)
					}
					return nil
				},
			},
		},
	}
}
