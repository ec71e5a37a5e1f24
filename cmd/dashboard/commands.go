package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yigit/allizzwell/internal/app/models/enums"
	"github.com/yigit/allizzwell/internal/app/services"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
	"github.com/yigit/allizzwell/internal/bootstrap"
	"github.com/yigit/allizzwell/internal/wellness"
)

var filterFlags = []cli.Flag{
	&cli.StringFlag{Name: "gender", Value: wellness.Wildcard, Usage: "Male, Female, Other or All"},
	&cli.StringFlag{Name: "department", Value: wellness.Wildcard, Usage: "department code or All"},
	&cli.StringFlag{Name: "semester", Value: wellness.Wildcard, Usage: "1-8 or All"},
}

func commands(deps func() *bootstrap.Dependencies) []*cli.Command {
	svc := func() *services.Services { return deps().Services }

	return []*cli.Command{
		{
			Name:  "header",
			Usage: "KPI counts of Healthy, Moderate and Critical students",
			Action: func(c *cli.Context) error {
				return writeJSON(c.App.Writer, svc().Dashboard.Header())
			},
		},
		{
			Name:  "options",
			Usage: "values available to the cohort filters",
			Action: func(c *cli.Context) error {
				return writeJSON(c.App.Writer, svc().Dashboard.FilterOptions())
			},
		},
		{
			Name:  "overview",
			Usage: "mood distribution and weekly/monthly series for a cohort",
			Flags: filterFlags,
			Action: func(c *cli.Context) error {
				spec, err := filterFromFlags(c)
				if err != nil {
					return err
				}
				return writeJSON(c.App.Writer, svc().Dashboard.Overview(spec))
			},
		},
		{
			Name:  "students",
			Usage: "students of a cohort with their risk level",
			Flags: filterFlags,
			Action: func(c *cli.Context) error {
				spec, err := filterFromFlags(c)
				if err != nil {
					return err
				}
				return writeJSON(c.App.Writer, svc().Dashboard.Roster(spec))
			},
		},
		{
			Name:      "student",
			Usage:     "risk level of one student",
			ArgsUsage: "ID",
			Action: func(c *cli.Context) error {
				id, err := singleArg(c)
				if err != nil {
					return err
				}
				sr, err := svc().Dashboard.StudentRisk(id)
				if err != nil {
					return err
				}
				return writeJSON(c.App.Writer, sr)
			},
		},
		{
			Name:  "classify",
			Usage: "classify a pair of PHQ-9 and GAD-7 scores",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "phq", Required: true, Usage: "PHQ-9 score"},
				&cli.IntFlag{Name: "gad", Required: true, Usage: "GAD-7 score"},
			},
			Action: func(c *cli.Context) error {
				level := wellness.Classify(c.Int("phq"), c.Int("gad"))
				return writeJSON(c.App.Writer, map[string]interface{}{
					"phq":  c.Int("phq"),
					"gad":  c.Int("gad"),
					"risk": level,
				})
			},
		},
		{
			Name:  "care",
			Usage: "critical students and critical appointments",
			Action: func(c *cli.Context) error {
				return writeJSON(c.App.Writer, svc().Care.Report())
			},
		},
		{
			Name:  "community",
			Usage: "moderate anonymous posts",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "posts and trending tags",
					Flags: []cli.Flag{
						&cli.BoolFlag{Name: "reported", Usage: "only posts flagged for review"},
					},
					Action: func(c *cli.Context) error {
						posts := svc().Community.Posts()
						if c.Bool("reported") {
							posts = svc().Community.ReportedPosts()
						}
						return writeJSON(c.App.Writer, map[string]interface{}{
							"posts":  posts,
							"trends": svc().Community.Trends(),
						})
					},
				},
				{
					Name:      "remove",
					Usage:     "delete a post from the feed",
					ArgsUsage: "POST_ID",
					Action: func(c *cli.Context) error {
						id, err := postIDArg(c)
						if err != nil {
							return err
						}
						if err := svc().Community.RemovePost(id); err != nil {
							return err
						}
						return writeJSON(c.App.Writer, map[string]interface{}{
							"removed": id,
							"posts":   svc().Community.Posts(),
						})
					},
				},
				{
					Name:      "report",
					Usage:     "flag or unflag a post for review",
					ArgsUsage: "POST_ID",
					Action: func(c *cli.Context) error {
						id, err := postIDArg(c)
						if err != nil {
							return err
						}
						post, err := svc().Community.ToggleReported(id)
						if err != nil {
							return err
						}
						return writeJSON(c.App.Writer, post)
					},
				},
			},
		},
		{
			Name:  "counsellors",
			Usage: "manage the counsellor roster",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "counsellor roster, newest first",
					Action: func(c *cli.Context) error {
						return writeJSON(c.App.Writer, svc().Counsellors.List())
					},
				},
				{
					Name:      "show",
					Usage:     "one counsellor profile",
					ArgsUsage: "ID",
					Action: func(c *cli.Context) error {
						id, err := singleArg(c)
						if err != nil {
							return err
						}
						profile, err := svc().Counsellors.Get(id)
						if err != nil {
							return err
						}
						return writeJSON(c.App.Writer, profile)
					},
				},
				{
					Name:  "create",
					Usage: "add an active counsellor",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name", Required: true},
						&cli.StringFlag{Name: "gender", Value: string(enums.GenderMale), Usage: "Male, Female or Other"},
						&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"DASHBOARD_COUNSELLOR_PASSWORD"}},
						&cli.StringFlag{Name: "confirm", Required: true, EnvVars: []string{"DASHBOARD_COUNSELLOR_CONFIRM"}},
					},
					Action: func(c *cli.Context) error {
						created, err := svc().Counsellors.Create(services.CreateCounsellorRequest{
							Name:     c.String("name"),
							Gender:   enums.Gender(c.String("gender")),
							Password: c.String("password"),
							Confirm:  c.String("confirm"),
						})
						if err != nil {
							return err
						}
						return writeJSON(c.App.Writer, created)
					},
				},
				{
					Name:      "deactivate",
					Usage:     "mark a counsellor inactive",
					ArgsUsage: "ID",
					Action: func(c *cli.Context) error {
						id, err := singleArg(c)
						if err != nil {
							return err
						}
						updated, err := svc().Counsellors.Deactivate(id)
						if err != nil {
							return err
						}
						return writeJSON(c.App.Writer, updated)
					},
				},
			},
		},
		{
			Name:  "notify",
			Usage: "send a notification and list the students it reaches",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "title", Required: true},
				&cli.StringFlag{Name: "desc"},
				&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
				&cli.StringFlag{Name: "time", Usage: "HH:MM"},
				&cli.StringFlag{Name: "audience", Value: string(enums.AudienceAll), Usage: "All, Male, Female or Other"},
			},
			Action: func(c *cli.Context) error {
				sent, err := svc().Notifications.Send(services.SendNotificationRequest{
					Title:       c.String("title"),
					Description: c.String("desc"),
					Date:        c.String("date"),
					Time:        c.String("time"),
					Audience:    enums.Audience(c.String("audience")),
				})
				if err != nil {
					return err
				}
				recipients, err := svc().Notifications.Recipients(sent.ID)
				if err != nil {
					return err
				}
				return writeJSON(c.App.Writer, map[string]interface{}{
					"notification": sent,
					"recipients":   len(recipients),
				})
			},
		},
	}
}

func filterFromFlags(c *cli.Context) (wellness.FilterSpec, error) {
	return wellness.ParseFilterSpec(c.String("gender"), c.String("department"), c.String("semester"))
}

func singleArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%w: %s requires exactly one ID, got %d", apperrors.ErrBadRequest, c.Command.Name, c.NArg())
	}
	return c.Args().First(), nil
}

func postIDArg(c *cli.Context) (int, error) {
	raw, err := singleArg(c)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: post id %q is not a number", apperrors.ErrBadRequest, raw)
	}
	return id, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
