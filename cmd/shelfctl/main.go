package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shelfcontrol/internal/bootstrap"
	"shelfcontrol/internal/platform/config"
	"shelfcontrol/internal/ui/theme"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "shelfctl",
		Short:         "Reading deadline tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.shelfcontrol)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newDeadlineCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newDashboardCmd(&dataDir))
	root.AddCommand(newActivityCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	// A deadline runs to the end of its due day.
	return t.Add(24*time.Hour - time.Second), nil
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the dashboard terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newDeadlineCmd(dataDir *string) *cobra.Command {
	deadline := &cobra.Command{Use: "deadline", Short: "Manage reading deadlines"}

	var author, format, flexibility, due string
	var total float64
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Track a new book deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			dueAt, err := parseDate(due)
			if err != nil {
				return err
			}
			out, err := app.DeadlineCLI.Add(context.Background(), args[0], author, format, flexibility, total, dueAt)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) pace=%s\n", out.Title, out.ID, out.Calculation.PaceDisplay)
			return nil
		},
	}
	add.Flags().StringVar(&author, "author", "", "author (optional)")
	add.Flags().StringVar(&format, "format", "physical", "format: physical|eBook|audio")
	add.Flags().StringVar(&flexibility, "flexibility", "flexible", "flexibility: flexible|strict")
	add.Flags().Float64Var(&total, "total", 0, "total pages, or minutes for audio")
	add.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")

	deadline.AddCommand(add)
	deadline.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tracked deadlines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			deadlines, err := app.DeadlineCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(deadlines) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no deadlines")
				return nil
			}
			for _, d := range deadlines {
				label := theme.Urgency(d.Calculation.Urgency).Render(d.Calculation.UrgencyLabel)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f/%.0f\t%s\t%s\n",
					d.ID, d.Format, d.Title, d.CurrentProgress, d.TotalQuantity, d.Calculation.PaceDisplay, label)
			}
			return nil
		},
	})

	var deadlineID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show deadline details and calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deadlineID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			d, err := app.DeadlineCLI.Get(context.Background(), deadlineID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id: %s\ntitle: %s\nformat: %s\nstatus: %s\nprogress: %.0f/%.0f\n",
				d.ID, d.Title, d.Format, d.Status, d.CurrentProgress, d.TotalQuantity)
			if !d.DueAt.IsZero() {
				_, _ = fmt.Fprintf(out, "due: %s\n", d.DueAt.Format("2006-01-02"))
			}
			_, _ = fmt.Fprintf(out, "remaining: %s\npace: %s\nurgency: %s\n",
				d.Calculation.RemainingDisplay, d.Calculation.PaceDisplay,
				theme.Urgency(d.Calculation.Urgency).Render(d.Calculation.UrgencyLabel))
			for _, entry := range d.Progress {
				marker := ""
				if entry.IgnoreInCalcs {
					marker = " (baseline)"
				}
				_, _ = fmt.Fprintf(out, "  %s  %.2f%s\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Value, marker)
			}
			return nil
		},
	}
	show.Flags().StringVar(&deadlineID, "id", "", "deadline id")
	deadline.AddCommand(show)
	return deadline
}

func newProgressCmd(dataDir *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Log reading progress"}

	var deadlineID, at string
	var value, timeSpent float64
	var baseline bool
	log := &cobra.Command{
		Use:   "log --id <id> --value <total-read>",
		Short: "Append a cumulative progress entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deadlineID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			var loggedAt time.Time
			if strings.TrimSpace(at) != "" {
				loggedAt, err = time.ParseInLocation("2006-01-02T15:04", at, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --at %q (want YYYY-MM-DDTHH:MM)", at)
				}
			}
			out, err := app.DeadlineCLI.LogProgress(context.Background(), deadlineID, value, baseline, timeSpent, loggedAt)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s: %.0f/%.0f pace=%s\n",
				out.Title, out.CurrentProgress, out.TotalQuantity, out.Calculation.PaceDisplay)
			return nil
		},
	}
	log.Flags().StringVar(&deadlineID, "id", "", "deadline id")
	log.Flags().Float64Var(&value, "value", 0, "cumulative progress (pages or minutes)")
	log.Flags().BoolVar(&baseline, "baseline", false, "mark as pre-tracking baseline, excluded from daily activity")
	log.Flags().Float64Var(&timeSpent, "time-spent", 0, "minutes spent reading (optional)")
	log.Flags().StringVar(&at, "at", "", "backdate the entry (YYYY-MM-DDTHH:MM)")

	progress.AddCommand(log)
	return progress
}

func newStatusCmd(dataDir *string) *cobra.Command {
	status := &cobra.Command{Use: "status", Short: "Deadline status transitions"}

	var deadlineID, value string
	set := &cobra.Command{
		Use:   "set --id <id> --status <status>",
		Short: "Append a status transition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deadlineID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.DeadlineCLI.SetStatus(context.Background(), deadlineID, value)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", out.Title, out.Status)
			return nil
		},
	}
	set.Flags().StringVar(&deadlineID, "id", "", "deadline id")
	set.Flags().StringVar(&value, "status", "", "status: pending|reading|to_review|complete|did_not_finish")

	status.AddCommand(set)
	return status
}

func newDashboardCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Portfolio totals and today's goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			overview, err := app.DashboardCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "today's reading goal: %s (read %s)\n",
				overview.ReadingGoal.Display, overview.ReadingGoal.CurrentDisplay)
			_, _ = fmt.Fprintf(out, "today's listening goal: %s (listened %s)\n",
				overview.ListeningGoal.Display, overview.ListeningGoal.CurrentDisplay)
			_, _ = fmt.Fprintf(out, "active combined pace: %.1f units/day\n", overview.Active.Total)
			for _, row := range overview.Rows {
				label := theme.Urgency(row.Urgency).Render(row.UrgencyLabel)
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row.ID, row.Title, row.PaceDisplay, label)
			}
			return nil
		},
	}
}

func newActivityCmd(dataDir *string) *cobra.Command {
	var deadlineID string
	activity := &cobra.Command{
		Use:   "activity --id <id>",
		Short: "Per-day reading activity for a deadline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deadlineID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ActivityCLI.DailyActivity(context.Background(), deadlineID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Empty {
				_, _ = fmt.Fprintf(w, "%s: no reading activity yet\n", out.Title)
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s  %s\n", out.Title, out.Sparkline)
			for _, bucket := range out.Buckets {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", bucket.Date.Format("2006-01-02"), bucket.Display)
			}
			return nil
		},
	}
	activity.Flags().StringVar(&deadlineID, "id", "", "deadline id")
	return activity
}
