package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/remind/internal/config"
	"github.com/faizmokh/remind/internal/files"
	"github.com/faizmokh/remind/internal/reminder"
)

func newPrevCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "prev",
		Short: "Show the previous day's reminders.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			return displayDay(ctx, cmd, manager, date.AddDate(0, 0, -1))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")

	return cmd
}

func newNextCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next day's reminders.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			return displayDay(ctx, cmd, manager, date.AddDate(0, 0, 1))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")

	return cmd
}

func newJumpCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jump <date>",
		Short: "Show reminders for the specified date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("parse date: %w", err)
			}
			return displayDay(ctx, cmd, manager, target)
		},
	}

	return cmd
}

func newListCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var (
		dateFlag   string
		daysFlag   int
		weekFlag   bool
		allFlag    bool
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders across a range of days starting on the target date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := resolveOutput(outputFlag, cfg)
			if err != nil {
				return err
			}

			reader := newReader(manager)
			if allFlag {
				entries, err := reader.All(ctx)
				if err != nil {
					return err
				}
				return writeList(cmd, output, entries, "No reminders")
			}

			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			days := daysFlag
			if days == 0 && cfg != nil {
				days = cfg.Days
			}
			if weekFlag {
				days = 7
			}
			if days <= 0 {
				days = 1
			}

			end := date.AddDate(0, 0, days-1)
			entries, err := reader.Between(ctx, date, end)
			if err != nil {
				return err
			}

			empty := fmt.Sprintf("No reminders between %s and %s",
				date.Format("2006-01-02"), end.Format("2006-01-02"))
			return writeList(cmd, output, entries, empty)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Start date in YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&daysFlag, "days", 0, "Number of days to include starting on target date (default: config days)")
	cmd.Flags().BoolVar(&weekFlag, "week", false, "Shortcut for --days=7")
	cmd.Flags().BoolVar(&allFlag, "all", false, "List every reminder in file order")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, json or yaml")

	return cmd
}

func newSearchCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var (
		caseSensitive bool
		outputFlag    string
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search reminder messages for a term.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(args[0])
			if term == "" {
				return fmt.Errorf("term is required")
			}
			output, err := resolveOutput(outputFlag, cfg)
			if err != nil {
				return err
			}

			entries, err := newReader(manager).All(ctx)
			if err != nil {
				return err
			}

			results := filterEntriesByTerm(entries, term, caseSensitive)
			if ok, err := writeStructured(cmd.OutOrStdout(), output, results); ok {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Results for %q\n", term)
			if len(results) == 0 {
				fmt.Fprintln(out, "(no matches)")
				return nil
			}
			printEntries(out, results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match term with case sensitivity")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, json or yaml")

	return cmd
}

func displayDay(ctx context.Context, cmd *cobra.Command, manager *files.Manager, date time.Time) error {
	entries, err := newReader(manager).On(ctx, date)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printMissingDay(cmd, date)
		return nil
	}
	printDay(cmd, date, entries)
	return nil
}

func writeList(cmd *cobra.Command, output string, entries []reminder.Entry, empty string) error {
	if ok, err := writeStructured(cmd.OutOrStdout(), output, entries); ok {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), empty)
		return nil
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}

func filterEntriesByTerm(entries []reminder.Entry, term string, caseSensitive bool) []reminder.Entry {
	needle := term
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}

	var results []reminder.Entry
	for _, entry := range entries {
		msg := entry.Msg
		if !caseSensitive {
			msg = strings.ToLower(msg)
		}
		if strings.Contains(msg, needle) {
			results = append(results, entry)
		}
	}
	return results
}
