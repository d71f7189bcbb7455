package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faizmokh/remind/internal/files"
)

func newTodayCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the reminders for today or a specific date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDate, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			return displayDay(ctx, cmd, manager, targetDate)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}
