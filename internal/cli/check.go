package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/remind/internal/files"
	"github.com/faizmokh/remind/internal/reminder"
)

func newCheckCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report lines of the reminders file that do not parse.",
		Long:  "check lists every non-blank line that the parser drops, with its line number and the reason. It fails when any line is malformed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := reminder.NewReader(manager).Check(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintf(out, "%s: ok\n", manager.RemindersPath())
				return nil
			}

			for _, problem := range problems {
				fmt.Fprintf(out, "line %d: %v: %s\n", problem.Line, problem.Err, problem.Text)
			}
			return fmt.Errorf("%d malformed line%s", len(problems), plural(len(problems)))
		},
	}

	return cmd
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
