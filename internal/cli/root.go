package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/remind/internal/config"
	"github.com/faizmokh/remind/internal/files"
	"github.com/faizmokh/remind/internal/reminder"
	"github.com/faizmokh/remind/internal/ui"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager, cfg *config.Config) *cobra.Command {
	var (
		fileFlag  string
		verbosity int
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Browse REM-style reminder files from your terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbosity)
			if err := manager.SetRemindersPath(fileFlag); err != nil {
				return fmt.Errorf("resolve --file: %w", err)
			}
			log.Debugf("reminders file: %s", manager.RemindersPath())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := newReader(manager)
			m := ui.NewModel(ctx, reader)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Reminders file (default: $REMIND_HOME/reminders.rem)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(
		newTodayCommand(ctx, manager),
		newPrevCommand(ctx, manager),
		newNextCommand(ctx, manager),
		newJumpCommand(ctx, manager),
		newListCommand(ctx, manager, cfg),
		newSearchCommand(ctx, manager, cfg),
		newCheckCommand(ctx, manager),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads config, then executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cfg, err := config.Load(manager.ConfigPath())
	if err != nil {
		return err
	}
	if err := manager.UseConfiguredPath(cfg.File); err != nil {
		return fmt.Errorf("resolve config file path: %w", err)
	}
	cmd := NewRootCommand(ctx, manager, cfg)
	return cmd.Execute()
}

// Main is a helper used by cmd/remind/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newReader returns a reader that logs every dropped line.
func newReader(manager *files.Manager) *reminder.Reader {
	return reminder.NewReader(manager).OnSkip(func(le *reminder.LineError) {
		log.Debugf("skipped %v: %q", le, le.Text)
	})
}
