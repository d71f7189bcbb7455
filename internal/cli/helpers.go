package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/remind/internal/config"
	"github.com/faizmokh/remind/internal/reminder"
)

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// formatEntry renders an entry as "HH:MM +H:MM message".
func formatEntry(entry reminder.Entry) string {
	builder := strings.Builder{}
	builder.Grow(16 + len(entry.Msg))

	builder.WriteString(entry.Time.String())
	builder.WriteString(" +")
	builder.WriteString(reminder.FormatDuration(entry.Duration))

	if entry.Msg != "" {
		builder.WriteString(" ")
		builder.WriteString(entry.Msg)
	}

	return builder.String()
}

func printMissingDay(cmd *cobra.Command, date time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "No reminders for %s\n", date.Format("2006-01-02"))
}

func printDay(cmd *cobra.Command, date time.Time, entries []reminder.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", date.Format("2006-01-02"))
	for i, entry := range entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatEntry(entry))
	}
}

// printEntries writes one line per entry, each prefixed with its date.
func printEntries(out io.Writer, entries []reminder.Entry) {
	for _, entry := range entries {
		fmt.Fprintf(out, "%s %s\n", entry.Date, formatEntry(entry))
	}
}

type entryDTO struct {
	Date            string `json:"date" yaml:"date"`
	Time            string `json:"time" yaml:"time"`
	Duration        string `json:"duration" yaml:"duration"`
	DurationSeconds int64  `json:"duration_seconds" yaml:"duration_seconds"`
	Msg             string `json:"msg" yaml:"msg"`
}

func toDTOs(entries []reminder.Entry) []entryDTO {
	list := make([]entryDTO, 0, len(entries))
	for _, entry := range entries {
		list = append(list, entryDTO{
			Date:            entry.Date.String(),
			Time:            entry.Time.String(),
			Duration:        reminder.FormatDuration(entry.Duration),
			DurationSeconds: int64(entry.Duration / time.Second),
			Msg:             entry.Msg,
		})
	}
	return list
}

// writeStructured encodes entries as JSON or YAML. It reports false for text output.
func writeStructured(out io.Writer, format string, entries []reminder.Entry) (bool, error) {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return true, enc.Encode(toDTOs(entries))
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(toDTOs(entries)); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// resolveOutput prefers the flag over the configured default.
func resolveOutput(flag string, cfg *config.Config) (string, error) {
	if flag == "" && cfg != nil {
		return cfg.Output, nil
	}
	return config.ParseOutput(flag)
}
