package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/remind/internal/config"
	"github.com/faizmokh/remind/internal/files"
)

const agenda = `REM Mar 30 2018 AT 19:00 DURATION 1:15 MSG Event name
REM Apr 9 2018 AT 12:50 DURATION 0:15 MSG Super Event
REM Apr 9 2018 AT 12:50 DURATION 0:15 Super Event
rem APR 10 2018 at 8:00 duration 0:45 msg Team   sync
REM Xyz 1 2018 AT 10:00 DURATION 1:00 MSG bad month
`

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	mgr := newTempManager(t, agenda)
	cfg := config.Default()

	// 1. A single day.
	jumpOut := executeCommand(t, newJumpCommand(ctx, mgr), "2018-04-09")
	assertContains(t, jumpOut, "1. 12:50 +0:15 Super Event")
	assertNotContains(t, jumpOut, "2. ")

	// 2. Neighbouring days.
	prevOut := executeCommand(t, newPrevCommand(ctx, mgr), "--date", "2018-03-31")
	assertContains(t, prevOut, "19:00 +1:15 Event name")
	nextOut := executeCommand(t, newNextCommand(ctx, mgr), "--date", "2018-04-09")
	assertContains(t, nextOut, "08:00 +0:45 Team sync")

	// 3. A range keeps file order.
	listOut := executeCommand(t, newListCommand(ctx, mgr, cfg), "--date", "2018-03-30", "--days", "12")
	first := strings.Index(listOut, "Event name")
	second := strings.Index(listOut, "Super Event")
	third := strings.Index(listOut, "Team sync")
	if first < 0 || second < first || third < second {
		t.Fatalf("list output out of order: %q", listOut)
	}

	// 4. Empty range.
	emptyOut := executeCommand(t, newListCommand(ctx, mgr, cfg), "--date", "2019-01-01", "--week")
	assertContains(t, emptyOut, "No reminders between 2019-01-01 and 2019-01-07")

	// 5. Search is case-insensitive by default.
	searchOut := executeCommand(t, newSearchCommand(ctx, mgr, cfg), "super")
	assertContains(t, searchOut, `Results for "super"`)
	assertContains(t, searchOut, "2018-04-09 12:50 +0:15 Super Event")

	strictOut := executeCommand(t, newSearchCommand(ctx, mgr, cfg), "super", "--case-sensitive")
	assertContains(t, strictOut, "(no matches)")
}

func TestListCommandStructuredOutput(t *testing.T) {
	ctx := context.Background()
	mgr := newTempManager(t, agenda)
	cfg := config.Default()

	jsonOut := executeCommand(t, newListCommand(ctx, mgr, cfg), "--all", "--output", "json")
	var fromJSON []entryDTO
	if err := json.Unmarshal([]byte(jsonOut), &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, jsonOut)
	}
	if len(fromJSON) != 3 {
		t.Fatalf("json entries = %d, want 3", len(fromJSON))
	}
	if fromJSON[0].Date != "2018-03-30" || fromJSON[0].DurationSeconds != 4500 {
		t.Fatalf("json first entry = %#v", fromJSON[0])
	}

	cfg.Output = config.OutputYAML
	yamlOut := executeCommand(t, newListCommand(ctx, mgr, cfg), "--all")
	var fromYAML []entryDTO
	if err := yaml.Unmarshal([]byte(yamlOut), &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, yamlOut)
	}
	if len(fromYAML) != 3 || fromYAML[2].Msg != "Team sync" {
		t.Fatalf("yaml entries = %#v", fromYAML)
	}
}

func TestCheckCommandReportsMalformedLines(t *testing.T) {
	mgr := newTempManager(t, agenda)

	cmd := newCheckCommand(context.Background(), mgr)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil || err.Error() != "2 malformed lines" {
		t.Fatalf("Execute error = %v, want 2 malformed lines", err)
	}

	output := buf.String()
	assertContains(t, output, "line 3: expecting REM at beginning of line: REM Apr 9 2018")
	assertContains(t, output, "line 5: invalid month xyz: REM Xyz")
}

func TestCheckCommandOnCleanFile(t *testing.T) {
	mgr := newTempManager(t, "REM Mar 30 2018 AT 19:00 DURATION 1:15 MSG Event name\n\n")

	out := executeCommand(t, newCheckCommand(context.Background(), mgr))
	assertContains(t, out, files.RemindersFileName+": ok")
}

func TestRootCommandFileFlag(t *testing.T) {
	mgr := newTempManager(t, "")
	other := filepath.Join(t.TempDir(), "other.rem")
	if err := os.WriteFile(other, []byte("REM Jan 5 2024 AT 7:30 DURATION 0:20 MSG From other file\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := NewRootCommand(context.Background(), mgr, config.Default())
	out := executeCommand(t, root, "--file", other, "jump", "2024-01-05")
	assertContains(t, out, "07:30 +0:20 From other file")
	if mgr.RemindersPath() != other {
		t.Fatalf("RemindersPath() = %q, want %q", mgr.RemindersPath(), other)
	}
}

func TestCheckCommandMissingFileFlag(t *testing.T) {
	mgr := newTempManager(t, "")
	missing := filepath.Join(t.TempDir(), "typo.rem")

	root := NewRootCommand(context.Background(), mgr, config.Default())
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--file", missing, "check"})

	err := root.Execute()
	if !errors.Is(err, files.ErrRemindersNotFound) {
		t.Fatalf("Execute error = %v, want ErrRemindersNotFound", err)
	}
	assertNotContains(t, buf.String(), ": ok")
	if _, statErr := os.Stat(missing); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("check created %q: %v", missing, statErr)
	}
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, newVersionCommand())
	assertContains(t, out, "remind dev")
}

func TestResolveOutputPrefersFlag(t *testing.T) {
	cfg := &config.Config{Output: config.OutputYAML}
	got, err := resolveOutput("json", cfg)
	if err != nil || got != config.OutputJSON {
		t.Fatalf("resolveOutput = %q, %v", got, err)
	}
	got, err = resolveOutput("", cfg)
	if err != nil || got != config.OutputYAML {
		t.Fatalf("resolveOutput default = %q, %v", got, err)
	}
	if _, err := resolveOutput("csv", cfg); err == nil {
		t.Fatalf("resolveOutput expected error for csv")
	}
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q does not contain %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Fatalf("output %q unexpectedly contains %q", output, unwanted)
	}
}
