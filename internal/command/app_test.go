// Where: cli/internal/command/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure command routing remains stable.
package command

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Setenv("CLI_CMD", "")
	var out bytes.Buffer
	code := Run(nil, Dependencies{Out: &out, ErrOut: &bytes.Buffer{}})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "jlaunch generate --output <path>") {
		t.Fatalf("unexpected usage output: %q", out.String())
	}
}

func TestRunNoArgsUsesBrandName(t *testing.T) {
	t.Setenv("CLI_CMD", "java-binary-script")

	var out bytes.Buffer
	if code := runNoArgs(&out); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "java-binary-script generate") {
		t.Fatalf("expected brand name in usage output, got: %q", out.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	code := Run([]string{"version"}, Dependencies{Out: &out, ErrOut: &bytes.Buffer{}})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunParseError(t *testing.T) {
	var errOut bytes.Buffer
	code := Run([]string{"generate", "--no-such-flag"}, Dependencies{Out: &bytes.Buffer{}, ErrOut: &errOut})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "✗") {
		t.Fatalf("expected error line, got %q", errOut.String())
	}
}

func TestRunExpandArgsError(t *testing.T) {
	var errOut bytes.Buffer
	errExpand := errors.New("expand failed")
	code := Run([]string{"generate"}, Dependencies{
		Out:        &bytes.Buffer{},
		ErrOut:     &errOut,
		ExpandArgs: func([]string) ([]string, error) { return nil, errExpand },
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if errOut.String() != "✗ expand failed\n" {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestExitWithError(t *testing.T) {
	var buf bytes.Buffer
	code := exitWithError(&buf, errors.New("test error"))
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	want := "✗ test error\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
