package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/zhubert/taches/internal/config"
	perrors "github.com/zhubert/taches/internal/errors"
)

// resetFlags restores every flag to its default so tests do not leak state
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.Flags().VisitAll(reset)
	printCmd.Flags().VisitAll(reset)
	cleanCmd.Flags().VisitAll(reset)
}

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

// executeWithInput is execute with stdin set to input
func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetIn(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{"config", "list"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s persistent flag not found", name)
		}
	}
	if rootCmd.Flags().Lookup("theme") == nil {
		t.Error("--theme flag not found")
	}
}

func TestInitConfig(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	tests := []struct {
		name         string
		debug, quiet bool
	}{
		{"default", false, false},
		{"debug", true, false},
		{"quiet wins over debug", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debugMode, quietMode = tt.debug, tt.quiet
			// Should not panic
			initConfig()
		})
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "taches 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2026-01-01") {
		t.Errorf("versionTemplate() = %q", got)
	}
}

func TestPrint_DefaultSeed(t *testing.T) {
	t.Setenv(config.EnvInitialList, "")
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	out, err := execute(t, "print", "--config", cfgPath)
	if err != nil {
		t.Fatalf("print error = %v", err)
	}

	want := "== Lists ==\n- Inbox (1)\n  Other\n  Waiting\n\n== Inbox ==\n[ ] Do something\n"
	if out != want {
		t.Errorf("print output =\n%s\nwant\n%s", out, want)
	}
}

func TestPrint_ListFlag(t *testing.T) {
	t.Setenv(config.EnvInitialList, "")
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	out, err := execute(t, "print", "--config", cfgPath, "--list", "waiting")
	if err != nil {
		t.Fatalf("print error = %v", err)
	}
	if !strings.Contains(out, "- Waiting") || !strings.Contains(out, "== Waiting ==\nNo task so far, add one?\n") {
		t.Errorf("print output =\n%s", out)
	}
}

func TestPrint_EnvBeforeFlags(t *testing.T) {
	t.Setenv(config.EnvInitialList, "other")
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	out, err := execute(t, "print", "--config", cfgPath)
	if err != nil {
		t.Fatalf("print error = %v", err)
	}
	if !strings.Contains(out, "== Other ==") {
		t.Errorf("env should select other:\n%s", out)
	}

	out, err = execute(t, "print", "--config", cfgPath, "--list", "waiting")
	if err != nil {
		t.Fatalf("print error = %v", err)
	}
	if !strings.Contains(out, "== Waiting ==") {
		t.Errorf("flag should win over env:\n%s", out)
	}
}

func TestPrint_ConfiguredLists(t *testing.T) {
	t.Setenv(config.EnvInitialList, "")
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	body := `{"initial_list": "work", "lists": [{"uid": "work", "name": "Work", "tasks": [{"uid": "1", "name": "Ship", "done": true}]}]}`
	if err := os.WriteFile(cfgPath, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "print", "--config", cfgPath)
	if err != nil {
		t.Fatalf("print error = %v", err)
	}
	want := "== Lists ==\n- Work\n\n== Work ==\n[x] Ship\n"
	if out != want {
		t.Errorf("print output =\n%s\nwant\n%s", out, want)
	}
}

func TestPrint_UnknownList(t *testing.T) {
	t.Setenv(config.EnvInitialList, "")
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	_, err := execute(t, "print", "--config", cfgPath, "--list", "nope")
	if !perrors.Is(err, perrors.KindInvalid) {
		t.Errorf("print error = %v, want invalid config", err)
	}
}

func TestLoadConfig_UnknownTheme(t *testing.T) {
	t.Setenv(config.EnvTheme, "neon")
	cfgPath := filepath.Join(t.TempDir(), "config.json")

	_, err := execute(t, "print", "--config", cfgPath)
	if !perrors.Is(err, perrors.KindInvalid) {
		t.Errorf("error = %v, want invalid theme", err)
	}
}
