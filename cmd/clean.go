package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/taches/internal/config"
	"github.com/zhubert/taches/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Reset saved preferences and remove the debug log",
	Long: `Resets the theme, startup list and notification settings in the config
file and removes the debug log. Configured task lists are kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(cmd.InOrStdin(), cmd.OutOrStdout())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	// Read the file alone so environment and flag overrides are not saved
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	_, statErr := os.Stat(path)
	hasConfig := statErr == nil
	logPath := logger.FilePath()
	_, statErr = os.Stat(logPath)
	hasLog := statErr == nil

	if !hasConfig && !hasLog {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will clean:")
	if hasConfig {
		fmt.Fprintf(out, "  - Preferences in %s\n", path)
	}
	if hasLog {
		fmt.Fprintf(out, "  - Log file %s\n", logPath)
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if hasConfig {
		cfg.SetTheme("")
		cfg.SetInitialList("")
		cfg.SetNotificationsEnabled(false)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if hasConfig {
		fmt.Fprintln(out, "  - Preferences reset")
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
