package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/taches/internal/app"
	"github.com/zhubert/taches/internal/config"
	perrors "github.com/zhubert/taches/internal/errors"
	"github.com/zhubert/taches/internal/logger"
	"github.com/zhubert/taches/internal/tasks"
	"github.com/zhubert/taches/internal/ui"
)

// EnvFile is loaded from the working directory before the config
const EnvFile = ".env"

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	themeName             string
	listUID               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "taches",
	Short: "Terminal task lists",
	Long: `Taches shows your task lists in a two-pane terminal view: the lists on
the left, the tasks of the selected list on the right.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $TACHES_CONFIG or ~/.taches/config.json)")
	rootCmd.PersistentFlags().StringVar(&listUID, "list", "", "List to select on startup")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "UI theme ("+themeList()+")")
}

func initConfig() {
	switch {
	case quietMode:
		logger.SetLevel(logger.LevelWarn)
	case debugMode:
		logger.SetDebug(true)
	default:
		logger.SetLevel(logger.LevelInfo)
	}
}

func themeList() string {
	var s string
	for i, name := range ui.ThemeNames() {
		if i > 0 {
			s += ", "
		}
		s += string(name)
	}
	return s
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("taches %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("taches %s\n", version)
}

// loadConfig applies the cascade: defaults, config file, environment, flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadEnv(EnvFile); err != nil {
		return nil, err
	}

	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	overrides := &config.Overrides{}
	if cmd.Flags().Changed("theme") {
		overrides.Theme = &themeName
	}
	if cmd.Flags().Changed("list") {
		overrides.InitialList = &listUID
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}

	if theme := cfg.GetTheme(); theme != "" && !ui.IsTheme(theme) {
		return nil, perrors.ConfigInvalid(fmt.Sprintf("unknown theme %q (available: %s)", theme, themeList()))
	}
	return cfg, nil
}

// resolveConfigPath returns --config, or the default path
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", perrors.ConfigLoadFailed("~/.taches", err)
	}
	return path, nil
}

// loadRepository builds the in-memory repository from the configured seed
func loadRepository(cfg *config.Config) (*tasks.Repository, error) {
	return tasks.New(cfg.Seed())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	repo, err := loadRepository(cfg)
	if err != nil {
		return fmt.Errorf("error loading lists: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	logger.WithComponent("cmd").Info("starting", "version", version, "config", cfg.Path())

	m := app.New(cfg, repo, app.WithVersion(version))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	if err := m.Err(); err != nil {
		return fmt.Errorf("taches stopped: %w", err)
	}
	return nil
}
