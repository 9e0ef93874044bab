package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clipinski/gog-dosbox-setup/internal/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	configDir string
	dataDir   string
	verbose   bool
	noColor   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gogdos",
	Short: "Convert GOG DOS game installers into portable DOSBox directories",
	Long: `gogdos unpacks a GOG-distributed DOS game installer (.sh or .exe) into a
self-contained directory playable with a locally installed DOSBox, without
running the installer's bundled GUI or its bundled emulator copy.

Use subcommands for operations. Run 'gogdos --help' for available commands.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/gogdos)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: ~/.local/share/gogdos)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

var (
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderStyled applies the style when color is enabled, otherwise returns s unchanged
func renderStyled(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

// Execute runs the root command. Exit codes: 0 = success, 1 = any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", renderStyled(errStyle, "Error:"), err)
		os.Exit(1)
	}
}

// initService creates and initializes the core service
func initService() (*core.Service, error) {
	cfg, err := getServiceConfig()
	if err != nil {
		return nil, err
	}

	// Ensure directories exist
	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return core.NewService(cfg)
}

// getServiceConfig returns the service configuration with defaults.
// Returns an error if UserHomeDir fails and defaults are needed.
func getServiceConfig() (core.ServiceConfig, error) {
	cfg := core.ServiceConfig{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Verbose:   verbose,
	}

	if cfg.ConfigDir == "" || cfg.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return core.ServiceConfig{}, fmt.Errorf("home directory: %w", err)
		}
		if cfg.ConfigDir == "" {
			cfg.ConfigDir = filepath.Join(homeDir, ".config", "gogdos")
		}
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(homeDir, ".local", "share", "gogdos")
		}
	}

	return cfg, nil
}
