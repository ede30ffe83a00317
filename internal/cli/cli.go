// Package cli wires the mira-agent command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	rootCmd *cobra.Command

	// configPath is the optional YAML config file
	configPath string

	// Version information (set via ldflags)
	version string
	commit  string
	date    string
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "mira-agent",
		Short: "Crisis-aware chat mediation service",
		Long: `Mira agent receives user messages, generates empathetic replies,
classifies self-harm severity, and notifies emergency contacts when
severity crosses the configured thresholds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "mira.yaml", "path to YAML config file")

	a.rootCmd.AddCommand(NewServeCmd(a))
	a.rootCmd.AddCommand(NewVersionCmd(a))
}
