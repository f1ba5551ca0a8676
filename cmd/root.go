package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calog/internal/config"
	"calog/internal/logger"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "calog",
	Short: "Calorie Tracker – a CLI client for the calorie/activity tracker",
	Long: `calog is a command-line client for a personal calorie and activity
tracker. It signs you in, keeps your meals, activity records and weekly
schedule against the remote tracker, and renders your dashboard in the
terminal.`,
	Args: cobra.NoArgs,
	RunE: runHome,
}

// Execute is the entry point called from main.
func Execute() {
	cobra.OnInitialize(initApp)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initApp loads configuration and brings up the logger before any command
// runs. Failures here degrade to defaults rather than aborting.
func initApp() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	base, err := config.BaseDir()
	if err == nil {
		if err := logger.Init(logger.Config{Debug: cfg.Debug, BaseDir: base}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialise logging: %v\n", err)
		}
	}
}

// runHome renders the landing view. For a signed-in, complete user the
// access controller redirects straight to the dashboard.
func runHome(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return app.open(cmd.Context(), viewLanding)
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(mealsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(logsCmd)
}
