package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	logsFrom string
	logsTo   string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View saved summary logs",
	Args:  cobra.NoArgs,
	RunE:  runLogs,
}

var logsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a summary log over a date range",
	Args:  cobra.NoArgs,
	RunE:  runLogsSave,
}

func init() {
	logsSaveCmd.Flags().StringVar(&logsFrom, "from", "", "Start date (YYYY-MM-DD)")
	logsSaveCmd.Flags().StringVar(&logsTo, "to", "", "End date (YYYY-MM-DD)")
	_ = logsSaveCmd.MarkFlagRequired("from")
	_ = logsSaveCmd.MarkFlagRequired("to")

	logsCmd.AddCommand(logsSaveCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// Saved logs live on the dashboard view.
	app.require(ctx, viewChart)

	logs, err := app.client.ListSavedLogs(ctx, app.email())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(logs) == 0 {
		fmt.Println("No saved logs found")
		return nil
	}
	for _, l := range logs {
		fmt.Printf("%s – %s  burnt %.0f  consumed %.0f  protein %.0fg  carbs %.0fg\n",
			l.StartDate, l.EndDate, l.AvgCalBurnt, l.AvgCalConsumed, l.AvgProteinGrams, l.AvgCarbGrams)
	}
	return nil
}

func runLogsSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewChart)

	if err := app.client.CreateSavedLog(ctx, app.email(), logsFrom, logsTo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Log created successfully!")
	return nil
}
