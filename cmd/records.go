package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calog/internal/model"
)

var (
	recordActivity string
	recordDatetime string
	recordDuration int
	recordQuality  int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "View and manage activity records",
	Args:  cobra.NoArgs,
	RunE:  runRecords,
}

var recordsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an activity session",
	Args:  cobra.NoArgs,
	RunE:  runRecordsAdd,
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change duration/quality of an existing record",
	Args:  cobra.NoArgs,
	RunE:  runRecordsUpdate,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an activity record",
	Args:  cobra.NoArgs,
	RunE:  runRecordsDelete,
}

var recordsActivitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List known activity names",
	Args:  cobra.NoArgs,
	RunE:  runRecordsActivities,
}

func init() {
	for _, c := range []*cobra.Command{recordsAddCmd, recordsUpdateCmd, recordsDeleteCmd} {
		c.Flags().StringVar(&recordActivity, "activity", "", "Activity name")
		c.Flags().StringVar(&recordDatetime, "datetime", "", "Timestamp (e.g. 2026-08-30T18:00:00)")
		_ = c.MarkFlagRequired("activity")
		_ = c.MarkFlagRequired("datetime")
	}
	recordsAddCmd.Flags().IntVar(&recordDuration, "duration", 0, "Duration in minutes")
	recordsAddCmd.Flags().IntVar(&recordQuality, "quality", 0, "Session quality 1–10")
	recordsUpdateCmd.Flags().IntVar(&recordDuration, "duration", 0, "Duration in minutes")
	recordsUpdateCmd.Flags().IntVar(&recordQuality, "quality", 0, "Session quality 1–10")
	_ = recordsAddCmd.MarkFlagRequired("duration")

	recordsCmd.AddCommand(recordsAddCmd)
	recordsCmd.AddCommand(recordsUpdateCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
	recordsCmd.AddCommand(recordsActivitiesCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return app.open(cmd.Context(), viewRecords)
}

func (a *app) renderRecords(ctx context.Context) error {
	records, err := a.client.ListRecords(ctx, a.email())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}
	fmt.Printf("%-20s %-22s %-10s %s\n", "Activity", "Datetime", "Duration", "Quality")
	for _, r := range records {
		fmt.Printf("%-20s %-22s %-10d %d\n", r.Activity, r.Datetime, r.Duration, r.Quality)
	}
	return nil
}

func runRecordsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewRecords)

	rec := model.Record{
		Email:    app.email(),
		Activity: recordActivity,
		Datetime: recordDatetime,
		Duration: recordDuration,
		Quality:  recordQuality,
	}
	if err := app.client.CreateRecord(ctx, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Record added successfully!")
	// Read-through: show the refreshed list rather than patching locally.
	return app.renderRecords(ctx)
}

func runRecordsUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewRecords)

	rec := model.Record{
		Email:    app.email(),
		Activity: recordActivity,
		Datetime: recordDatetime,
		Duration: recordDuration,
		Quality:  recordQuality,
	}
	if err := app.client.UpdateRecord(ctx, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Record updated successfully!")
	return app.renderRecords(ctx)
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewRecords)

	if err := app.client.DeleteRecord(ctx, app.email(), recordActivity, recordDatetime); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Record deleted successfully!")
	return app.renderRecords(ctx)
}

func runRecordsActivities(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewRecords)

	names, err := app.client.ActivityNames(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
