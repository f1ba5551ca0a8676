package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"calog/internal/ics"
	"calog/internal/model"
	"calog/internal/schedule"
)

var (
	scheduleActivity  string
	scheduleDay       string
	scheduleStartHour int
	scheduleEndHour   int

	scheduleExportOut    string
	scheduleExportStrict bool

	scheduleImportDryRun bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "View and manage the weekly activity schedule",
	Args:  cobra.NoArgs,
	RunE:  runSchedule,
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weekly schedule entry",
	Args:  cobra.NoArgs,
	RunE:  runScheduleAdd,
}

var scheduleUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change the end hour of a schedule entry",
	Args:  cobra.NoArgs,
	RunE:  runScheduleUpdate,
}

var scheduleDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a schedule entry",
	Args:  cobra.NoArgs,
	RunE:  runScheduleDelete,
}

var scheduleExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the schedule as an iCalendar file",
	Args:  cobra.NoArgs,
	RunE:  runScheduleExport,
}

var scheduleImportCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import schedule entries from an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheduleImport,
}

func init() {
	for _, c := range []*cobra.Command{scheduleAddCmd, scheduleUpdateCmd, scheduleDeleteCmd} {
		c.Flags().StringVar(&scheduleActivity, "activity", "", "Activity name")
		c.Flags().StringVar(&scheduleDay, "day", "", "Day letter: U,M,T,W,R,F,S (Sunday..Saturday)")
		c.Flags().IntVar(&scheduleStartHour, "start", 0, "Start hour (0–23)")
		_ = c.MarkFlagRequired("activity")
		_ = c.MarkFlagRequired("day")
		_ = c.MarkFlagRequired("start")
	}
	scheduleAddCmd.Flags().IntVar(&scheduleEndHour, "end", 0, "End hour (0–23)")
	scheduleUpdateCmd.Flags().IntVar(&scheduleEndHour, "end", 0, "New end hour (0–23)")
	_ = scheduleAddCmd.MarkFlagRequired("end")
	_ = scheduleUpdateCmd.MarkFlagRequired("end")

	scheduleExportCmd.Flags().StringVar(&scheduleExportOut, "out", schedule.Filename, "Output file, or - for stdout")
	scheduleExportCmd.Flags().BoolVar(&scheduleExportStrict, "strict", false, "Reject overnight or out-of-range entries instead of exporting them as-is")

	scheduleImportCmd.Flags().BoolVar(&scheduleImportDryRun, "dry-run", false, "Print planned entries without writing")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleUpdateCmd)
	scheduleCmd.AddCommand(scheduleDeleteCmd)
	scheduleCmd.AddCommand(scheduleExportCmd)
	scheduleCmd.AddCommand(scheduleImportCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return app.open(cmd.Context(), viewSchedule)
}

func (a *app) renderSchedule(ctx context.Context) error {
	entries, err := a.client.ListSchedule(ctx, a.email())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No schedule entries found")
		return nil
	}
	fmt.Printf("%-20s %-4s %-6s %s\n", "Activity", "Day", "Start", "End")
	for _, e := range entries {
		fmt.Printf("%-20s %-4s %02d:00  %02d:00\n", e.Activity, e.Day, e.StartHour, e.EndHour)
	}

	// This week's concrete dates, for orientation.
	fmt.Println()
	for _, ev := range schedule.BuildEvents(entries, time.Now()) {
		fmt.Printf("%s  %s – %s\n", ev.Title,
			ev.Start.Format("Mon Jan 2 15:04"), ev.End.Format("15:04"))
	}
	return nil
}

func flagEntry() model.ScheduleEntry {
	return model.ScheduleEntry{
		Activity:  scheduleActivity,
		Day:       scheduleDay,
		StartHour: scheduleStartHour,
		EndHour:   scheduleEndHour,
	}
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewSchedule)

	if err := app.client.CreateSchedule(ctx, app.email(), flagEntry()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Schedule added successfully!")
	return app.renderSchedule(ctx)
}

func runScheduleUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewSchedule)

	if err := app.client.UpdateSchedule(ctx, app.email(), flagEntry()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Schedule updated successfully!")
	return app.renderSchedule(ctx)
}

func runScheduleDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewSchedule)

	if err := app.client.DeleteSchedule(ctx, app.email(), flagEntry()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Schedule deleted successfully!")
	return app.renderSchedule(ctx)
}

func runScheduleExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewSchedule)

	entries, err := app.client.ListSchedule(ctx, app.email())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	doc, err := schedule.Export(entries, time.Now(), schedule.Options{Strict: scheduleExportStrict})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if scheduleExportOut == "-" {
		fmt.Println(doc)
		return nil
	}
	if err := os.WriteFile(scheduleExportOut, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", scheduleExportOut, err)
		os.Exit(2)
	}
	fmt.Printf("Exported %d entries to %s (%s)\n", len(entries), scheduleExportOut, schedule.ContentType)
	return nil
}

func runScheduleImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewSchedule)

	body, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	events, err := ics.Parse(body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing %s: %v\n", args[0], err)
		os.Exit(1)
	}

	entries := ics.ToEntries(events, time.Local)
	created := 0
	for _, e := range entries {
		if scheduleImportDryRun {
			fmt.Printf("  would add: %s %s %02d:00–%02d:00\n", e.Activity, e.Day, e.StartHour, e.EndHour)
			continue
		}
		if err := app.client.CreateSchedule(ctx, app.email(), e); err != nil {
			// Overlaps and duplicates are server-rejected; keep going.
			fmt.Fprintf(os.Stderr, "  ! %s: %v\n", e.Activity, err)
			continue
		}
		created++
	}
	if !scheduleImportDryRun {
		fmt.Printf("Imported %d of %d entries\n", created, len(entries))
	}
	return nil
}
