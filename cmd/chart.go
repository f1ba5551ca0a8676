package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calog/internal/chart"
	"calog/internal/logger"
	"calog/internal/model"
)

var chartMonthly bool

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the dashboard: activity and calorie charts",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().BoolVar(&chartMonthly, "monthly", false, "Chart the last 30 days instead of the last week")
}

func runChart(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return app.open(cmd.Context(), viewChart)
}

// renderChart draws the dashboard. Each feed fails soft: an unreachable
// feed logs and degrades to "no data" instead of aborting the view.
func (a *app) renderChart(ctx context.Context) error {
	email := a.email()

	period := "Weekly"
	if chartMonthly {
		period = "Monthly"
	}

	var activities []model.ActivityCalories
	var err error
	if chartMonthly {
		activities, err = a.client.MonthlyActivities(ctx, email)
	} else {
		activities, err = a.client.WeeklyActivities(ctx, email)
	}
	if err != nil {
		logger.Error("loading activity chart failed", "err", err)
	}
	rows := make([]chart.Row, 0, len(activities))
	for _, ac := range activities {
		rows = append(rows, chart.Row{Label: ac.Activity, Value: ac.CalsBurnt})
	}
	fmt.Println(chart.Render(period+" Top Activities", rows))

	a.renderCalorieChart(ctx, email, period)

	burnt, err := a.client.WeeklyActivityCalories(ctx, email)
	if err != nil {
		logger.Error("loading calorie burn chart failed", "err", err)
	}
	rows = rows[:0]
	for _, day := range burnt {
		rows = append(rows, chart.Row{Label: day.Date, Value: day.TotalCalories})
	}
	fmt.Println(chart.Render("Weekly Activities Calories Burned", rows))

	a.renderDailyGauge(ctx, email)
	a.renderSavedLogs(ctx, email)
	return nil
}

// renderCalorieChart draws per-day calories consumed for the period.
func (a *app) renderCalorieChart(ctx context.Context, email, period string) {
	var points []model.CaloriePoint
	var err error
	if chartMonthly {
		points, err = a.client.MonthlyCalories(ctx, email)
	} else {
		points, err = a.client.WeeklyCalories(ctx, email)
	}
	if err != nil {
		logger.Error("loading calorie chart failed", "err", err)
		return
	}
	rows := make([]chart.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, chart.Row{Label: p.Date, Value: p.TotalCals})
	}
	fmt.Println(chart.Render(period+" Calories Consumed", rows))
}

// renderDailyGauge shows today's consumption against maintenance calories.
func (a *app) renderDailyGauge(ctx context.Context, email string) {
	today, err := a.client.DailyCalories(ctx, email)
	if err != nil {
		logger.Error("loading daily calories failed", "err", err)
		return
	}
	status, err := a.client.CheckProfile(ctx, email)
	if err != nil || status.Profile == nil {
		logger.Error("loading maintenance calories failed", "err", err)
		return
	}

	var consumed float64
	for _, p := range today {
		consumed += p.TotalCals
	}
	fmt.Println("Calories Consumed VS Maintenance Calories")
	fmt.Println(chart.Gauge("Today", consumed, float64(status.Profile.MaintenanceCalories)))
}

func (a *app) renderSavedLogs(ctx context.Context, email string) {
	logs, err := a.client.ListSavedLogs(ctx, email)
	if err != nil {
		logger.Error("loading saved logs failed", "err", err)
		return
	}
	if len(logs) == 0 {
		return
	}
	fmt.Println("Saved Logs")
	for _, l := range logs {
		fmt.Printf("  %s – %s  burnt %.0f  consumed %.0f  protein %.0fg  carbs %.0fg\n",
			l.StartDate, l.EndDate, l.AvgCalBurnt, l.AvgCalConsumed, l.AvgProteinGrams, l.AvgCarbGrams)
	}
}
