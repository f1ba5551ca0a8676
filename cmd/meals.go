package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calog/internal/model"
)

var (
	mealFood     string
	mealDatetime string
	mealNewFood  string
)

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "View and manage logged meals",
	Args:  cobra.NoArgs,
	RunE:  runMeals,
}

var mealsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	Args:  cobra.NoArgs,
	RunE:  runMealsAdd,
}

var mealsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change the food of a logged meal",
	Args:  cobra.NoArgs,
	RunE:  runMealsUpdate,
}

var mealsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a logged meal",
	Args:  cobra.NoArgs,
	RunE:  runMealsDelete,
}

var mealsFoodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List known food names",
	Args:  cobra.NoArgs,
	RunE:  runMealsFoods,
}

func init() {
	for _, c := range []*cobra.Command{mealsAddCmd, mealsUpdateCmd, mealsDeleteCmd} {
		c.Flags().StringVar(&mealFood, "food", "", "Food name")
		c.Flags().StringVar(&mealDatetime, "datetime", "", "Timestamp (e.g. 2026-08-30T12:30:00)")
		_ = c.MarkFlagRequired("food")
		_ = c.MarkFlagRequired("datetime")
	}
	mealsUpdateCmd.Flags().StringVar(&mealNewFood, "new-food", "", "Replacement food name")
	_ = mealsUpdateCmd.MarkFlagRequired("new-food")

	mealsCmd.AddCommand(mealsAddCmd)
	mealsCmd.AddCommand(mealsUpdateCmd)
	mealsCmd.AddCommand(mealsDeleteCmd)
	mealsCmd.AddCommand(mealsFoodsCmd)
}

func runMeals(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return app.open(cmd.Context(), viewMeals)
}

func (a *app) renderMeals(ctx context.Context) error {
	meals, err := a.client.ListMeals(ctx, a.email())
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		fmt.Println("No meals found")
		return nil
	}
	fmt.Printf("%-24s %s\n", "Food", "Datetime")
	for _, m := range meals {
		fmt.Printf("%-24s %s\n", m.FoodName, m.Datetime)
	}
	return nil
}

func runMealsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewMeals)

	meal := model.Meal{Email: app.email(), FoodName: mealFood, Datetime: mealDatetime}
	if err := app.client.CreateMeal(ctx, meal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Meal added successfully!")
	return app.renderMeals(ctx)
}

func runMealsUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewMeals)

	if err := app.client.UpdateMeal(ctx, app.email(), mealFood, mealNewFood, mealDatetime); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Meal updated successfully!")
	return app.renderMeals(ctx)
}

func runMealsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewMeals)

	meal := model.Meal{Email: app.email(), FoodName: mealFood, Datetime: mealDatetime}
	if err := app.client.DeleteMeal(ctx, meal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Meal deleted successfully!")
	return app.renderMeals(ctx)
}

func runMealsFoods(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.require(ctx, viewMeals)

	names, err := app.client.FoodNames(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
