package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calog/internal/model"
)

var (
	profileFirstName   string
	profileLastName    string
	profileAge         int
	profileWeight      float64
	profileSex         string
	profileInsomnia    bool
	profileMaintenance int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or complete your profile",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

var profileCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Create or update the onboarding profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileComplete,
}

func init() {
	profileCompleteCmd.Flags().StringVar(&profileFirstName, "first-name", "", "First name")
	profileCompleteCmd.Flags().StringVar(&profileLastName, "last-name", "", "Last name")
	profileCompleteCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileCompleteCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileCompleteCmd.Flags().StringVar(&profileSex, "sex", "", "Sex (M/F/I)")
	profileCompleteCmd.Flags().BoolVar(&profileInsomnia, "insomnia", false, "Insomnia")
	profileCompleteCmd.Flags().IntVar(&profileMaintenance, "maintenance-calories", 0, "Maintenance calories per day")
	for _, name := range []string{"first-name", "last-name", "age", "weight", "sex", "maintenance-calories"} {
		_ = profileCompleteCmd.MarkFlagRequired(name)
	}

	profileCmd.AddCommand(profileCompleteCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return app.open(cmd.Context(), viewCompleteProfile)
}

// renderProfile draws the profile-completion view: the stored profile when
// one exists, otherwise instructions for completing it.
func (a *app) renderProfile(ctx context.Context) error {
	status, err := a.client.CheckProfile(ctx, a.email())
	if err != nil {
		return err
	}
	if status.Complete && status.Profile != nil {
		p := status.Profile
		fmt.Println("Edit Your Profile")
		fmt.Printf("  Name: %s %s\n", p.FirstName, p.LastName)
		fmt.Printf("  Age: %d\n", p.Age)
		fmt.Printf("  Weight: %.1f kg\n", p.Weight)
		fmt.Printf("  Sex: %s\n", p.Sex)
		fmt.Printf("  Insomnia: %v\n", p.Insomnia)
		fmt.Printf("  Maintenance calories: %d\n", p.MaintenanceCalories)
		return nil
	}
	fmt.Println("Complete Your Profile")
	fmt.Println(`Your profile is incomplete. Fill it in with:`)
	fmt.Println(`  calog profile complete --first-name ... --last-name ... --age ... \`)
	fmt.Println(`    --weight ... --sex ... --maintenance-calories ...`)
	return nil
}

func runProfileComplete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// Completing the profile must stay reachable with an incomplete
	// profile; only the sign-in guard applies here.
	app.require(ctx, viewCompleteProfile)

	profile := model.Profile{
		FirstName:           profileFirstName,
		LastName:            profileLastName,
		Age:                 profileAge,
		Weight:              profileWeight,
		Sex:                 profileSex,
		Insomnia:            profileInsomnia,
		MaintenanceCalories: profileMaintenance,
	}
	if err := app.client.SaveProfile(ctx, app.email(), profile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Profile saved successfully!")
	// The original app routes to the dashboard after a successful save.
	return app.open(ctx, viewChart)
}
