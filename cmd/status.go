package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the signed-in user and profile state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if app.ident == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("Signed in as %s <%s>\n", app.ident.Name, app.ident.Email)

	status, err := app.client.CheckProfile(ctx, app.email())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not check profile: %v\n", err)
		os.Exit(2)
	}
	if status.Complete {
		fmt.Println("Profile: complete")
	} else {
		fmt.Println(`Profile: incomplete – run "calog profile complete"`)
	}
	return nil
}
