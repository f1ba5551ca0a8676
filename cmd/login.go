package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calog/internal/auth"
	"calog/internal/logger"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in via the OAuth2 device code flow",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	tok, oc, err := auth.GetToken(ctx, cfg.OAuth, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	ident, err := auth.FetchIdentity(ctx, tok, oc, cfg.OAuth.UserInfoURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not resolve identity: %v\n", err)
		os.Exit(1)
	}

	logger.Info("signed in", "email", ident.Email)
	fmt.Printf("Signed in as %s <%s>\n", ident.Name, ident.Email)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := auth.SignOut(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println("Signed out.")
	return nil
}
