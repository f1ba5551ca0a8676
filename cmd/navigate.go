package cmd

import (
	"context"
	"fmt"
	"os"

	"calog/internal/access"
	"calog/internal/api"
	"calog/internal/auth"
	"calog/internal/logger"
	"calog/internal/model"
)

// Command-layer aliases for the view table. Each gated subcommand is one
// view; "navigation" means rendering a different view than the one asked
// for.
const (
	viewLanding         = access.ViewLanding
	viewChart           = access.ViewChart
	viewRecords         = access.ViewRecords
	viewMeals           = access.ViewMeals
	viewCompleteProfile = access.ViewCompleteProfile
	viewSchedule        = access.ViewSchedule
)

// app wires one invocation together: resolved identity, session and API
// client, passed explicitly to whatever needs them.
type app struct {
	session *auth.Session
	client  *api.Client
	ident   *model.Identity
}

func newApp(ctx context.Context) (*app, error) {
	a := &app{
		session: auth.NewSession(),
		client:  api.NewClient(cfg.API.BaseURL, nil),
	}
	ident, err := auth.ResolveIdentity(ctx, cfg.OAuth)
	if err != nil {
		// An unreachable identity provider reads as signed out; the
		// guard will route to the landing view.
		logger.Warn("identity resolution failed", "err", err)
	}
	if ident != nil {
		a.ident = ident
		a.session.SignIn(*ident)
	}
	return a, nil
}

// gate runs the per-view guard and the access controller for view. It
// returns the view that should actually render, and whether the gate
// denied the one requested (signed out, or profile incomplete).
func (a *app) gate(ctx context.Context, view access.View) (access.View, bool) {
	if res, dec := access.Guard(view, a.ident, true); res == access.GuardRedirect {
		fmt.Fprintln(os.Stderr, `You are signed out. Run "calog login" to sign in.`)
		return dec.Target, true
	}

	ctrl := access.NewController(a.session, a.client)
	dec, err := ctrl.Resolve(ctx, view)
	if err != nil {
		// Fail-open: the check stays unresolved, the user stays put.
		logger.Error("profile completeness check failed", "err", err)
		return view, false
	}
	if dec.Navigate {
		denied := dec.Target == viewCompleteProfile
		return dec.Target, denied
	}
	return view, false
}

// open gates view and renders whatever the decision lands on. A denied
// gate still renders the redirect target (so the user sees where they
// were sent), then exits nonzero.
func (a *app) open(ctx context.Context, view access.View) error {
	target, denied := a.gate(ctx, view)
	if err := a.render(ctx, target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if denied {
		os.Exit(1)
	}
	return nil
}

// require gates view ahead of a mutating action; when denied it renders
// the redirect target and exits, so the action is never applied.
func (a *app) require(ctx context.Context, view access.View) {
	target, denied := a.gate(ctx, view)
	if !denied {
		return
	}
	if err := a.render(ctx, target); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// render draws one view.
func (a *app) render(ctx context.Context, view access.View) error {
	switch view {
	case viewChart:
		return a.renderChart(ctx)
	case viewRecords:
		return a.renderRecords(ctx)
	case viewMeals:
		return a.renderMeals(ctx)
	case viewSchedule:
		return a.renderSchedule(ctx)
	case viewCompleteProfile:
		return a.renderProfile(ctx)
	default:
		return a.renderLanding()
	}
}

func (a *app) renderLanding() error {
	fmt.Println("Welcome to Calorie Tracker")
	if a.ident == nil {
		fmt.Println(`Sign in with "calog login" to get started.`)
	}
	return nil
}

func (a *app) email() string {
	if a.ident == nil {
		return ""
	}
	return a.ident.Email
}
