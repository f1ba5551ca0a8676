package access

import "calog/internal/model"

// GuardResult is the per-view gate outcome.
type GuardResult int

const (
	// GuardPending: identity resolution has not finished; render a
	// loading placeholder and perform no navigation.
	GuardPending GuardResult = iota
	// GuardRedirect: no identity; go to the landing view.
	GuardRedirect
	// GuardAllow: render the protected content.
	GuardAllow
)

// Guard applies the per-view gate. resolved reports whether identity
// resolution has completed. Profile completeness is deliberately not
// consulted here; only the controller's redirect enforces it.
func Guard(view View, ident *model.Identity, resolved bool) (GuardResult, Decision) {
	if !view.Protected() {
		return GuardAllow, Decision{}
	}
	if !resolved {
		return GuardPending, Decision{}
	}
	if ident == nil {
		return GuardRedirect, redirect(ViewLanding)
	}
	return GuardAllow, Decision{}
}
