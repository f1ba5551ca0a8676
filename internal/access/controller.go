// Package access gates views behind "signed in AND profile complete" and
// computes redirect targets for navigation events.
package access

import (
	"context"
	"fmt"

	"calog/internal/model"
)

// State is the controller's position in the gating state machine.
type State int

const (
	// StateAnonymous: no identity is available.
	StateAnonymous State = iota
	// StateChecking: an identity is present and the profile lookup is in
	// flight (or failed, leaving the check unresolved).
	StateChecking
	// StateIncomplete: the lookup answered and the profile needs completion.
	StateIncomplete
	// StateReady: the lookup answered and every gate is open.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateChecking:
		return "checking"
	case StateIncomplete:
		return "incomplete"
	case StateReady:
		return "ready"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ProfileChecker answers profile completeness lookups against the server.
type ProfileChecker interface {
	CheckProfile(ctx context.Context, email string) (model.ProfileStatus, error)
}

// SessionSource exposes the current identity plus a generation counter so
// a lookup result can be discarded if the identity changed while it was in
// flight.
type SessionSource interface {
	Snapshot() (*model.Identity, uint64)
	Generation() uint64
}

// Controller decides, per navigation event, whether the viewer may see the
// requested view and where to send them otherwise. One instance serves one
// active navigation.
type Controller struct {
	session SessionSource
	checker ProfileChecker
	state   State
}

// NewController builds a controller over the given session and checker.
func NewController(session SessionSource, checker ProfileChecker) *Controller {
	return &Controller{session: session, checker: checker, state: StateAnonymous}
}

// State returns the state reached by the most recent Resolve.
func (c *Controller) State() State {
	return c.state
}

// Resolve runs one navigation check for the view at current.
//
// With no identity the controller stays anonymous and decides nothing (the
// per-view Guard handles the redirect to the landing view). With an
// identity it performs a fresh completeness lookup: an incomplete (or
// unsuccessful) answer redirects to the profile-completion view; a complete
// answer redirects the landing view to the dashboard and leaves any other
// view alone.
//
// A lookup error leaves the machine in StateChecking and decides nothing —
// the caller logs the error and the user stays put rather than being
// stranded mid-redirect. A result arriving after the session identity has
// changed is discarded the same way.
func (c *Controller) Resolve(ctx context.Context, current View) (Decision, error) {
	ident, gen := c.session.Snapshot()
	if ident == nil {
		c.state = StateAnonymous
		return Decision{}, nil
	}

	c.state = StateChecking
	status, err := c.checker.CheckProfile(ctx, ident.Email)

	if c.session.Generation() != gen {
		// Identity changed while the lookup was in flight; the answer
		// belongs to a viewer that no longer exists.
		return Decision{}, nil
	}
	if err != nil {
		return Decision{}, fmt.Errorf("profile lookup: %w", err)
	}

	if !status.Success || !status.Complete {
		c.state = StateIncomplete
		if current == ViewCompleteProfile {
			return Decision{}, nil
		}
		return redirect(ViewCompleteProfile), nil
	}

	c.state = StateReady
	if current == ViewLanding {
		return redirect(ViewChart), nil
	}
	// A ready user opening the completion view keeps edit access; no
	// forced redirect away.
	return Decision{}, nil
}
