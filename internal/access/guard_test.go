package access

import (
	"testing"

	"calog/internal/model"
)

func TestGuard(t *testing.T) {
	ident := &model.Identity{Email: "alice@example.com"}

	tests := []struct {
		name       string
		view       View
		ident      *model.Identity
		resolved   bool
		wantResult GuardResult
		wantTarget View
	}{
		{"landing never gated", ViewLanding, nil, false, GuardAllow, ""},
		{"unresolved pends", ViewChart, nil, false, GuardPending, ""},
		{"unresolved pends with identity", ViewChart, ident, false, GuardPending, ""},
		{"signed out redirects", ViewRecords, nil, true, GuardRedirect, ViewLanding},
		{"signed in allows", ViewRecords, ident, true, GuardAllow, ""},
		{"completion view only needs sign-in", ViewCompleteProfile, ident, true, GuardAllow, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, dec := Guard(tc.view, tc.ident, tc.resolved)
			if result != tc.wantResult {
				t.Fatalf("Guard(%q) = %v, want %v", tc.view, result, tc.wantResult)
			}
			if tc.wantTarget == "" {
				if dec.Navigate {
					t.Errorf("unexpected redirect to %q", dec.Target)
				}
				return
			}
			if !dec.Navigate || dec.Target != tc.wantTarget || !dec.Replace {
				t.Errorf("decision = %+v, want replacing redirect to %q", dec, tc.wantTarget)
			}
		})
	}
}

func TestProtected(t *testing.T) {
	if ViewLanding.Protected() {
		t.Errorf("landing view reported as protected")
	}
	for _, view := range []View{ViewChart, ViewRecords, ViewMeals, ViewCompleteProfile, ViewSchedule} {
		if !view.Protected() {
			t.Errorf("%q reported as unprotected", view)
		}
	}
}
