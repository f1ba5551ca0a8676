package access

// View identifies one screen of the application by its path.
type View string

const (
	// ViewLanding is the entry screen, reachable without an identity.
	ViewLanding View = "/"
	// ViewChart is the post-login dashboard default.
	ViewChart           View = "/chart"
	ViewRecords         View = "/records"
	ViewMeals           View = "/meals"
	ViewCompleteProfile View = "/complete-profile"
	ViewSchedule        View = "/schedule"
)

// Protected reports whether v requires a signed-in identity.
func (v View) Protected() bool {
	return v != ViewLanding
}

// Decision is the outcome of a navigation check. The zero value means
// "stay where you are".
type Decision struct {
	Navigate bool
	Target   View
	// Replace asks the navigator to replace the current history entry so
	// the gated view cannot be reached via back-navigation.
	Replace bool
}

func redirect(target View) Decision {
	return Decision{Navigate: true, Target: target, Replace: true}
}
