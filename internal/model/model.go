package model

import "time"

// Identity is the signed-in user as reported by the identity provider.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Profile holds the onboarding fields stored server-side per user.
// JSON keys match the UserStorage row returned by GET /user.
type Profile struct {
	Email               string  `json:"Email"`
	FirstName           string  `json:"FirstName"`
	LastName            string  `json:"LastName"`
	Age                 int     `json:"Age"`
	Weight              float64 `json:"Weight"`
	Sex                 string  `json:"Sex"`
	Insomnia            bool    `json:"Insomnia"`
	MaintenanceCalories int     `json:"MaintenanceCalories"`
}

// ProfileStatus is the server's answer to a completeness check.
// It is fetched fresh per check and never cached locally.
type ProfileStatus struct {
	Success  bool
	Complete bool
	Profile  *Profile
}

// ScheduleEntry is one weekly recurring activity slot. Day is a single
// letter (U,M,T,W,R,F,S = Sunday..Saturday); hours are 0–23.
type ScheduleEntry struct {
	Activity  string `json:"activity"`
	Day       string `json:"day"`
	StartHour int    `json:"start_time"`
	EndHour   int    `json:"end_time"`
}

// CalendarEvent is a ScheduleEntry anchored to a concrete date in the
// current week. Derived, never persisted.
type CalendarEvent struct {
	Title string
	Start time.Time
	End   time.Time
}

// Record is a logged activity session. JSON keys match the Records
// table as serialised by the server.
type Record struct {
	Email    string `json:"Email"`
	Activity string `json:"Activity"`
	Datetime string `json:"Datetime"`
	Duration int    `json:"Duration"`
	Quality  int    `json:"Quality"`
}

// Meal is a logged meal. JSON keys match the Meals table.
type Meal struct {
	Email    string `json:"Email"`
	FoodName string `json:"FoodName"`
	Datetime string `json:"Datetime"`
}

// SavedLog is a server-computed summary over a date range.
type SavedLog struct {
	Email           string  `json:"email"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	AvgCalBurnt     float64 `json:"avgCalBurnt"`
	AvgCalConsumed  float64 `json:"avgCalConsumed"`
	AvgProteinGrams float64 `json:"avgProteinGrams"`
	AvgCarbGrams    float64 `json:"avgCarbGrams"`
}

// CaloriePoint is one day of the calories-in/calories-out feed
// (/weekly/calories, /daily/calories, /monthly/calories).
type CaloriePoint struct {
	Date          string  `json:"date"`
	CalsBurnt     float64 `json:"cals_burnt"`
	TotalCals     float64 `json:"total_cals"`
	UnhealthyCals float64 `json:"unhealthy_cals"`
}

// ActivityCalories is one activity's burn total (/weekly/activities).
type ActivityCalories struct {
	Activity  string  `json:"activity"`
	CalsBurnt float64 `json:"cals_burnt"`
}

// DayCalories is one day's burn total (/weekly/activitiescalories).
type DayCalories struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
}
