package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalCategory is the fixed enumeration of savings-goal categories.
type GoalCategory string

const (
	GoalEmergency  GoalCategory = "Emergency"
	GoalTravel     GoalCategory = "Travel"
	GoalHome       GoalCategory = "Home"
	GoalVehicle    GoalCategory = "Vehicle"
	GoalEducation  GoalCategory = "Education"
	GoalGadget     GoalCategory = "Gadget"
	GoalInvestment GoalCategory = "Investment"
	GoalOther      GoalCategory = "Other"
)

// GoalCategories lists all valid goal categories in display order.
var GoalCategories = []GoalCategory{
	GoalEmergency, GoalTravel, GoalHome, GoalVehicle,
	GoalEducation, GoalGadget, GoalInvestment, GoalOther,
}

// IsValid reports whether c is one of the fixed goal categories.
func (c GoalCategory) IsValid() bool {
	for _, known := range GoalCategories {
		if c == known {
			return true
		}
	}
	return false
}

type goalPresentation struct {
	Icon  string
	Color string
}

var goalPresentations = map[GoalCategory]goalPresentation{
	GoalEmergency:  {Icon: "shield", Color: "#E53E3E"},
	GoalTravel:     {Icon: "plane", Color: "#3182CE"},
	GoalHome:       {Icon: "home", Color: "#38A169"},
	GoalVehicle:    {Icon: "car", Color: "#805AD5"},
	GoalEducation:  {Icon: "book", Color: "#D69E2E"},
	GoalGadget:     {Icon: "device", Color: "#319795"},
	GoalInvestment: {Icon: "chart", Color: "#DD6B20"},
	GoalOther:      {Icon: "star", Color: "#718096"},
}

// Icon returns the display icon name derived from the category.
func (c GoalCategory) Icon() string {
	if p, ok := goalPresentations[c]; ok {
		return p.Icon
	}
	return goalPresentations[GoalOther].Icon
}

// Color returns the display color derived from the category.
func (c GoalCategory) Color() string {
	if p, ok := goalPresentations[c]; ok {
		return p.Color
	}
	return goalPresentations[GoalOther].Color
}

// SavingsGoal is a savings target with an optional deadline.
// SavedAmount is the raw accumulated value; it may exceed TargetAmount and is
// never clamped in storage. Clamping happens only for progress display.
type SavingsGoal struct {
	GoalID       string          `json:"goalID"` // UUID
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"` // positive
	SavedAmount  decimal.Decimal `json:"savedAmount"`  // non-negative, unclamped
	Deadline     string          `json:"deadline,omitempty"` // DateLayout, empty means no deadline
	Category     GoalCategory    `json:"category"`
	AuditFields
}

// ParsedDeadline parses the deadline date. Returns a zero time and false when
// no deadline is set or the stored value does not parse.
func (g SavingsGoal) ParsedDeadline() (time.Time, bool) {
	if g.Deadline == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, g.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
