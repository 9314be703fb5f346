package models

import (
	"time"
)

// Sex selects the body water distribution ratio used by the Widmark formula
type Sex string

const (
	// SexMale maps to a distribution ratio of 0.68
	SexMale Sex = "male"

	// SexFemale maps to a distribution ratio of 0.55
	SexFemale Sex = "female"
)

// Profile holds the physiological parameters for a user
type Profile struct {
	// UserID is the Discord user ID this profile belongs to
	UserID string

	// Sex selects the distribution ratio used when estimating BAC
	Sex Sex

	// WeightKg is the user's body weight in kilograms
	WeightKg float64

	// LegalLimitPercent is the BAC threshold the user considers legal
	LegalLimitPercent float64

	// UpdatedAt is when the profile was last changed
	UpdatedAt time.Time
}
