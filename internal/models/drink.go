package models

import (
	"time"
)

// DrinkEvent records one consumed drink
type DrinkEvent struct {
	// ID is the unique identifier for the drink event
	ID string

	// UserID is the Discord user ID of the person who drank it
	UserID string

	// ChannelID is the Discord channel the drink was logged from
	ChannelID string

	// VolumeMl is the volume of liquid consumed, in milliliters
	VolumeMl float64

	// ABVPercent is the alcohol by volume percentage of the drink
	ABVPercent float64

	// Timestamp is when the drink was consumed
	Timestamp time.Time
}
