package tracker

import (
	"time"

	"github.com/soberline/soberline/internal/common/clock"
	"github.com/soberline/soberline/internal/common/uuid"
	"github.com/soberline/soberline/internal/models"
	drinkLogRepo "github.com/soberline/soberline/internal/repositories/drink_log"
	profileRepo "github.com/soberline/soberline/internal/repositories/profile"
)

// Defaults applied when a user has not set a profile
const (
	DefaultSex               = models.SexMale
	DefaultWeightKg          = 80.0
	DefaultLegalLimitPercent = 0.08
)

// Config holds configuration for the tracker service
type Config struct {
	// Repository dependencies
	DrinkLogRepo drinkLogRepo.Repository
	ProfileRepo  profileRepo.Repository

	// Clock for time-based operations
	Clock clock.Clock

	// UUIDGenerator for generating drink IDs
	UUIDGenerator uuid.UUID
}

// LogDrinkInput contains parameters for recording a drink
type LogDrinkInput struct {
	UserID    string
	ChannelID string

	// VolumeMl is the volume consumed, in milliliters
	VolumeMl float64

	// ABVPercent is the drink's alcohol by volume percentage
	ABVPercent float64

	// Timestamp is when the drink was consumed; zero means now
	Timestamp time.Time
}

// LogDrinkOutput contains the result of recording a drink
type LogDrinkOutput struct {
	// Drink is the stored drink event
	Drink *models.DrinkEvent

	// CurrentBAC is the estimated BAC after this drink
	CurrentBAC float64
}

// GetStatusInput contains parameters for a status query
type GetStatusInput struct {
	UserID string
}

// GetStatusOutput contains the result of a status query
type GetStatusOutput struct {
	// CurrentBAC is the estimated BAC right now
	CurrentBAC float64

	// TimeUntilLegal is how long until BAC decays below the legal limit
	TimeUntilLegal time.Duration

	// TimeUntilSober is how long until BAC decays to zero
	TimeUntilSober time.Duration

	// OverLimit indicates the current BAC exceeds the profile's legal limit
	OverLimit bool

	// DrinkCount is the number of drinks in the active session
	DrinkCount int

	// SessionCleared indicates the drink log was cleared because the
	// estimated BAC had returned to zero
	SessionCleared bool

	// Profile is the profile the estimate was computed with
	Profile *models.Profile
}

// GetCurveInput contains parameters for a curve query
type GetCurveInput struct {
	UserID string
}

// GetCurveOutput contains the synthesized BAC curve
type GetCurveOutput struct {
	// Samples is the curve, chronologically ordered
	Samples []models.Sample

	// Profile is the profile the curve was computed with
	Profile *models.Profile
}

// SetProfileInput contains parameters for storing a profile
type SetProfileInput struct {
	UserID            string
	Sex               models.Sex
	WeightKg          float64
	LegalLimitPercent float64
}

// SetProfileOutput contains the stored profile
type SetProfileOutput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains the retrieved profile
type GetProfileOutput struct {
	Profile *models.Profile
}

// RemoveLastDrinkInput contains parameters for undoing the latest drink
type RemoveLastDrinkInput struct {
	UserID string
}

// RemoveLastDrinkOutput contains the result of undoing the latest drink
type RemoveLastDrinkOutput struct {
	// Removed is the drink event that was deleted
	Removed *models.DrinkEvent

	// CurrentBAC is the estimated BAC after the removal
	CurrentBAC float64
}

// ClearSessionInput contains parameters for clearing a drink log
type ClearSessionInput struct {
	UserID string
}

// ClearSessionOutput contains the result of clearing a drink log
type ClearSessionOutput struct {
	// DrinksCleared is the number of drink events removed
	DrinksCleared int
}
