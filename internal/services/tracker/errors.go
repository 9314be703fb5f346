package tracker

// TrackerError is a custom error type for tracker-related errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrProfileNotFound   TrackerError = "profile not set"
	ErrNoDrinks          TrackerError = "no drinks logged"
	ErrInvalidVolume     TrackerError = "volume must be positive"
	ErrInvalidABV        TrackerError = "abv must be greater than 0 and at most 100"
	ErrInvalidWeight     TrackerError = "weight must be positive"
	ErrInvalidLegalLimit TrackerError = "legal limit cannot be negative"
	ErrInvalidSex        TrackerError = "sex must be male or female"
	ErrMissingUserID     TrackerError = "user ID cannot be empty"
	ErrNilInput          TrackerError = "input cannot be nil"
	ErrNilConfig         TrackerError = "config cannot be nil"
	ErrNilDrinkLogRepo   TrackerError = "drink log repository cannot be nil"
	ErrNilProfileRepo    TrackerError = "profile repository cannot be nil"
	ErrNilClock          TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator  TrackerError = "UUID generator cannot be nil"
)
