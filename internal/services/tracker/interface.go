package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/soberline/soberline/internal/services/tracker Service

import "context"

// Service defines the interface for BAC tracking operations
type Service interface {
	// LogDrink records a consumed drink and returns the resulting BAC
	LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error)

	// GetStatus reports the current BAC and how long until it decays to the
	// legal limit and to zero
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetCurve synthesizes the BAC curve for a user's drink log
	GetCurve(ctx context.Context, input *GetCurveInput) (*GetCurveOutput, error)

	// SetProfile stores the physiological parameters used for estimation
	SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error)

	// GetProfile retrieves a user's stored profile
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// RemoveLastDrink deletes the most recently consumed drink
	RemoveLastDrink(ctx context.Context, input *RemoveLastDrinkInput) (*RemoveLastDrinkOutput, error)

	// ClearSession deletes the user's entire drink log
	ClearSession(ctx context.Context, input *ClearSessionInput) (*ClearSessionOutput, error)
}
