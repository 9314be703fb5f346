package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/soberline/soberline/internal/repositories/profile Repository

import (
	"context"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// SaveProfile stores a user's profile, replacing any existing one
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a user's profile
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// DeleteProfile removes a user's profile
	DeleteProfile(ctx context.Context, input *DeleteProfileInput) error
}
