package drink_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/soberline/soberline/internal/repositories/drink_log Repository

import (
	"context"
)

// Repository defines the interface for drink log persistence
type Repository interface {
	// AddDrink stores a drink event in the user's log
	AddDrink(ctx context.Context, input *AddDrinkInput) error

	// GetDrinksForUser retrieves all drink events for a user, oldest first
	GetDrinksForUser(ctx context.Context, input *GetDrinksForUserInput) (*GetDrinksForUserOutput, error)

	// DeleteDrink removes a single drink event from a user's log
	DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error

	// DeleteDrinksForUser removes all drink events for a user
	DeleteDrinksForUser(ctx context.Context, input *DeleteDrinksForUserInput) (*DeleteDrinksForUserOutput, error)
}
