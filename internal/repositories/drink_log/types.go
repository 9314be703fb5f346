package drink_log

import "github.com/soberline/soberline/internal/models"

// AddDrinkInput contains parameters for storing a drink event
type AddDrinkInput struct {
	Drink *models.DrinkEvent
}

// GetDrinksForUserInput contains parameters for retrieving a user's drink log
type GetDrinksForUserInput struct {
	UserID string
}

// GetDrinksForUserOutput contains the result of retrieving a user's drink log
type GetDrinksForUserOutput struct {
	Drinks []*models.DrinkEvent
}

// DeleteDrinkInput contains parameters for removing a single drink event
type DeleteDrinkInput struct {
	UserID  string
	DrinkID string
}

// DeleteDrinksForUserInput contains parameters for clearing a user's drink log
type DeleteDrinksForUserInput struct {
	UserID string
}

// DeleteDrinksForUserOutput contains the result of clearing a user's drink log
type DeleteDrinksForUserOutput struct {
	// Deleted is the number of drink events removed
	Deleted int
}
