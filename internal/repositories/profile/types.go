package profile

import "github.com/soberline/soberline/internal/models"

// SaveProfileInput contains parameters for storing a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains the result of retrieving a profile
type GetProfileOutput struct {
	Profile *models.Profile
}

// DeleteProfileInput contains parameters for removing a profile
type DeleteProfileInput struct {
	UserID string
}
