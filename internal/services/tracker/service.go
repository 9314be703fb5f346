package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soberline/soberline/internal/bac"
	"github.com/soberline/soberline/internal/common/clock"
	"github.com/soberline/soberline/internal/common/uuid"
	"github.com/soberline/soberline/internal/models"
	drinkLogRepo "github.com/soberline/soberline/internal/repositories/drink_log"
	profileRepo "github.com/soberline/soberline/internal/repositories/profile"
)

// service implements the Service interface
type service struct {
	drinkLogRepo  drinkLogRepo.Repository
	profileRepo   profileRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DrinkLogRepo == nil {
		return nil, ErrNilDrinkLogRepo
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		drinkLogRepo:  cfg.DrinkLogRepo,
		profileRepo:   cfg.ProfileRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// LogDrink records a consumed drink and returns the resulting BAC
func (s *service) LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if input.VolumeMl <= 0 {
		return nil, ErrInvalidVolume
	}

	if input.ABVPercent <= 0 || input.ABVPercent > 100 {
		return nil, ErrInvalidABV
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = s.clock.Now()
	}

	drink := &models.DrinkEvent{
		ID:         s.uuidGenerator.NewUUID(),
		UserID:     input.UserID,
		ChannelID:  input.ChannelID,
		VolumeMl:   input.VolumeMl,
		ABVPercent: input.ABVPercent,
		Timestamp:  timestamp,
	}

	err := s.drinkLogRepo.AddDrink(ctx, &drinkLogRepo.AddDrinkInput{
		Drink: drink,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store drink: %w", err)
	}

	drinks, profile, err := s.loadSession(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &LogDrinkOutput{
		Drink:      drink,
		CurrentBAC: bac.EvaluateAt(drinks, profile, s.clock.Now()),
	}, nil
}

// GetStatus reports the current BAC and how long until it decays to the legal
// limit and to zero. When the log is non-empty but the estimate has already
// returned to zero, the session is considered over and the log is cleared —
// a policy of this service, not of the estimator.
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	drinks, profile, err := s.loadSession(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	current := bac.EvaluateAt(drinks, profile, now)

	output := &GetStatusOutput{
		CurrentBAC:     current,
		TimeUntilLegal: bac.TimeUntilTarget(current, profile.LegalLimitPercent),
		TimeUntilSober: bac.TimeUntilTarget(current, 0),
		OverLimit:      current > profile.LegalLimitPercent,
		DrinkCount:     len(drinks),
		Profile:        profile,
	}

	if len(drinks) > 0 && current == 0 && !anyAfter(drinks, now) {
		if _, err := s.drinkLogRepo.DeleteDrinksForUser(ctx, &drinkLogRepo.DeleteDrinksForUserInput{
			UserID: input.UserID,
		}); err != nil {
			return nil, fmt.Errorf("failed to clear session: %w", err)
		}

		output.SessionCleared = true
		output.DrinkCount = 0
	}

	return output, nil
}

// GetCurve synthesizes the BAC curve for a user's drink log
func (s *service) GetCurve(ctx context.Context, input *GetCurveInput) (*GetCurveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	drinks, profile, err := s.loadSession(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetCurveOutput{
		Samples: bac.Series(drinks, profile, s.clock.Now()),
		Profile: profile,
	}, nil
}

// SetProfile stores the physiological parameters used for estimation
func (s *service) SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if input.Sex != models.SexMale && input.Sex != models.SexFemale {
		return nil, ErrInvalidSex
	}

	if input.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	if input.LegalLimitPercent < 0 {
		return nil, ErrInvalidLegalLimit
	}

	userProfile := &models.Profile{
		UserID:            input.UserID,
		Sex:               input.Sex,
		WeightKg:          input.WeightKg,
		LegalLimitPercent: input.LegalLimitPercent,
		UpdatedAt:         s.clock.Now(),
	}

	err := s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: userProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &SetProfileOutput{
		Profile: userProfile,
	}, nil
}

// GetProfile retrieves a user's stored profile
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	output, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &GetProfileOutput{
		Profile: output.Profile,
	}, nil
}

// RemoveLastDrink deletes the most recently consumed drink
func (s *service) RemoveLastDrink(ctx context.Context, input *RemoveLastDrinkInput) (*RemoveLastDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	drinksOutput, err := s.drinkLogRepo.GetDrinksForUser(ctx, &drinkLogRepo.GetDrinksForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	if len(drinksOutput.Drinks) == 0 {
		return nil, ErrNoDrinks
	}

	// The repository returns drinks oldest first
	last := drinksOutput.Drinks[len(drinksOutput.Drinks)-1]

	err = s.drinkLogRepo.DeleteDrink(ctx, &drinkLogRepo.DeleteDrinkInput{
		UserID:  input.UserID,
		DrinkID: last.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete drink: %w", err)
	}

	profile, err := s.loadProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	remaining := drinksOutput.Drinks[:len(drinksOutput.Drinks)-1]

	return &RemoveLastDrinkOutput{
		Removed:    last,
		CurrentBAC: bac.EvaluateAt(remaining, profile, s.clock.Now()),
	}, nil
}

// ClearSession deletes the user's entire drink log
func (s *service) ClearSession(ctx context.Context, input *ClearSessionInput) (*ClearSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	output, err := s.drinkLogRepo.DeleteDrinksForUser(ctx, &drinkLogRepo.DeleteDrinksForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear session: %w", err)
	}

	return &ClearSessionOutput{
		DrinksCleared: output.Deleted,
	}, nil
}

// loadSession fetches a user's drink log and profile in one go
func (s *service) loadSession(ctx context.Context, userID string) ([]*models.DrinkEvent, *models.Profile, error) {
	drinksOutput, err := s.drinkLogRepo.GetDrinksForUser(ctx, &drinkLogRepo.GetDrinksForUserInput{
		UserID: userID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	userProfile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return drinksOutput.Drinks, userProfile, nil
}

// loadProfile fetches a user's profile, falling back to defaults when none
// has been set
func (s *service) loadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	output, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return &models.Profile{
				UserID:            userID,
				Sex:               DefaultSex,
				WeightKg:          DefaultWeightKg,
				LegalLimitPercent: DefaultLegalLimitPercent,
			}, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return output.Profile, nil
}

// anyAfter reports whether any drink is timestamped after the given instant.
// A future-dated drink keeps the session open even though it contributes
// nothing to the current estimate.
func anyAfter(drinks []*models.DrinkEvent, at time.Time) bool {
	for _, d := range drinks {
		if d.Timestamp.After(at) {
			return true
		}
	}
	return false
}
