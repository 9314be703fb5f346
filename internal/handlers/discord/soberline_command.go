package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/soberline/soberline/internal/models"
	"github.com/soberline/soberline/internal/services/tracker"
)

// SoberlineCommand handles the /soberline command
type SoberlineCommand struct {
	BaseCommand
	trackerService tracker.Service
}

// NewSoberlineCommand creates a new soberline command handler
func NewSoberlineCommand(trackerService tracker.Service) *SoberlineCommand {
	return &SoberlineCommand{
		BaseCommand: BaseCommand{
			Name:        "soberline",
			Description: "Track your estimated blood alcohol content",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "drink",
					Description: "Log a drink",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "volume_ml",
							Description: "Volume in milliliters",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "abv",
							Description: "Alcohol by volume, in percent",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show your current BAC and when you'll be legal and sober",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "curve",
					Description: "Plot your BAC curve for this session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "profile",
					Description: "Set your physiological profile",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "sex",
							Description: "Used for the Widmark distribution ratio",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "male", Value: string(models.SexMale)},
								{Name: "female", Value: string(models.SexFemale)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "weight_kg",
							Description: "Body weight in kilograms",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "legal_limit",
							Description: "Legal BAC limit in percent (default 0.08)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Remove your most recent drink",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Clear your drink log",
				},
			},
		},
		trackerService: trackerService,
	}
}

// Handle processes a Discord interaction for the soberline command
func (c *SoberlineCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Get the channel ID and user information
	channelID := i.ChannelID
	userID := i.Member.User.ID

	// Handle the appropriate subcommand
	var err error
	switch data.Options[0].Name {
	case "drink":
		err = c.handleDrink(s, i, channelID, userID, data.Options[0].Options)
	case "status":
		err = c.handleStatus(s, i, userID)
	case "curve":
		err = c.handleCurve(s, i, userID)
	case "profile":
		err = c.handleProfile(s, i, userID, data.Options[0].Options)
	case "undo":
		err = c.handleUndo(s, i, userID)
	case "reset":
		err = c.handleReset(s, i, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleDrink handles the drink subcommand
func (c *SoberlineCommand) handleDrink(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &tracker.LogDrinkInput{
		UserID:    userID,
		ChannelID: channelID,
	}

	for _, opt := range options {
		switch opt.Name {
		case "volume_ml":
			input.VolumeMl = opt.FloatValue()
		case "abv":
			input.ABVPercent = opt.FloatValue()
		}
	}

	output, err := c.trackerService.LogDrink(ctx, input)
	if err != nil {
		var trackerErr tracker.TrackerError
		if errors.As(err, &trackerErr) {
			return RespondWithError(s, i, trackerErr.Error())
		}
		log.Printf("Error logging drink: %v", err)
		return RespondWithError(s, i, "Failed to log drink.")
	}

	return RespondWithEphemeralEmbed(s, i, renderDrinkLoggedEmbed(output))
}

// handleStatus handles the status subcommand
func (c *SoberlineCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.trackerService.GetStatus(ctx, &tracker.GetStatusInput{
		UserID: userID,
	})
	if err != nil {
		log.Printf("Error getting status: %v", err)
		return RespondWithError(s, i, "Failed to get your status.")
	}

	return RespondWithEphemeralEmbed(s, i, renderStatusEmbed(output))
}

// handleCurve handles the curve subcommand
func (c *SoberlineCommand) handleCurve(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.trackerService.GetCurve(ctx, &tracker.GetCurveInput{
		UserID: userID,
	})
	if err != nil {
		log.Printf("Error getting curve: %v", err)
		return RespondWithError(s, i, "Failed to plot your curve.")
	}

	return RespondWithEphemeralMessage(s, i, renderCurveMessage(output))
}

// handleProfile handles the profile subcommand
func (c *SoberlineCommand) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &tracker.SetProfileInput{
		UserID:            userID,
		LegalLimitPercent: tracker.DefaultLegalLimitPercent,
	}

	for _, opt := range options {
		switch opt.Name {
		case "sex":
			input.Sex = models.Sex(opt.StringValue())
		case "weight_kg":
			input.WeightKg = opt.FloatValue()
		case "legal_limit":
			input.LegalLimitPercent = opt.FloatValue()
		}
	}

	output, err := c.trackerService.SetProfile(ctx, input)
	if err != nil {
		var trackerErr tracker.TrackerError
		if errors.As(err, &trackerErr) {
			return RespondWithError(s, i, trackerErr.Error())
		}
		log.Printf("Error setting profile: %v", err)
		return RespondWithError(s, i, "Failed to save your profile.")
	}

	return RespondWithEphemeralEmbed(s, i, renderProfileEmbed(output.Profile))
}

// handleUndo handles the undo subcommand
func (c *SoberlineCommand) handleUndo(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.trackerService.RemoveLastDrink(ctx, &tracker.RemoveLastDrinkInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, tracker.ErrNoDrinks) {
			return RespondWithEphemeralMessage(s, i, "Nothing to undo, your log is empty.")
		}
		log.Printf("Error removing last drink: %v", err)
		return RespondWithError(s, i, "Failed to remove your last drink.")
	}

	message := fmt.Sprintf("Removed %.0fml at %.1f%% ABV. Estimated BAC is now **%s**.",
		output.Removed.VolumeMl, output.Removed.ABVPercent, formatBAC(output.CurrentBAC))
	return RespondWithEphemeralMessage(s, i, message)
}

// handleReset handles the reset subcommand
func (c *SoberlineCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.trackerService.ClearSession(ctx, &tracker.ClearSessionInput{
		UserID: userID,
	})
	if err != nil {
		log.Printf("Error clearing session: %v", err)
		return RespondWithError(s, i, "Failed to clear your log.")
	}

	if output.DrinksCleared == 0 {
		return RespondWithEphemeralMessage(s, i, "Your log was already empty.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Cleared %d drinks. Fresh start!", output.DrinksCleared))
}
