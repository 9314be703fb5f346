package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/soberline/soberline/internal/models"
	"github.com/soberline/soberline/internal/services/tracker"
)

// Chart dimensions for the code-block curve rendering
const (
	chartWidth  = 44
	chartHeight = 9
)

// renderStatusEmbed builds the embed for the status subcommand
func renderStatusEmbed(output *tracker.GetStatusOutput) *discordgo.MessageEmbed {
	color := 0x00ff00 // Green color
	description := "You're under your legal limit."

	if output.OverLimit {
		color = 0xff9900 // Orange color
		description = "You're **over** your legal limit. Don't drive."
	}

	if output.DrinkCount == 0 && !output.SessionCleared {
		description = "No drinks logged. Cheers to that, or use `/soberline drink` to start."
	}

	if output.SessionCleared {
		description = "Your BAC is back to zero, so the session was closed and the log cleared."
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Current BAC",
			Value:  formatBAC(output.CurrentBAC),
			Inline: true,
		},
		{
			Name:   "Legal limit",
			Value:  formatBAC(output.Profile.LegalLimitPercent),
			Inline: true,
		},
		{
			Name:   "Drinks",
			Value:  fmt.Sprintf("%d", output.DrinkCount),
			Inline: true,
		},
		{
			Name:   "Legal in",
			Value:  formatDuration(output.TimeUntilLegal),
			Inline: true,
		},
		{
			Name:   "Sober in",
			Value:  formatDuration(output.TimeUntilSober),
			Inline: true,
		},
	}

	return &discordgo.MessageEmbed{
		Title:       "Soberline Status",
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

// renderDrinkLoggedEmbed builds the embed confirming a logged drink
func renderDrinkLoggedEmbed(output *tracker.LogDrinkOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Drink logged 🍺",
		Description: fmt.Sprintf("%.0fml at %.1f%% ABV. Estimated BAC is now **%s**.",
			output.Drink.VolumeMl, output.Drink.ABVPercent, formatBAC(output.CurrentBAC)),
		Color: 0x00ff00, // Green color
	}
}

// renderProfileEmbed builds the embed for a stored profile
func renderProfileEmbed(profile *models.Profile) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Sex",
			Value:  string(profile.Sex),
			Inline: true,
		},
		{
			Name:   "Weight",
			Value:  fmt.Sprintf("%.1f kg", profile.WeightKg),
			Inline: true,
		},
		{
			Name:   "Legal limit",
			Value:  formatBAC(profile.LegalLimitPercent),
			Inline: true,
		},
	}

	return &discordgo.MessageEmbed{
		Title:  "Profile saved",
		Color:  0x00ff00, // Green color
		Fields: fields,
	}
}

// renderCurveMessage renders the BAC curve as a monospace chart suitable for
// a Discord code block
func renderCurveMessage(output *tracker.GetCurveOutput) string {
	if len(output.Samples) == 0 {
		return "No drinks logged, so there's no curve to plot."
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	sb.WriteString(renderCurveChart(output.Samples, output.Profile.LegalLimitPercent))
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("`····` marks your legal limit (%s).", formatBAC(output.Profile.LegalLimitPercent)))
	return sb.String()
}

// renderCurveChart rasterizes a piecewise-linear sample sequence into a
// fixed-size character grid, one column per time slice.
func renderCurveChart(samples []models.Sample, legalLimit float64) string {
	start := samples[0].Time
	end := samples[len(samples)-1].Time
	span := end.Sub(start)
	if span <= 0 {
		span = time.Minute
	}

	// Level per column, via interpolation along the sample sequence
	levels := make([]float64, chartWidth)
	maxLevel := legalLimit
	for col := 0; col < chartWidth; col++ {
		t := start.Add(span * time.Duration(col) / time.Duration(chartWidth-1))
		levels[col] = levelAt(samples, t)
		if levels[col] > maxLevel {
			maxLevel = levels[col]
		}
	}
	if maxLevel <= 0 {
		maxLevel = 0.01
	}

	legalRow := 0
	if legalLimit > 0 {
		legalRow = int(legalLimit / maxLevel * chartHeight)
	}

	var sb strings.Builder
	for row := chartHeight; row >= 1; row-- {
		threshold := maxLevel * float64(row) / chartHeight

		// Label the top, legal-limit and a middle row
		switch {
		case row == chartHeight || row == legalRow || row == (chartHeight+1)/2:
			sb.WriteString(fmt.Sprintf("%6.3f ┤", threshold))
		default:
			sb.WriteString("       │")
		}

		for col := 0; col < chartWidth; col++ {
			switch {
			case levels[col] >= threshold:
				sb.WriteByte('#')
			case row == legalRow:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	// Time axis
	sb.WriteString(" 0.000 └")
	sb.WriteString(strings.Repeat("─", chartWidth))
	sb.WriteByte('\n')
	startLabel := start.Format("15:04")
	endLabel := end.Format("15:04")
	sb.WriteString("        " + startLabel)
	sb.WriteString(strings.Repeat(" ", chartWidth-len(startLabel)-len(endLabel)))
	sb.WriteString(endLabel)
	sb.WriteByte('\n')

	return sb.String()
}

// levelAt interpolates the BAC level at an arbitrary instant along the
// sample sequence. Doubled samples at a drink's timestamp resolve to the
// post-absorption level.
func levelAt(samples []models.Sample, t time.Time) float64 {
	if t.Before(samples[0].Time) {
		return samples[0].Level
	}

	last := samples[len(samples)-1]
	if !t.Before(last.Time) {
		return last.Level
	}

	// Pick the latest segment whose start is at or before t
	idx := 0
	for i := range samples {
		if !samples[i].Time.After(t) {
			idx = i
		}
	}

	a := samples[idx]
	b := samples[idx+1]

	segment := b.Time.Sub(a.Time)
	if segment <= 0 {
		return b.Level
	}

	frac := float64(t.Sub(a.Time)) / float64(segment)
	return a.Level + (b.Level-a.Level)*frac
}

// formatBAC formats a BAC percentage for display
func formatBAC(level float64) string {
	return fmt.Sprintf("%.3f%%", level)
}

// formatDuration formats a decay duration for display
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "now"
	}

	d = d.Round(time.Minute)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
