// Package bac estimates blood alcohol content from a log of drink events
// using a single-rate Widmark approximation: each drink contributes an
// instantaneous peak that decays linearly, and the total is the sum of all
// still-active contributions.
package bac

import (
	"sort"
	"time"

	"github.com/soberline/soberline/internal/models"
)

const (
	// EthanolDensityGramsPerMl is the density of ethanol
	EthanolDensityGramsPerMl = 0.789

	// EliminationRatePerHour is the assumed constant BAC decay, in percent per hour
	EliminationRatePerHour = 0.015

	ratioMale   = 0.68
	ratioFemale = 0.55
)

// DistributionRatio returns the Widmark body water fraction for a sex
func DistributionRatio(sex models.Sex) float64 {
	if sex == models.SexFemale {
		return ratioFemale
	}
	return ratioMale
}

// EvaluateAt returns the estimated BAC percent at the given instant.
// Drinks timestamped after the query instant have not happened yet from its
// perspective and are ignored; an empty log evaluates to 0.
func EvaluateAt(drinks []*models.DrinkEvent, profile *models.Profile, at time.Time) float64 {
	var total float64
	for _, d := range drinks {
		if d.Timestamp.After(at) {
			continue
		}
		total += decay(peakContribution(d, profile), at.Sub(d.Timestamp))
	}
	return total
}

// Series synthesizes the BAC curve for a drink log as an ordered sequence of
// samples, from the first drink through to the point where BAC returns to
// zero. Each drink produces a doubled sample (level before and after
// absorption) so the curve renders as a vertical rise; the after sample is
// marked as a peak. The input slice is never mutated and its order does not
// matter.
func Series(drinks []*models.DrinkEvent, profile *models.Profile, now time.Time) []models.Sample {
	if len(drinks) == 0 {
		return []models.Sample{}
	}

	sorted := make([]*models.DrinkEvent, len(drinks))
	copy(sorted, drinks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	samples := make([]models.Sample, 0, 2*len(sorted)+2)
	var level float64

	for i, d := range sorted {
		samples = append(samples, models.Sample{Time: d.Timestamp, Level: level})

		level += peakContribution(d, profile)
		samples = append(samples, models.Sample{Time: d.Timestamp, Level: level, IsPeak: true})

		// Where this trajectory would cross zero absent further drinks.
		zeroTime := d.Timestamp.Add(TimeUntilTarget(level, 0))

		if i+1 < len(sorted) {
			// The next iteration's "before" sample captures the decayed level.
			level = decay(level, sorted[i+1].Timestamp.Sub(d.Timestamp))
			continue
		}

		if now.After(d.Timestamp) {
			level = decay(level, now.Sub(d.Timestamp))
			samples = append(samples, models.Sample{Time: now, Level: level})
			if level > 0 {
				samples = append(samples, models.Sample{Time: zeroTime, Level: 0})
			}
		} else {
			// Last drink is future-dated; decaying toward now is meaningless,
			// so close the curve at its projected zero crossing.
			samples = append(samples, models.Sample{Time: zeroTime, Level: 0})
		}
	}

	return samples
}

// TimeUntilTarget returns how long the given BAC takes to decay to the target
// level under the constant elimination rate, assuming no further drinks.
// Returns 0 when already at or below the target.
func TimeUntilTarget(current, target float64) time.Duration {
	if current <= target {
		return 0
	}
	return time.Duration((current - target) / EliminationRatePerHour * float64(time.Hour))
}

// peakContribution is the instantaneous BAC bump one drink adds, via the
// Widmark formula.
func peakContribution(d *models.DrinkEvent, profile *models.Profile) float64 {
	grams := d.VolumeMl * (d.ABVPercent / 100) * EthanolDensityGramsPerMl
	return grams / (profile.WeightKg * 1000 * DistributionRatio(profile.Sex)) * 100
}

// decay reduces a contribution by the elapsed time, never below zero.
func decay(level float64, elapsed time.Duration) float64 {
	decayed := level - EliminationRatePerHour*elapsed.Hours()
	if decayed < 0 {
		return 0
	}
	return decayed
}
