package bac

import (
	"testing"
	"time"

	"github.com/soberline/soberline/internal/models"
	"github.com/stretchr/testify/suite"
)

type BacTestSuite struct {
	suite.Suite

	baseTime time.Time
	profile  *models.Profile

	// Peak contribution of the standard test drink (500ml at 5% for a
	// 75kg male): 500*0.05*0.789 / (75*1000*0.68) * 100
	standardPeak float64
}

func (s *BacTestSuite) SetupTest() {
	s.baseTime = time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	s.profile = &models.Profile{
		UserID:            "test-user-id",
		Sex:               models.SexMale,
		WeightKg:          75,
		LegalLimitPercent: 0.05,
	}
	s.standardPeak = 500 * 0.05 * EthanolDensityGramsPerMl / (75 * 1000 * 0.68) * 100
}

func TestBacTestSuite(t *testing.T) {
	suite.Run(t, new(BacTestSuite))
}

func (s *BacTestSuite) standardDrink(at time.Time) *models.DrinkEvent {
	return &models.DrinkEvent{
		ID:         "test-drink-id",
		UserID:     "test-user-id",
		VolumeMl:   500,
		ABVPercent: 5,
		Timestamp:  at,
	}
}

func (s *BacTestSuite) TestEvaluateAtEmptyLog() {
	s.Zero(EvaluateAt(nil, s.profile, s.baseTime))
	s.Zero(EvaluateAt([]*models.DrinkEvent{}, s.profile, s.baseTime))
}

func (s *BacTestSuite) TestEvaluateAtBeforeFirstDrink() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime)}

	s.Zero(EvaluateAt(drinks, s.profile, s.baseTime.Add(-time.Second)))
	s.Zero(EvaluateAt(drinks, s.profile, s.baseTime.Add(-24*time.Hour)))
}

func (s *BacTestSuite) TestEvaluateAtDrinkMoment() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime)}

	got := EvaluateAt(drinks, s.profile, s.baseTime)
	s.InDelta(0.0387, got, 0.0001)
}

func (s *BacTestSuite) TestEvaluateAtAfterTwoHours() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime)}

	got := EvaluateAt(drinks, s.profile, s.baseTime.Add(2*time.Hour))
	s.InDelta(s.standardPeak-2*EliminationRatePerHour, got, 0.0001)
	s.InDelta(0.0087, got, 0.0001)
}

func (s *BacTestSuite) TestEvaluateAtFullyEliminated() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime)}

	// 0.0387 / 0.015 is about 2.58 hours to zero, so four hours is well past it.
	s.Zero(EvaluateAt(drinks, s.profile, s.baseTime.Add(4*time.Hour)))
}

func (s *BacTestSuite) TestEvaluateAtSuperposition() {
	drinks := []*models.DrinkEvent{
		s.standardDrink(s.baseTime),
		s.standardDrink(s.baseTime.Add(time.Hour)),
	}

	got := EvaluateAt(drinks, s.profile, s.baseTime.Add(time.Hour))

	want := s.standardPeak + (s.standardPeak - EliminationRatePerHour)
	s.InDelta(want, got, 0.0001)
}

func (s *BacTestSuite) TestEvaluateAtNonIncreasingBetweenDrinks() {
	drinks := []*models.DrinkEvent{
		s.standardDrink(s.baseTime),
		s.standardDrink(s.baseTime.Add(3 * time.Hour)),
	}

	previous := EvaluateAt(drinks, s.profile, s.baseTime)
	for minutes := 10; minutes < 180; minutes += 10 {
		current := EvaluateAt(drinks, s.profile, s.baseTime.Add(time.Duration(minutes)*time.Minute))
		s.LessOrEqual(current, previous)
		previous = current
	}
}

func (s *BacTestSuite) TestEvaluateAtIgnoresFutureDrinks() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime.Add(time.Hour))}

	s.Zero(EvaluateAt(drinks, s.profile, s.baseTime))
}

func (s *BacTestSuite) TestEvaluateAtFemaleRatio() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime)}
	profile := &models.Profile{
		Sex:      models.SexFemale,
		WeightKg: 75,
	}

	got := EvaluateAt(drinks, profile, s.baseTime)
	want := 500 * 0.05 * EthanolDensityGramsPerMl / (75 * 1000 * 0.55) * 100
	s.InDelta(want, got, 0.0001)
}

func (s *BacTestSuite) TestSeriesEmptyLog() {
	s.Empty(Series(nil, s.profile, s.baseTime))
}

func (s *BacTestSuite) TestSeriesSingleDrink() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime)}
	now := s.baseTime.Add(time.Hour)

	samples := Series(drinks, s.profile, now)
	s.Require().Len(samples, 4)

	// Doubled sample at the drink: level before and after absorption.
	s.Equal(s.baseTime, samples[0].Time)
	s.Zero(samples[0].Level)
	s.False(samples[0].IsPeak)

	s.Equal(s.baseTime, samples[1].Time)
	s.InDelta(s.standardPeak, samples[1].Level, 0.0001)
	s.True(samples[1].IsPeak)

	// Decayed level at now.
	s.Equal(now, samples[2].Time)
	s.InDelta(s.standardPeak-EliminationRatePerHour, samples[2].Level, 0.0001)

	// Closing sample at the projected zero crossing.
	s.Zero(samples[3].Level)
	expectedZero := s.baseTime.Add(TimeUntilTarget(s.standardPeak, 0))
	s.WithinDuration(expectedZero, samples[3].Time, time.Second)
}

func (s *BacTestSuite) TestSeriesTwoDrinks() {
	drinks := []*models.DrinkEvent{
		s.standardDrink(s.baseTime),
		s.standardDrink(s.baseTime.Add(time.Hour)),
	}
	now := s.baseTime.Add(2 * time.Hour)

	samples := Series(drinks, s.profile, now)
	s.Require().Len(samples, 6)

	// Second drink's "before" sample carries the first drink's decayed level.
	s.Equal(s.baseTime.Add(time.Hour), samples[2].Time)
	s.InDelta(s.standardPeak-EliminationRatePerHour, samples[2].Level, 0.0001)
	s.False(samples[2].IsPeak)

	s.Equal(s.baseTime.Add(time.Hour), samples[3].Time)
	s.InDelta(2*s.standardPeak-EliminationRatePerHour, samples[3].Level, 0.0001)
	s.True(samples[3].IsPeak)

	// Sample at now agrees with the point evaluator.
	s.Equal(now, samples[4].Time)
	s.InDelta(EvaluateAt(drinks, s.profile, now), samples[4].Level, 0.0001)
}

func (s *BacTestSuite) TestSeriesChronologicallyOrdered() {
	drinks := []*models.DrinkEvent{
		s.standardDrink(s.baseTime),
		s.standardDrink(s.baseTime.Add(30 * time.Minute)),
		s.standardDrink(s.baseTime.Add(90 * time.Minute)),
	}

	samples := Series(drinks, s.profile, s.baseTime.Add(2*time.Hour))
	for i := 1; i < len(samples); i++ {
		s.False(samples[i].Time.Before(samples[i-1].Time),
			"sample %d precedes sample %d", i, i-1)
	}
}

func (s *BacTestSuite) TestSeriesOrderIndependent() {
	first := s.standardDrink(s.baseTime)
	second := s.standardDrink(s.baseTime.Add(time.Hour))
	third := s.standardDrink(s.baseTime.Add(90 * time.Minute))
	now := s.baseTime.Add(3 * time.Hour)

	sorted := Series([]*models.DrinkEvent{first, second, third}, s.profile, now)
	shuffled := Series([]*models.DrinkEvent{third, first, second}, s.profile, now)

	s.Equal(sorted, shuffled)
}

func (s *BacTestSuite) TestSeriesDoesNotMutateInput() {
	first := s.standardDrink(s.baseTime.Add(time.Hour))
	second := s.standardDrink(s.baseTime)
	drinks := []*models.DrinkEvent{first, second}

	Series(drinks, s.profile, s.baseTime.Add(2*time.Hour))

	s.Same(first, drinks[0])
	s.Same(second, drinks[1])
}

func (s *BacTestSuite) TestSeriesFutureDatedLastDrink() {
	drinks := []*models.DrinkEvent{s.standardDrink(s.baseTime.Add(time.Hour))}

	// Now precedes the only drink, so the curve closes straight at the
	// projected zero crossing with no sample at now.
	samples := Series(drinks, s.profile, s.baseTime)
	s.Require().Len(samples, 3)

	s.Zero(samples[0].Level)
	s.InDelta(s.standardPeak, samples[1].Level, 0.0001)
	s.Zero(samples[2].Level)

	expectedZero := s.baseTime.Add(time.Hour).Add(TimeUntilTarget(s.standardPeak, 0))
	s.WithinDuration(expectedZero, samples[2].Time, time.Second)
}

func (s *BacTestSuite) TestTimeUntilTargetAlreadyBelow() {
	s.Zero(TimeUntilTarget(0.05, 0.05))
	s.Zero(TimeUntilTarget(0.02, 0.05))
	s.Zero(TimeUntilTarget(0, 0))
}

func (s *BacTestSuite) TestTimeUntilTargetTwoHours() {
	got := TimeUntilTarget(0.08, 0.05)
	s.InDelta(float64(2*time.Hour), float64(got), float64(time.Millisecond))
}

func (s *BacTestSuite) TestTimeUntilTargetToZero() {
	got := TimeUntilTarget(0.045, 0)
	s.InDelta(float64(3*time.Hour), float64(got), float64(time.Millisecond))
}

func (s *BacTestSuite) TestDistributionRatio() {
	s.Equal(0.68, DistributionRatio(models.SexMale))
	s.Equal(0.55, DistributionRatio(models.SexFemale))

	// Unknown values fall back to the male ratio.
	s.Equal(0.68, DistributionRatio(models.Sex("other")))
}
