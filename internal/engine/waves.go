package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

const (
	// arrivalLead is how early the first delivery lands before the party
	arrivalLead = 5 * time.Minute
	// lastWaveCutoff keeps the final delivery clear of the party's end
	lastWaveCutoff = 45 * time.Minute
	// optimalWaveSpacing is the target gap between deliveries
	optimalWaveSpacing = 52.5 * float64(time.Minute)
	// minWaveSpacing bounds how tightly waves may be packed
	minWaveSpacing = 45 * time.Minute
	// multiWaveThresholdHours is the event length where one delivery stops
	// being enough
	multiWaveThresholdHours = 1.5
	// firstWaveWeight front-loads the opening wave's guest share
	firstWaveWeight = 1.25
)

// ScheduleWaves computes the delivery waves a party needs. Short events get a
// single wave five minutes before the start; longer events spread waves
// across the window between the start and 45 minutes before the end, spaced
// near 52.5 minutes apart, with the first wave weighted heavier and any
// rounding remainder in guest allocation pushed onto the last wave so the
// total always matches exactly.
func ScheduleWaves(start time.Time, durationHours float64, totalGuests int) []models.Wave {
	if totalGuests < 0 {
		totalGuests = 0
	}

	if durationHours < multiWaveThresholdHours {
		return []models.Wave{{
			ID:              1,
			ArrivalTime:     start.Add(-arrivalLead),
			GuestAllocation: totalGuests,
			Weight:          1.0,
			Label:           "Wave 1",
		}}
	}

	firstWaveTime := start.Add(-arrivalLead)
	lastPossibleWaveTime := start.Add(time.Duration(durationHours * float64(time.Hour))).Add(-lastWaveCutoff)
	window := lastPossibleWaveTime.Sub(firstWaveTime)

	waveCount := int(math.Round(float64(window)/optimalWaveSpacing)) + 1
	maxWaves := int(window/minWaveSpacing) + 1
	if waveCount > maxWaves {
		waveCount = maxWaves
	}
	// Also guards the spacing division below against waveCount-1 == 0.
	if waveCount < 2 {
		waveCount = 2
	}
	spacing := window / time.Duration(waveCount-1)

	weights := make([]float64, waveCount)
	weightSum := 0.0
	for i := range weights {
		weights[i] = 1.0
		if i == 0 {
			weights[i] = firstWaveWeight
		}
		weightSum += weights[i]
	}

	waves := make([]models.Wave, waveCount)
	allocated := 0
	for i := range waves {
		allocation := int(math.Round(weights[i] / weightSum * float64(totalGuests)))
		allocated += allocation
		waves[i] = models.Wave{
			ID:              i + 1,
			ArrivalTime:     firstWaveTime.Add(time.Duration(i) * spacing),
			GuestAllocation: allocation,
			Weight:          weights[i],
			Label:           fmt.Sprintf("Wave %d", i+1),
		}
	}
	waves[waveCount-1].GuestAllocation += totalGuests - allocated
	return waves
}
