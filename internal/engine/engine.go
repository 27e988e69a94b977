// Package engine implements the pizza and beverage recommendation pipeline:
// guests are clustered by compatibility, each cluster gets toppings (or a
// half-and-half split when preferences conflict), sizes are assigned,
// identical pizzas are merged, and default pizzas cover expected guests who
// never responded. For multi-hour events the wave scheduler runs the whole
// pipeline once per delivery wave.
//
// The engine is a pure, deterministic computation over in-memory values. It
// never returns an error: unknown ids are filtered silently and lookups that
// miss degrade to safe defaults.
package engine

import (
	"math"
	"time"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// sanitizeGuests drops unknown topping and beverage ids from guest
// preferences and applies the host's topping allow-list when one is set.
// Input order is preserved; it doubles as the deterministic tie-break.
func sanitizeGuests(guests []models.Guest, allowedToppings []string) []models.Guest {
	allowed := stringSet(allowedToppings)
	keepTopping := func(id string) bool {
		if _, ok := catalog.ToppingByID(id); !ok {
			return false
		}
		if len(allowed) > 0 && !allowed[id] {
			return false
		}
		return true
	}
	keepBeverage := func(id string) bool {
		_, ok := catalog.BeverageByID(id)
		return ok
	}

	out := make([]models.Guest, len(guests))
	for i, g := range guests {
		clean := g
		clean.LikedToppings = filterIDs(g.LikedToppings, keepTopping)
		clean.DislikedToppings = filterIDs(g.DislikedToppings, keepTopping)
		clean.LikedBeverages = filterIDs(g.LikedBeverages, keepBeverage)
		clean.DislikedBeverages = filterIDs(g.DislikedBeverages, keepBeverage)
		out[i] = clean
	}
	return out
}

func filterIDs(ids []string, keep func(string) bool) []string {
	var out []string
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}

// buildClusterRecommendation turns one guest cluster into a pizza line item,
// splitting it half-and-half when the conflict evaluation says so.
func buildClusterRecommendation(cluster []models.Guest, style models.PizzaStyle) models.PizzaRecommendation {
	rec := models.PizzaRecommendation{
		GuestCount:          len(cluster),
		Guests:              cluster,
		DietaryRestrictions: restrictionUnion(cluster),
		Size:                AllocateSize(len(cluster), style),
		Style:               style.ID,
		Quantity:            1,
	}

	if first, second, ok := EvaluateHalfAndHalf(cluster); ok {
		rec.IsHalfAndHalf = true
		rec.FirstHalf = &first
		rec.SecondHalf = &second
		rec.Toppings = combinedHalfToppings(first, second)
		return rec
	}

	rec.Toppings = SelectToppings(cluster)
	return rec
}

// Recommend runs the full single-order pipeline: group, top, size, merge,
// then append default pizzas for the shortfall between expectedGuests and
// the responded guest list. A non-positive expectedGuests means no override
// and no shortfall.
func Recommend(guests []models.Guest, styleID string, expectedGuests int, allowedToppings []string) []models.PizzaRecommendation {
	style := catalog.StyleByID(styleID)
	clean := sanitizeGuests(guests, allowedToppings)

	var recs []models.PizzaRecommendation
	for _, cluster := range GroupCompatibleGuests(clean, style) {
		recs = append(recs, buildClusterRecommendation(cluster, style))
	}
	recs = AggregatePizzas(recs)

	shortfall := expectedGuests - len(clean)
	defaults := AllocateForNonRespondents(shortfall, style)
	for _, d := range defaults {
		d.ID = len(recs) + 1
		recs = append(recs, d)
	}
	return recs
}

// apportionRespondents splits the ordered respondent list across waves in
// proportion to each wave's guest allocation, pushing the rounding remainder
// onto the last wave the same way the allocations themselves do.
func apportionRespondents(guests []models.Guest, waves []models.Wave) [][]models.Guest {
	slices := make([][]models.Guest, len(waves))
	if len(waves) == 0 {
		return slices
	}

	total := 0
	for _, w := range waves {
		total += w.GuestAllocation
	}
	if total <= 0 {
		for i := range slices {
			slices[i] = nil
		}
		slices[len(slices)-1] = guests
		return slices
	}

	counts := make([]int, len(waves))
	assigned := 0
	for i, w := range waves {
		counts[i] = int(math.Round(float64(w.GuestAllocation) / float64(total) * float64(len(guests))))
		assigned += counts[i]
	}
	counts[len(counts)-1] += len(guests) - assigned

	cursor := 0
	for i, n := range counts {
		if n < 0 {
			n = 0
		}
		if cursor+n > len(guests) {
			n = len(guests) - cursor
		}
		slices[i] = guests[cursor : cursor+n]
		cursor += n
	}
	// Anything left over after clamping rides with the last wave.
	if cursor < len(guests) {
		last := len(slices) - 1
		merged := make([]models.Guest, 0, len(slices[last])+len(guests)-cursor)
		merged = append(merged, slices[last]...)
		merged = append(merged, guests[cursor:]...)
		slices[last] = merged
	}
	return slices
}

// RecommendWaves schedules delivery waves for a multi-hour event and runs the
// pizza and beverage pipelines once per wave, using each wave's guest
// allocation as that wave's expected count.
func RecommendWaves(guests []models.Guest, styleID string, start time.Time, durationHours float64, expectedGuests int, allowedToppings []string) []models.WaveRecommendation {
	totalGuests := len(guests)
	if expectedGuests > totalGuests {
		totalGuests = expectedGuests
	}

	clean := sanitizeGuests(guests, allowedToppings)
	waves := ScheduleWaves(start, durationHours, totalGuests)
	perWave := apportionRespondents(clean, waves)

	out := make([]models.WaveRecommendation, len(waves))
	for i, wave := range waves {
		pizzas := Recommend(perWave[i], styleID, wave.GuestAllocation, allowedToppings)
		beverages := RecommendBeverages(perWave[i], wave.GuestAllocation)
		out[i] = models.WaveRecommendation{
			Wave:           wave,
			Pizzas:         pizzas,
			Beverages:      beverages,
			TotalPizzas:    totalQuantity(pizzas),
			TotalBeverages: totalBeverageQuantity(beverages),
		}
	}
	return out
}

func totalQuantity(recs []models.PizzaRecommendation) int {
	total := 0
	for _, r := range recs {
		total += r.Quantity
	}
	return total
}

func totalBeverageQuantity(recs []models.BeverageRecommendation) int {
	total := 0
	for _, r := range recs {
		total += r.Quantity
	}
	return total
}
