package engine

import (
	"testing"
	"time"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRecommendationInvariants checks the hard guarantees every real
// recommendation carries: at most three toppings, nothing a constituent
// guest dislikes, nothing their restriction union excludes.
func assertRecommendationInvariants(t *testing.T, recs []models.PizzaRecommendation) {
	t.Helper()
	excluded := catalog.ExcludedToppings()

	checkSet := func(toppings []string, guests []models.Guest, restrictions []models.DietaryRestriction) {
		for _, g := range guests {
			disliked := map[string]bool{}
			for _, id := range g.DislikedToppings {
				disliked[id] = true
			}
			for _, id := range toppings {
				assert.Falsef(t, disliked[id], "guest %s got disliked topping %s", g.ID, id)
			}
		}
		for _, r := range restrictions {
			for _, id := range toppings {
				assert.Falsef(t, excluded[r][id], "restriction %s got excluded topping %s", r, id)
			}
		}
	}

	for _, rec := range recs {
		if rec.IsForNonRespondents {
			continue
		}
		if rec.IsHalfAndHalf {
			require.NotNil(t, rec.FirstHalf)
			require.NotNil(t, rec.SecondHalf)
			for _, half := range []*models.PizzaHalf{rec.FirstHalf, rec.SecondHalf} {
				assert.LessOrEqual(t, len(half.Toppings), 3)
				checkSet(half.Toppings, half.Guests, half.DietaryRestrictions)
			}
			continue
		}
		assert.LessOrEqual(t, len(rec.Toppings), 3)
		checkSet(rec.Toppings, rec.Guests, rec.DietaryRestrictions)
	}
}

func TestRecommendEndToEnd(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni", "mushrooms"}, nil),
		guest("b", []string{"pepperoni"}, nil),
		guest("c", []string{"mushrooms", "olives"}, []string{"pepperoni"}),
		guest("v1", []string{"mushrooms", "onions"}, nil, models.Vegan),
		guest("v2", []string{"onions"}, nil, models.Vegan),
		guest("gf", []string{"extra-cheese"}, nil, models.GlutenFree),
	}

	recs := Recommend(guests, "new-york", 0, nil)
	require.NotEmpty(t, recs)
	assertRecommendationInvariants(t, recs)

	covered := 0
	for _, rec := range recs {
		covered += rec.GuestCount
	}
	assert.Equal(t, len(guests), covered)
}

func TestRecommendDeterministic(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni", "olives"}, []string{"pineapple"}),
		guest("b", []string{"pineapple"}, []string{"pepperoni"}),
		guest("c", []string{"olives"}, nil),
		guest("d", []string{"mushrooms"}, nil, models.Vegetarian),
	}

	first := Recommend(guests, "detroit", 10, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Recommend(guests, "detroit", 10, nil))
	}
}

func TestRecommendFiltersUnknownIDs(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni", "anchovies"}, []string{"no-such-topping"}),
	}

	recs := Recommend(guests, "new-york", 0, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"pepperoni"}, recs[0].Toppings)
}

func TestRecommendHonorsAllowList(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni", "mushrooms"}, nil),
	}

	recs := Recommend(guests, "new-york", 0, []string{"mushrooms"})
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"mushrooms"}, recs[0].Toppings)
}

func TestRecommendUnknownStyleFallsBack(t *testing.T) {
	guests := []models.Guest{guest("a", []string{"pepperoni"}, nil)}

	recs := Recommend(guests, "chicago-deep-dish", 0, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "new-york", recs[0].Style)
}

func TestRecommendEmptyGuestList(t *testing.T) {
	assert.Empty(t, Recommend(nil, "new-york", 0, nil))
	assert.Empty(t, Recommend(nil, "new-york", -4, nil))
}

func TestRecommendShortfallAppendsDefaults(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni"}, nil),
		guest("b", []string{"pepperoni"}, nil),
		guest("c", []string{"pepperoni"}, nil),
		guest("d", []string{"pepperoni"}, nil),
	}

	recs := Recommend(guests, "new-york", 20, nil)

	var regular, defaults int
	for _, rec := range recs {
		if rec.IsForNonRespondents {
			defaults += rec.Quantity
		} else {
			regular++
		}
	}
	assert.Equal(t, 1, regular)
	assert.Equal(t, 4, defaults) // 16-guest shortfall at 5 servings each
}

func TestRecommendHalfAndHalfPipeline(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni"}, nil),
		guest("b", []string{"pepperoni"}, nil),
		guest("c", []string{"mushrooms"}, []string{"pepperoni"}),
	}

	recs := Recommend(guests, "new-york", 0, nil)
	require.Len(t, recs, 1)
	rec := recs[0]
	require.True(t, rec.IsHalfAndHalf)
	require.NotNil(t, rec.FirstHalf)
	require.NotNil(t, rec.SecondHalf)
	assert.Equal(t, []string{"pepperoni"}, rec.FirstHalf.Toppings)
	assert.Equal(t, []string{"mushrooms"}, rec.SecondHalf.Toppings)
	assert.Equal(t, []string{"pepperoni", "mushrooms"}, rec.Toppings)
	assert.Equal(t, 3, rec.GuestCount)
}

func TestRecommendWavesAllocationsCoverAllGuests(t *testing.T) {
	var guests []models.Guest
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		guests = append(guests, guest(id, []string{"pepperoni"}, nil))
	}

	waveRecs := RecommendWaves(guests, "new-york", partyStart, 3.0, 40, nil)
	require.Len(t, waveRecs, 4)

	totalAllocation := 0
	seenGuests := 0
	for _, wr := range waveRecs {
		totalAllocation += wr.Wave.GuestAllocation
		assertRecommendationInvariants(t, wr.Pizzas)
		for _, p := range wr.Pizzas {
			if !p.IsForNonRespondents {
				seenGuests += p.GuestCount
			}
		}
		assert.Positive(t, wr.TotalPizzas)
	}
	assert.Equal(t, 40, totalAllocation)
	assert.Equal(t, len(guests), seenGuests)
}

func TestRecommendWavesShortEventSingleSet(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni"}, nil),
		drinker("b", []string{"cola"}, nil),
	}

	waveRecs := RecommendWaves(guests, "new-york", partyStart, 1.0, 0, nil)
	require.Len(t, waveRecs, 1)
	assert.Equal(t, 2, waveRecs[0].Wave.GuestAllocation)
	assert.NotEmpty(t, waveRecs[0].Pizzas)
	assert.NotEmpty(t, waveRecs[0].Beverages)
}

func TestRecommendWavesDeterministic(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni"}, nil),
		guest("b", []string{"mushrooms"}, []string{"pepperoni"}),
		guest("c", []string{"olives"}, nil, models.Vegan),
	}

	first := RecommendWaves(guests, "detroit", partyStart, 2.5, 15, nil)
	assert.Equal(t, first, RecommendWaves(guests, "detroit", partyStart, 2.5, 15, nil))
	start := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, first, RecommendWaves(guests, "detroit", start, 2.5, 15, nil))
}
