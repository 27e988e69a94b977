package engine

import (
	"testing"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drinker(id string, likes, dislikes []string, restrictions ...models.DietaryRestriction) models.Guest {
	return models.Guest{
		ID:                  id,
		Name:                id,
		DietaryRestrictions: restrictions,
		LikedBeverages:      likes,
		DislikedBeverages:   dislikes,
	}
}

func TestSelectBeveragesPopularityOrder(t *testing.T) {
	group := []models.Guest{
		drinker("a", []string{"cola", "lemonade"}, nil),
		drinker("b", []string{"cola", "root-beer"}, nil),
	}

	assert.Equal(t, []string{"cola", "lemonade", "root-beer"}, SelectBeverages(group))
}

func TestSelectBeveragesDropsDislikedAndExcluded(t *testing.T) {
	group := []models.Guest{
		drinker("a", []string{"cola", "milk"}, nil, models.DairyFree),
		drinker("b", []string{"lemonade"}, []string{"cola"}),
	}

	// milk excluded by dairy-free, cola disliked by b.
	assert.Equal(t, []string{"lemonade"}, SelectBeverages(group))
}

func TestSelectBeveragesVeganExcludesDairy(t *testing.T) {
	group := []models.Guest{
		drinker("a", []string{"chocolate-milk", "orange-juice"}, nil, models.Vegan),
	}

	assert.Equal(t, []string{"orange-juice"}, SelectBeverages(group))
}

func TestRecommendBeveragesGroupsAndCounts(t *testing.T) {
	guests := []models.Guest{
		drinker("a", []string{"cola"}, nil),
		drinker("b", []string{"cola"}, nil),
		drinker("v", []string{"orange-juice"}, nil, models.Vegan),
	}

	recs := RecommendBeverages(guests, 0)
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[0].GuestCount)
	assert.Equal(t, []string{"cola"}, recs[0].Beverages)
	assert.Equal(t, []string{"orange-juice"}, recs[1].Beverages)
	for i, r := range recs {
		assert.Equal(t, i+1, r.ID)
	}
}

func TestRecommendBeveragesShortfallDefault(t *testing.T) {
	recs := RecommendBeverages(nil, 10)

	require.Len(t, recs, 1)
	def := recs[0]
	assert.True(t, def.IsForNonRespondents)
	assert.Equal(t, "Assorted Drinks", def.Label)
	assert.Equal(t, 10, def.GuestCount)
	assert.Equal(t, 3, def.Quantity) // ceil(10/4) containers
	assert.Empty(t, def.Guests)
}

func TestRecommendBeveragesNoGuestsNoShortfall(t *testing.T) {
	assert.Empty(t, RecommendBeverages(nil, 0))
}
