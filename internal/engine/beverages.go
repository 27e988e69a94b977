package engine

import (
	"math"
	"sort"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

const (
	// guestsPerContainer models how many guests one drink container covers
	guestsPerContainer   = 4
	maxBeveragesPerGroup = 3
)

var excludedBeverages = catalog.ExcludedBeverages()

// SelectBeverages mirrors SelectToppings on the drink side: tally liked
// beverages across the group, drop anything a member dislikes or a member's
// restrictions exclude, keep the most popular three.
func SelectBeverages(group []models.Guest) []string {
	counts := map[string]int{}
	var seen []string
	dislikedByAny := map[string]bool{}

	for _, g := range group {
		for _, id := range g.LikedBeverages {
			if counts[id] == 0 {
				seen = append(seen, id)
			}
			counts[id]++
		}
		for _, id := range g.DislikedBeverages {
			dislikedByAny[id] = true
		}
	}

	excluded := map[string]bool{}
	for _, r := range restrictionUnion(group) {
		for id := range excludedBeverages[r] {
			excluded[id] = true
		}
	}

	candidates := seen[:0]
	for _, id := range seen {
		if dislikedByAny[id] || excluded[id] {
			continue
		}
		candidates = append(candidates, id)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return counts[candidates[i]] > counts[candidates[j]]
	})

	if len(candidates) > maxBeveragesPerGroup {
		candidates = candidates[:maxBeveragesPerGroup]
	}
	return candidates
}

// RecommendBeverages runs the drink pipeline: group guests the same way the
// pizza side does, pick beverages per group, and cover any expected-guest
// shortfall with an assorted default entry.
func RecommendBeverages(guests []models.Guest, expectedGuests int) []models.BeverageRecommendation {
	groups := groupByRestriction(guests, guestsPerContainer, beverageScore)

	var out []models.BeverageRecommendation
	for _, group := range groups {
		out = append(out, models.BeverageRecommendation{
			Beverages:  SelectBeverages(group),
			GuestCount: len(group),
			Guests:     group,
			Quantity:   1,
		})
	}

	if shortfall := expectedGuests - len(guests); shortfall > 0 {
		out = append(out, models.BeverageRecommendation{
			Beverages:           []string{"cola", "still-water"},
			GuestCount:          shortfall,
			Guests:              []models.Guest{},
			Quantity:            int(math.Ceil(float64(shortfall) / guestsPerContainer)),
			IsForNonRespondents: true,
			Label:               "Assorted Drinks",
		})
	}

	for i := range out {
		out[i].ID = i + 1
	}
	return out
}
