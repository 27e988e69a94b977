package engine

import (
	"sort"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// maxToppingsPerPizza caps how many toppings a uniform pizza carries
const maxToppingsPerPizza = 3

var excludedToppings = catalog.ExcludedToppings()

// excludedForGuests unions the excluded-topping sets for every restriction
// held by any guest in the set.
func excludedForGuests(guests []models.Guest) map[string]bool {
	excluded := map[string]bool{}
	for _, r := range restrictionUnion(guests) {
		for id := range excludedToppings[r] {
			excluded[id] = true
		}
	}
	return excluded
}

// SelectToppings picks up to three toppings for a cluster: tally liked
// toppings across members, drop anything any member dislikes or any member's
// restrictions exclude, then take the most popular survivors. Popularity ties
// break toward the topping first mentioned in guest input order, so the
// result is stable across calls. No backfill happens when fewer than three
// toppings survive.
func SelectToppings(cluster []models.Guest) []string {
	counts := map[string]int{}
	var seen []string
	dislikedByAny := map[string]bool{}

	for _, g := range cluster {
		for _, id := range g.LikedToppings {
			if counts[id] == 0 {
				seen = append(seen, id)
			}
			counts[id]++
		}
		for _, id := range g.DislikedToppings {
			dislikedByAny[id] = true
		}
	}

	excluded := excludedForGuests(cluster)
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

	if len(candidates) > maxToppingsPerPizza {
		candidates = candidates[:maxToppingsPerPizza]
	}
	return candidates
}
