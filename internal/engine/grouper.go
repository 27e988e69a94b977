package engine

import (
	"sort"
	"strings"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// knownRestrictions guards against unknown restriction values coming in
// from collaborators; anything else is treated as absent.
var knownRestrictions = map[models.DietaryRestriction]bool{
	models.Vegetarian: true,
	models.Vegan:      true,
	models.GlutenFree: true,
	models.DairyFree:  true,
	models.NoDiet:     true,
}

// restrictionKey canonicalizes a guest's dietary restriction set.
// Guests with distinct restriction combinations never share a pizza,
// so the key is an exact match on the sorted set. A missing or
// all-unknown list is equivalent to "none".
func restrictionKey(g models.Guest) string {
	set := normalizedRestrictions(g)
	if len(set) == 0 {
		return string(models.NoDiet)
	}
	parts := make([]string, len(set))
	for i, r := range set {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

// normalizedRestrictions returns the guest's known, real restrictions,
// sorted and deduplicated. "none" is dropped so it matches an empty list.
func normalizedRestrictions(g models.Guest) []models.DietaryRestriction {
	seen := map[models.DietaryRestriction]bool{}
	var out []models.DietaryRestriction
	for _, r := range g.DietaryRestrictions {
		if !knownRestrictions[r] || r == models.NoDiet || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// restrictionUnion returns the sorted union of restrictions across a guest set
func restrictionUnion(guests []models.Guest) []models.DietaryRestriction {
	seen := map[models.DietaryRestriction]bool{}
	var out []models.DietaryRestriction
	for _, g := range guests {
		for _, r := range normalizedRestrictions(g) {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func stringSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// compatibilityScore measures how well two guests share a pizza:
// two points per shared liked topping, minus one per like/dislike conflict
// in either direction.
func compatibilityScore(a, b models.Guest) int {
	bLikes := stringSet(b.LikedToppings)
	bDislikes := stringSet(b.DislikedToppings)
	aDislikes := stringSet(a.DislikedToppings)

	score := 0
	for _, t := range a.LikedToppings {
		if bLikes[t] {
			score += 2
		}
		if bDislikes[t] {
			score--
		}
	}
	for _, t := range b.LikedToppings {
		if aDislikes[t] {
			score--
		}
	}
	return score
}

// beverageScore is the drink-side analogue of compatibilityScore
func beverageScore(a, b models.Guest) int {
	bLikes := stringSet(b.LikedBeverages)
	bDislikes := stringSet(b.DislikedBeverages)
	aDislikes := stringSet(a.DislikedBeverages)

	score := 0
	for _, d := range a.LikedBeverages {
		if bLikes[d] {
			score += 2
		}
		if bDislikes[d] {
			score--
		}
	}
	for _, d := range b.LikedBeverages {
		if aDislikes[d] {
			score--
		}
	}
	return score
}

// groupByRestriction buckets guests by exact restriction-set key, then packs
// any oversized bucket greedily using the given pairwise score. Bucket order
// follows first appearance in the input; within a bucket the greedy packer
// seeds with the earliest unassigned guest and breaks score ties toward
// earlier input positions, so grouping is deterministic for a fixed input
// order. The pairwise step is O(n²) per bucket, which is fine at party scale.
func groupByRestriction(guests []models.Guest, capacity int, score func(a, b models.Guest) int) [][]models.Guest {
	if len(guests) == 0 || capacity <= 0 {
		return nil
	}

	buckets := map[string][]models.Guest{}
	var order []string
	for _, g := range guests {
		key := restrictionKey(g)
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], g)
	}

	var clusters [][]models.Guest
	for _, key := range order {
		bucket := buckets[key]
		if len(bucket) <= capacity {
			clusters = append(clusters, bucket)
			continue
		}
		clusters = append(clusters, packBucket(bucket, capacity, score)...)
	}
	return clusters
}

// packBucket greedily clusters an oversized bucket: seed with the earliest
// unassigned guest, then repeatedly pull in the unassigned guest with the
// highest summed compatibility to the current members.
func packBucket(bucket []models.Guest, capacity int, score func(a, b models.Guest) int) [][]models.Guest {
	unassigned := make([]models.Guest, len(bucket))
	copy(unassigned, bucket)

	var clusters [][]models.Guest
	for len(unassigned) > 0 {
		cluster := []models.Guest{unassigned[0]}
		unassigned = unassigned[1:]

		for len(cluster) < capacity && len(unassigned) > 0 {
			bestIdx := 0
			bestScore := summedScore(unassigned[0], cluster, score)
			for i := 1; i < len(unassigned); i++ {
				if s := summedScore(unassigned[i], cluster, score); s > bestScore {
					bestIdx, bestScore = i, s
				}
			}
			cluster = append(cluster, unassigned[bestIdx])
			unassigned = append(unassigned[:bestIdx], unassigned[bestIdx+1:]...)
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

func summedScore(candidate models.Guest, cluster []models.Guest, score func(a, b models.Guest) int) int {
	total := 0
	for _, member := range cluster {
		total += score(candidate, member)
	}
	return total
}

// GroupCompatibleGuests partitions guests into pizza-sized clusters for the
// given style. Guests with different dietary restriction combinations never
// end up on the same pizza.
func GroupCompatibleGuests(guests []models.Guest, style models.PizzaStyle) [][]models.Guest {
	return groupByRestriction(guests, style.MaxGuestsPerPizza, compatibilityScore)
}
