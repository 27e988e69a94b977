package engine

import (
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// likeDislikeTally counts, per topping, how many cluster members like and
// dislike it.
func likeDislikeTally(cluster []models.Guest) (likes, dislikes map[string]int) {
	likes = map[string]int{}
	dislikes = map[string]int{}
	for _, g := range cluster {
		for _, id := range g.LikedToppings {
			likes[id]++
		}
		for _, id := range g.DislikedToppings {
			dislikes[id]++
		}
	}
	return likes, dislikes
}

// conflictScore counts liker/disliker pairs across the cluster: for each
// topping, every member who likes it conflicts with every member who
// dislikes it.
func conflictScore(cluster []models.Guest) int {
	likes, dislikes := likeDislikeTally(cluster)
	total := 0
	for id, l := range likes {
		total += l * dislikes[id]
	}
	return total
}

// satisfaction scores a topping set against a guest set: +1 per member per
// present liked topping, -2 per member per present disliked topping.
func satisfaction(guests []models.Guest, toppings []string) int {
	present := stringSet(toppings)
	score := 0
	for _, g := range guests {
		for _, id := range g.LikedToppings {
			if present[id] {
				score++
			}
		}
		for _, id := range g.DislikedToppings {
			if present[id] {
				score -= 2
			}
		}
	}
	return score
}

// shouldEvaluateSplit reports whether a cluster is conflicted enough to be
// worth comparing against a half-and-half split. Clusters below two members
// are never split.
func shouldEvaluateSplit(cluster []models.Guest) bool {
	if len(cluster) < 2 {
		return false
	}
	threshold := (len(cluster) + 1) / 2
	return conflictScore(cluster) >= threshold
}

// bisectCluster splits a cluster in two: the single least-compatible pair
// seeds the halves, and every other guest joins whichever seed group it has
// the higher average compatibility with. Ties go to the first half, and the
// earliest pair wins when several pairs share the lowest score.
func bisectCluster(cluster []models.Guest) (first, second []models.Guest) {
	seedA, seedB := 0, 1
	worst := compatibilityScore(cluster[0], cluster[1])
	for i := 0; i < len(cluster); i++ {
		for j := i + 1; j < len(cluster); j++ {
			if s := compatibilityScore(cluster[i], cluster[j]); s < worst {
				seedA, seedB, worst = i, j, s
			}
		}
	}

	first = []models.Guest{cluster[seedA]}
	second = []models.Guest{cluster[seedB]}
	for i, g := range cluster {
		if i == seedA || i == seedB {
			continue
		}
		if meanScore(g, second) > meanScore(g, first) {
			second = append(second, g)
		} else {
			first = append(first, g)
		}
	}
	return first, second
}

func meanScore(candidate models.Guest, group []models.Guest) float64 {
	if len(group) == 0 {
		return 0
	}
	return float64(summedScore(candidate, group, compatibilityScore)) / float64(len(group))
}

// EvaluateHalfAndHalf decides whether splitting a conflicted cluster into two
// topping halves beats a single uniform pizza. The split wins when its summed
// satisfaction clears the single pizza's by more than 20%, or when the single
// pizza scores negative outright. Returns ok=false when the cluster should
// stay uniform.
func EvaluateHalfAndHalf(cluster []models.Guest) (first, second models.PizzaHalf, ok bool) {
	if !shouldEvaluateSplit(cluster) {
		return models.PizzaHalf{}, models.PizzaHalf{}, false
	}

	singleToppings := SelectToppings(cluster)
	singleSat := satisfaction(cluster, singleToppings)

	groupA, groupB := bisectCluster(cluster)
	toppingsA := SelectToppings(groupA)
	toppingsB := SelectToppings(groupB)
	splitSat := satisfaction(groupA, toppingsA) + satisfaction(groupB, toppingsB)

	if float64(splitSat) <= 1.2*float64(singleSat) && singleSat >= 0 {
		return models.PizzaHalf{}, models.PizzaHalf{}, false
	}

	first = models.PizzaHalf{
		Toppings:            toppingsA,
		Guests:              groupA,
		DietaryRestrictions: restrictionUnion(groupA),
	}
	second = models.PizzaHalf{
		Toppings:            toppingsB,
		Guests:              groupB,
		DietaryRestrictions: restrictionUnion(groupB),
	}
	return first, second, true
}

// combinedHalfToppings is the deduplicated union of both halves' toppings,
// kept for consumers that only read the flat topping list.
func combinedHalfToppings(first, second models.PizzaHalf) []string {
	seen := map[string]bool{}
	var out []string
	for _, id := range first.Toppings {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range second.Toppings {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
