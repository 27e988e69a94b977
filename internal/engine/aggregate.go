package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// aggregationKey canonicalizes a recommendation for merging: sorted topping
// ids, sorted restrictions and the size diameter. Kept as a string so the
// merge stays a single map pass, linear in pizza count.
func aggregationKey(rec models.PizzaRecommendation) string {
	toppings := make([]string, len(rec.Toppings))
	copy(toppings, rec.Toppings)
	sort.Strings(toppings)

	restrictions := make([]string, len(rec.DietaryRestrictions))
	for i, r := range rec.DietaryRestrictions {
		restrictions[i] = string(r)
	}
	sort.Strings(restrictions)

	return fmt.Sprintf("%s|%s|%d", strings.Join(toppings, ","), strings.Join(restrictions, ","), rec.Size.Diameter)
}

// AggregatePizzas merges identical ordinary recommendations into
// quantity-counted line items. Half-and-half and non-respondent entries pass
// through untouched since each already carries its own quantity semantics.
// Display ids are reassigned sequentially after the merge.
func AggregatePizzas(recs []models.PizzaRecommendation) []models.PizzaRecommendation {
	var out []models.PizzaRecommendation
	index := map[string]int{}

	for _, rec := range recs {
		if rec.IsHalfAndHalf || rec.IsForNonRespondents {
			out = append(out, rec)
			continue
		}
		key := aggregationKey(rec)
		if i, ok := index[key]; ok {
			out[i].Quantity += rec.Quantity
			out[i].GuestCount += rec.GuestCount
			out[i].Guests = append(out[i].Guests, rec.Guests...)
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}

	for i := range out {
		out[i].ID = i + 1
	}
	return out
}
