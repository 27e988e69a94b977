package engine

import (
	"math"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// defaultProfile is a fixed pizza profile used to cover guests who never
// submitted preferences.
type defaultProfile struct {
	label        string
	toppings     []string
	restrictions []models.DietaryRestriction
}

var (
	veganDefault      = defaultProfile{label: "Vegan", toppings: []string{"mushrooms", "onions"}, restrictions: []models.DietaryRestriction{models.Vegan}}
	glutenFreeDefault = defaultProfile{label: "Gluten-Free", toppings: []string{"extra-cheese"}, restrictions: []models.DietaryRestriction{models.GlutenFree}}
	cheeseDefault     = defaultProfile{label: "Cheese", toppings: []string{}}
	pepperoniDefault  = defaultProfile{label: "Pepperoni", toppings: []string{"pepperoni"}}
	mushroomDefault   = defaultProfile{label: "Mushroom", toppings: []string{"mushrooms"}}
	veggieDefault     = defaultProfile{label: "Veggie", toppings: []string{"mushrooms", "onions", "bell-peppers"}}
)

// servingsPerDefaultPizza models how many no-preference guests one default
// pizza feeds: Neapolitan pies are small and personal, every other style
// feeds a full cluster.
func servingsPerDefaultPizza(style models.PizzaStyle) float64 {
	if style.ID == "neapolitan" {
		return 1.5
	}
	return float64(style.MaxGuestsPerPizza)
}

// AllocateForNonRespondents synthesizes default pizzas covering the gap
// between expected and responded guest counts. A tenth of the shortfall is
// reserved for vegan and another tenth for gluten-free guests, each rounded
// up to whole pizzas; the rest splits 40% cheese, 40% pepperoni, 10%
// mushroom, with the veggie bucket absorbing the rounding remainder so the
// regular buckets sum exactly.
func AllocateForNonRespondents(shortfall int, style models.PizzaStyle) []models.PizzaRecommendation {
	if shortfall <= 0 {
		return nil
	}

	perPizza := servingsPerDefaultPizza(style)
	pizzasNeeded := int(math.Ceil(float64(shortfall) / perPizza))

	specialServings := int(math.Ceil(float64(shortfall) / 10))
	veganPizzas := int(math.Ceil(float64(specialServings) / perPizza))
	glutenFreePizzas := int(math.Ceil(float64(specialServings) / perPizza))

	regularPizzas := pizzasNeeded - veganPizzas - glutenFreePizzas
	if regularPizzas < 0 {
		regularPizzas = 0
	}

	cheesePizzas := int(math.Round(0.4 * float64(regularPizzas)))
	pepperoniPizzas := int(math.Round(0.4 * float64(regularPizzas)))
	mushroomPizzas := int(math.Round(0.1 * float64(regularPizzas)))
	veggiePizzas := regularPizzas - cheesePizzas - pepperoniPizzas - mushroomPizzas
	if veggiePizzas < 0 {
		veggiePizzas = 0
	}

	size := AllocateSize(style.MaxGuestsPerPizza, style)
	buckets := []struct {
		profile  defaultProfile
		quantity int
	}{
		{veganDefault, veganPizzas},
		{glutenFreeDefault, glutenFreePizzas},
		{cheeseDefault, cheesePizzas},
		{pepperoniDefault, pepperoniPizzas},
		{mushroomDefault, mushroomPizzas},
		{veggieDefault, veggiePizzas},
	}

	var out []models.PizzaRecommendation
	for _, b := range buckets {
		if b.quantity <= 0 {
			continue
		}
		out = append(out, models.PizzaRecommendation{
			Toppings:            b.profile.toppings,
			GuestCount:          int(math.Round(float64(b.quantity) * perPizza)),
			Guests:              []models.Guest{},
			DietaryRestrictions: b.profile.restrictions,
			Size:                size,
			Style:               style.ID,
			Quantity:            b.quantity,
			IsForNonRespondents: true,
			Label:               b.profile.label,
		})
	}
	return out
}
