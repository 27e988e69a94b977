// Package catalog holds the fixed topping, beverage, style and size tables
// the recommendation engine works against. Guest preference ids that do not
// appear here are silently ignored by the engine.
package catalog

import (
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// Toppings is the fixed topping catalog, in menu order
var Toppings = []models.Topping{
	{ID: "pepperoni", Name: "Pepperoni", Category: models.CategoryMeat},
	{ID: "sausage", Name: "Italian Sausage", Category: models.CategoryMeat},
	{ID: "bacon", Name: "Bacon", Category: models.CategoryMeat},
	{ID: "ham", Name: "Ham", Category: models.CategoryMeat},
	{ID: "chicken", Name: "Grilled Chicken", Category: models.CategoryMeat},
	{ID: "mushrooms", Name: "Mushrooms", Category: models.CategoryVegetable},
	{ID: "onions", Name: "Red Onions", Category: models.CategoryVegetable},
	{ID: "bell-peppers", Name: "Bell Peppers", Category: models.CategoryVegetable},
	{ID: "olives", Name: "Black Olives", Category: models.CategoryVegetable},
	{ID: "spinach", Name: "Spinach", Category: models.CategoryVegetable},
	{ID: "jalapenos", Name: "Jalapeños", Category: models.CategoryVegetable},
	{ID: "tomatoes", Name: "Cherry Tomatoes", Category: models.CategoryVegetable},
	{ID: "basil", Name: "Fresh Basil", Category: models.CategoryVegetable},
	{ID: "extra-cheese", Name: "Extra Mozzarella", Category: models.CategoryCheese},
	{ID: "feta", Name: "Feta", Category: models.CategoryCheese},
	{ID: "goat-cheese", Name: "Goat Cheese", Category: models.CategoryCheese},
	{ID: "pineapple", Name: "Pineapple", Category: models.CategoryFruit},
}

// Beverages is the fixed beverage catalog, in menu order
var Beverages = []models.Beverage{
	{ID: "cola", Name: "Cola", Category: models.BeverageSoda},
	{ID: "lemon-lime", Name: "Lemon-Lime Soda", Category: models.BeverageSoda},
	{ID: "root-beer", Name: "Root Beer", Category: models.BeverageSoda},
	{ID: "orange-juice", Name: "Orange Juice", Category: models.BeverageJuice},
	{ID: "apple-juice", Name: "Apple Juice", Category: models.BeverageJuice},
	{ID: "lemonade", Name: "Lemonade", Category: models.BeverageJuice},
	{ID: "sparkling-water", Name: "Sparkling Water", Category: models.BeverageWater},
	{ID: "still-water", Name: "Still Water", Category: models.BeverageWater},
	{ID: "milk", Name: "Milk", Category: models.BeverageDairy},
	{ID: "chocolate-milk", Name: "Chocolate Milk", Category: models.BeverageDairy},
}

// Styles is the fixed pizza style catalog
var Styles = []models.PizzaStyle{
	{ID: "neapolitan", Name: "Neapolitan", MaxGuestsPerPizza: 2},
	{ID: "new-york", Name: "New York", MaxGuestsPerPizza: 5},
	{ID: "detroit", Name: "Detroit", MaxGuestsPerPizza: 5},
}

// Sizes is the fixed size table, ascending by serving capacity
var Sizes = []models.PizzaSize{
	{Name: "personal", Diameter: 10, Servings: 2},
	{Name: "medium", Diameter: 12, Servings: 3},
	{Name: "large", Diameter: 14, Servings: 5},
	{Name: "extra-large", Diameter: 16, Servings: 8},
}

// StyleByID looks up a style by id; unknown ids fall back to New York rules
func StyleByID(id string) models.PizzaStyle {
	for _, s := range Styles {
		if s.ID == id {
			return s
		}
	}
	return Styles[1]
}

// ToppingByID looks up a topping by id
func ToppingByID(id string) (models.Topping, bool) {
	for _, t := range Toppings {
		if t.ID == id {
			return t, true
		}
	}
	return models.Topping{}, false
}

// BeverageByID looks up a beverage by id
func BeverageByID(id string) (models.Beverage, bool) {
	for _, b := range Beverages {
		if b.ID == id {
			return b, true
		}
	}
	return models.Beverage{}, false
}

// ExcludedToppings returns the fixed restriction to excluded-topping-id table.
// Gluten-free excludes nothing at the topping level; crusts handle it.
func ExcludedToppings() map[models.DietaryRestriction]map[string]bool {
	table := map[models.DietaryRestriction]map[string]bool{
		models.Vegetarian: {},
		models.Vegan:      {},
		models.DairyFree:  {},
		models.GlutenFree: {},
		models.NoDiet:     {},
	}
	for _, t := range Toppings {
		switch t.Category {
		case models.CategoryMeat:
			table[models.Vegetarian][t.ID] = true
			table[models.Vegan][t.ID] = true
		case models.CategoryCheese:
			table[models.Vegan][t.ID] = true
			table[models.DairyFree][t.ID] = true
		}
	}
	return table
}

// ExcludedBeverages returns the restriction to excluded-beverage-id table
func ExcludedBeverages() map[models.DietaryRestriction]map[string]bool {
	table := map[models.DietaryRestriction]map[string]bool{
		models.Vegetarian: {},
		models.Vegan:      {},
		models.DairyFree:  {},
		models.GlutenFree: {},
		models.NoDiet:     {},
	}
	for _, b := range Beverages {
		if b.Category == models.BeverageDairy {
			table[models.Vegan][b.ID] = true
			table[models.DairyFree][b.ID] = true
		}
	}
	return table
}
