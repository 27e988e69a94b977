package models

// ToppingCategory classifies a topping for dietary filtering
type ToppingCategory string

const (
	CategoryMeat      ToppingCategory = "meat"
	CategoryVegetable ToppingCategory = "vegetable"
	CategoryCheese    ToppingCategory = "cheese"
	CategoryFruit     ToppingCategory = "fruit"
)

// Topping represents a pizza topping from the fixed catalog
type Topping struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ToppingCategory `json:"category"`
}

// PizzaStyle governs how many guests can share one pizza
type PizzaStyle struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MaxGuestsPerPizza int    `json:"max_guests_per_pizza"`
}

// PizzaSize is a physical size tier with a modeled serving capacity
type PizzaSize struct {
	Name     string `json:"name"`
	Diameter int    `json:"diameter"`
	Servings int    `json:"servings"`
}

// PizzaHalf is one independently-topped half of a half-and-half pizza
type PizzaHalf struct {
	Toppings            []string             `json:"toppings"`
	Guests              []Guest              `json:"guests"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions,omitempty"`
}

// PizzaRecommendation is one line item of a generated pizza order
type PizzaRecommendation struct {
	ID                  int                  `json:"id"`
	Toppings            []string             `json:"toppings"`
	GuestCount          int                  `json:"guest_count"`
	Guests              []Guest              `json:"guests,omitempty"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions,omitempty"`
	Size                PizzaSize            `json:"size"`
	Style               string               `json:"style"`
	Quantity            int                  `json:"quantity"`
	IsHalfAndHalf       bool                 `json:"is_half_and_half,omitempty"`
	FirstHalf           *PizzaHalf           `json:"first_half,omitempty"`
	SecondHalf          *PizzaHalf           `json:"second_half,omitempty"`
	IsForNonRespondents bool                 `json:"is_for_non_respondents,omitempty"`
	Label               string               `json:"label,omitempty"`
}
