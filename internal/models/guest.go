package models

// DietaryRestriction is a dietary rule a guest follows
type DietaryRestriction string

// Supported dietary restrictions; unknown values are ignored by the engine
const (
	Vegetarian DietaryRestriction = "vegetarian"
	Vegan      DietaryRestriction = "vegan"
	GlutenFree DietaryRestriction = "gluten-free"
	DairyFree  DietaryRestriction = "dairy-free"
	NoDiet     DietaryRestriction = "none"
)

// Guest represents a party guest with their food and drink preferences
type Guest struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions,omitempty"`
	LikedToppings       []string             `json:"liked_toppings,omitempty"`
	DislikedToppings    []string             `json:"disliked_toppings,omitempty"`
	LikedBeverages      []string             `json:"liked_beverages,omitempty"`
	DislikedBeverages   []string             `json:"disliked_beverages,omitempty"`
}
