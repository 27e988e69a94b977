package models

// BeverageCategory classifies a beverage for dietary filtering
type BeverageCategory string

const (
	BeverageSoda  BeverageCategory = "soda"
	BeverageJuice BeverageCategory = "juice"
	BeverageWater BeverageCategory = "water"
	BeverageDairy BeverageCategory = "dairy"
)

// Beverage represents a drink option from the fixed catalog
type Beverage struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category BeverageCategory `json:"category"`
}

// BeverageRecommendation is one drink line item of a generated order
type BeverageRecommendation struct {
	ID                  int      `json:"id"`
	Beverages           []string `json:"beverages"`
	GuestCount          int      `json:"guest_count"`
	Guests              []Guest  `json:"guests,omitempty"`
	Quantity            int      `json:"quantity"`
	IsForNonRespondents bool     `json:"is_for_non_respondents,omitempty"`
	Label               string   `json:"label,omitempty"`
}
