package models

import "time"

// Wave is one scheduled delivery batch of a multi-hour event
type Wave struct {
	ID              int       `json:"id"`
	ArrivalTime     time.Time `json:"arrival_time"`
	GuestAllocation int       `json:"guest_allocation"`
	Weight          float64   `json:"weight"`
	Label           string    `json:"label"`
}

// WaveRecommendation bundles one wave with its recommended order
type WaveRecommendation struct {
	Wave           Wave                     `json:"wave"`
	Pizzas         []PizzaRecommendation    `json:"pizzas"`
	Beverages      []BeverageRecommendation `json:"beverages"`
	TotalPizzas    int                      `json:"total_pizzas"`
	TotalBeverages int                      `json:"total_beverages"`
}
