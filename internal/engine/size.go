package engine

import (
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
)

// AllocateSize picks the smallest size whose serving capacity covers the
// guest count, falling back to the largest tier when nothing fits.
// Neapolitan pizzas are always personal regardless of cluster size.
func AllocateSize(guestCount int, style models.PizzaStyle) models.PizzaSize {
	sizes := catalog.Sizes
	if style.ID == "neapolitan" {
		return sizes[0]
	}
	for _, s := range sizes {
		if s.Servings >= guestCount {
			return s
		}
	}
	return sizes[len(sizes)-1]
}
