package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/engine"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
	"github.com/google/uuid"
)

// OrderRequest carries everything a collaborator supplies for one order:
// the RSVP'd guest list, the party's pizza style, an optional expected guest
// count override and an optional host-curated topping allow-list.
type OrderRequest struct {
	Guests          []models.Guest `json:"guests"`
	Style           string         `json:"style"`
	ExpectedGuests  int            `json:"expected_guests"`
	AllowedToppings []string       `json:"allowed_toppings,omitempty"`
}

// WaveOrderRequest extends OrderRequest with the event timing the wave
// scheduler needs.
type WaveOrderRequest struct {
	OrderRequest
	StartTime     time.Time `json:"start_time"`
	DurationHours float64   `json:"duration_hours"`
}

// OrderRecommendation is the flat single-order response
type OrderRecommendation struct {
	RequestID      string                          `json:"request_id"`
	Pizzas         []models.PizzaRecommendation    `json:"pizzas"`
	Beverages      []models.BeverageRecommendation `json:"beverages"`
	TotalPizzas    int                             `json:"total_pizzas"`
	TotalBeverages int                             `json:"total_beverages"`
}

// WaveOrderRecommendation is the per-wave response for multi-hour events
type WaveOrderRecommendation struct {
	RequestID string                      `json:"request_id"`
	Waves     []models.WaveRecommendation `json:"waves"`
}

// RecommendationService exposes the recommendation engine to collaborators
type RecommendationService interface {
	// Recommend generates the single-order pizza and beverage recommendation
	Recommend(req OrderRequest) OrderRecommendation
	// RecommendWaves schedules delivery waves and generates one
	// recommendation set per wave
	RecommendWaves(req WaveOrderRequest) WaveOrderRecommendation
	// ExportOrder renders the recommendation as a plain-text order sheet
	// suitable for reading to a pizzeria
	ExportOrder(req OrderRequest) string
}

// recommendationService is the implementation of RecommendationService
type recommendationService struct {
	defaultStyle         string
	defaultDurationHours float64
}

// NewRecommendationService creates a new instance of RecommendationService.
// The defaults apply when a request leaves style or duration unset.
func NewRecommendationService(defaultStyle string, defaultDurationHours float64) RecommendationService {
	return &recommendationService{
		defaultStyle:         defaultStyle,
		defaultDurationHours: defaultDurationHours,
	}
}

func (s *recommendationService) styleOrDefault(style string) string {
	if style == "" {
		return s.defaultStyle
	}
	return style
}

func (s *recommendationService) Recommend(req OrderRequest) OrderRecommendation {
	req.Style = s.styleOrDefault(req.Style)
	pizzas := engine.Recommend(req.Guests, req.Style, req.ExpectedGuests, req.AllowedToppings)
	beverages := engine.RecommendBeverages(req.Guests, req.ExpectedGuests)

	rec := OrderRecommendation{
		RequestID: uuid.NewString(),
		Pizzas:    pizzas,
		Beverages: beverages,
	}
	for _, p := range pizzas {
		rec.TotalPizzas += p.Quantity
	}
	for _, b := range beverages {
		rec.TotalBeverages += b.Quantity
	}
	return rec
}

func (s *recommendationService) RecommendWaves(req WaveOrderRequest) WaveOrderRecommendation {
	req.Style = s.styleOrDefault(req.Style)
	if req.DurationHours <= 0 {
		req.DurationHours = s.defaultDurationHours
	}
	return WaveOrderRecommendation{
		RequestID: uuid.NewString(),
		Waves: engine.RecommendWaves(req.Guests, req.Style, req.StartTime,
			req.DurationHours, req.ExpectedGuests, req.AllowedToppings),
	}
}

func (s *recommendationService) ExportOrder(req OrderRequest) string {
	rec := s.Recommend(req)
	style := catalog.StyleByID(req.Style)

	var b strings.Builder
	fmt.Fprintf(&b, "Pizza order (%s style)\n", style.Name)
	fmt.Fprintf(&b, "%d pizzas, %d drinks\n\n", rec.TotalPizzas, rec.TotalBeverages)

	for _, p := range rec.Pizzas {
		fmt.Fprintf(&b, "%dx %s %s", p.Quantity, p.Size.Name, describePizza(p))
		if len(p.DietaryRestrictions) > 0 {
			fmt.Fprintf(&b, " (%s)", joinRestrictions(p.DietaryRestrictions))
		}
		b.WriteString("\n")
	}

	if len(rec.Beverages) > 0 {
		b.WriteString("\nDrinks:\n")
		for _, d := range rec.Beverages {
			fmt.Fprintf(&b, "%dx %s\n", d.Quantity, describeBeverages(d))
		}
	}
	return b.String()
}

// describePizza renders a pizza line the way you'd read it over the phone
func describePizza(p models.PizzaRecommendation) string {
	if p.IsHalfAndHalf && p.FirstHalf != nil && p.SecondHalf != nil {
		return fmt.Sprintf("half-and-half: %s / %s",
			toppingNames(p.FirstHalf.Toppings), toppingNames(p.SecondHalf.Toppings))
	}
	if len(p.Toppings) == 0 {
		if p.Label != "" {
			return p.Label
		}
		return "cheese"
	}
	if p.Label != "" {
		return p.Label
	}
	return toppingNames(p.Toppings)
}

func toppingNames(ids []string) string {
	if len(ids) == 0 {
		return "cheese"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		if t, ok := catalog.ToppingByID(id); ok {
			names[i] = t.Name
		} else {
			names[i] = id
		}
	}
	return strings.Join(names, ", ")
}

func describeBeverages(d models.BeverageRecommendation) string {
	if d.Label != "" {
		return d.Label
	}
	if len(d.Beverages) == 0 {
		return "no preference"
	}
	names := make([]string, len(d.Beverages))
	for i, id := range d.Beverages {
		if bev, ok := catalog.BeverageByID(id); ok {
			names[i] = bev.Name
		} else {
			names[i] = id
		}
	}
	return strings.Join(names, ", ")
}

func joinRestrictions(restrictions []models.DietaryRestriction) string {
	parts := make([]string, len(restrictions))
	for i, r := range restrictions {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
