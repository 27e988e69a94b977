package controllers

import (
	"net/http"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// RecommendationController handles HTTP requests for order recommendations
type RecommendationController interface {
	// Recommend generates a pizza and beverage recommendation for a guest list
	Recommend(c *gin.Context)
	// RecommendWaves generates per-wave recommendations for a multi-hour event
	RecommendWaves(c *gin.Context)
	// ExportOrder renders the recommendation as a plain-text order sheet
	ExportOrder(c *gin.Context)
}

type controller struct {
	service services.RecommendationService
}

// NewRecommendationController creates a new instance of RecommendationController
func NewRecommendationController(service services.RecommendationService) *controller {
	return &controller{service: service}
}

// Recommend godoc
// @Summary Generate an order recommendation
// @Description Partition guests into pizza groups, pick toppings honoring dietary restrictions, and cover non-respondents with default pizzas
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body services.OrderRequest true "Guest list and order settings"
// @Success 200 {object} services.OrderRecommendation
// @Failure 400 {object} models.APIError
// @Router /api/v1/recommendations [post]
func (c *controller) Recommend(ctx *gin.Context) {
	var req services.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidGuestList, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, c.service.Recommend(req))
}

// RecommendWaves godoc
// @Summary Generate per-wave order recommendations
// @Description Schedule delivery waves across a multi-hour event and generate one recommendation set per wave
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body services.WaveOrderRequest true "Guest list, order settings and event timing"
// @Success 200 {object} services.WaveOrderRecommendation
// @Failure 400 {object} models.APIError
// @Router /api/v1/recommendations/waves [post]
func (c *controller) RecommendWaves(ctx *gin.Context) {
	var req services.WaveOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidSchedule, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, c.service.RecommendWaves(req))
}

// ExportOrder godoc
// @Summary Export the order as plain text
// @Description Render the recommendation as a text order sheet suitable for reading to a pizzeria
// @Tags recommendations
// @Accept json
// @Produce plain
// @Param request body services.OrderRequest true "Guest list and order settings"
// @Success 200 {string} string
// @Failure 400 {object} models.APIError
// @Router /api/v1/recommendations/export [post]
func (c *controller) ExportOrder(ctx *gin.Context) {
	var req services.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidGuestList, err.Error()))
		return
	}
	ctx.String(http.StatusOK, c.service.ExportOrder(req))
}
