package controllers

import (
	"net/http"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the fixed catalogs collaborators validate against
type CatalogController interface {
	GetToppings(c *gin.Context)
	GetBeverages(c *gin.Context)
	GetStyles(c *gin.Context)
	GetSizes(c *gin.Context)
}

type catalogController struct{}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController() *catalogController {
	return &catalogController{}
}

// GetToppings godoc
// @Summary List the topping catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Topping
// @Router /api/v1/catalog/toppings [get]
func (c *catalogController) GetToppings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Toppings)
}

// GetBeverages godoc
// @Summary List the beverage catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Beverage
// @Router /api/v1/catalog/beverages [get]
func (c *catalogController) GetBeverages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Beverages)
}

// GetStyles godoc
// @Summary List the pizza styles
// @Tags catalog
// @Produce json
// @Success 200 {array} models.PizzaStyle
// @Router /api/v1/catalog/styles [get]
func (c *catalogController) GetStyles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Styles)
}

// GetSizes godoc
// @Summary List the pizza size table
// @Tags catalog
// @Produce json
// @Success 200 {array} models.PizzaSize
// @Router /api/v1/catalog/sizes [get]
func (c *catalogController) GetSizes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Sizes)
}
