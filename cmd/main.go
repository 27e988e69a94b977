package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/PizzaDAO/rsv-pizza-sub001/docs" // Import generated docs
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/config"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/controllers"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/middleware"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
)

var (
	recommendationService    services.RecommendationService
	recommendationController controllers.RecommendationController
	catalogController        controllers.CatalogController
	configuration            *config.Config
)

// @title Party Order Recommendation API
// @version 1.0
// @description Pizza and beverage recommendation engine for event RSVPs
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize services and controllers
	recommendationService = services.NewRecommendationService(configuration.DefaultStyle, configuration.DefaultDurationHours)
	recommendationController = controllers.NewRecommendationController(recommendationService)
	catalogController = controllers.NewCatalogController()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestLogger())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("", recommendationController.Recommend)
			recommendations.POST("/waves", recommendationController.RecommendWaves)
			recommendations.POST("/export", recommendationController.ExportOrder)
		}

		catalogApi := v1.Group("/catalog")
		{
			catalogApi.GET("/toppings", catalogController.GetToppings)
			catalogApi.GET("/beverages", catalogController.GetBeverages)
			catalogApi.GET("/styles", catalogController.GetStyles)
			catalogApi.GET("/sizes", catalogController.GetSizes)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "rsv-pizza",
	})
}
