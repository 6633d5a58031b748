package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ellekaen/VanityOS-Api/controllers"
	"github.com/ellekaen/VanityOS-Api/middlewares"
	"github.com/ellekaen/VanityOS-Api/services"
)

type Options struct {
	APIKey         string
	MaxUploadBytes int64
	Version        string
	Log            *zap.Logger
}

func SetupRouter(food *services.FoodService, opts Options) *gin.Engine {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(opts.Log), gin.Recovery())
	r.MaxMultipartMemory = opts.MaxUploadBytes

	info := controllers.NewInfoController(food, opts.Version)
	foodCtl := controllers.NewFoodController(food, opts.MaxUploadBytes)
	scans := controllers.NewScanController(food)

	// Public routes
	r.GET("/", info.Root)
	r.GET("/health", info.Health)

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.APIKeyMiddleware(opts.APIKey))
	{
		api.GET("/analyze_food", foodCtl.AnalyzeFoodText)
		api.POST("/analyze_food", foodCtl.AnalyzeFoodImage)
		api.POST("/analyze_image", foodCtl.AnalyzeImage)
		api.GET("/scans", scans.List)
	}

	return r
}
