package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ellekaen/VanityOS-Api/services"
)

type InfoController struct {
	food    *services.FoodService
	version string
}

func NewInfoController(food *services.FoodService, version string) *InfoController {
	return &InfoController{food: food, version: version}
}

// GET /
func (ic *InfoController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "VanityOS Skincare API - Healthy Ingredients Hub",
		"version": ic.version,
		"endpoints": gin.H{
			"GET /analyze_food":   "Analyze if a food ingredient is comedogenic for skin (text-based)",
			"POST /analyze_food":  "Analyze a food photo and return acne-health metadata",
			"POST /analyze_image": "Check that an uploaded image shows food",
			"GET /scans":          "Recent photo analyses",
			"GET /health":         "Liveness check",
		},
	})
}

// GET /health
func (ic *InfoController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"classifier":  ic.food.ClassifierName(),
		"model_ready": ic.food.ClassifierReady(),
	})
}
