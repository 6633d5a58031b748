package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ellekaen/VanityOS-Api/services"
)

type FoodController struct {
	food      *services.FoodService
	maxUpload int64
}

func NewFoodController(food *services.FoodService, maxUpload int64) *FoodController {
	return &FoodController{food: food, maxUpload: maxUpload}
}

// GET /analyze_food?food=Jojoba%20Oil
func (fc *FoodController) AnalyzeFoodText(c *gin.Context) {
	food := c.Query("food")
	if strings.TrimSpace(food) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'food' is required"})
		return
	}

	out, err := fc.food.LookupIngredient(food)
	if errors.Is(err, services.ErrIngredientNotFound) {
		c.JSON(http.StatusNotFound, out)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /analyze_food  multipart "image"
func (fc *FoodController) AnalyzeFoodImage(c *gin.Context) {
	data, contentType, err := readImageUpload(c, fc.maxUpload, "image", "file")
	if err != nil {
		abortUpload(c, err)
		return
	}

	out, err := fc.food.AnalyzePhoto(c.Request.Context(), data, contentType)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /analyze_image  multipart "file"
func (fc *FoodController) AnalyzeImage(c *gin.Context) {
	data, _, err := readImageUpload(c, fc.maxUpload, "file", "image")
	if err != nil {
		abortUpload(c, err)
		return
	}

	out, err := fc.food.DetectFood(c.Request.Context(), data)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	if !out.IsFood {
		detected := out.Label
		if detected == "" {
			detected = "nothing"
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    fmt.Sprintf("Image not recognized as food (detected: %s). Please upload a clear food photo.", detected),
			"detected": out.Label,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scan_id":       out.ScanID,
		"food_detected": out.Label,
		"confidence":    out.Confidence,
		"message":       "Valid food photo detected",
	})
}

func writeAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or unreadable image file"})
	case errors.Is(err, services.ErrModelUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server configuration error", "message": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image", "message": err.Error()})
	}
}
