package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ellekaen/VanityOS-Api/services"
)

const (
	defaultScanLimit = 20
	maxScanLimit     = 100
)

type ScanController struct {
	food *services.FoodService
}

func NewScanController(food *services.FoodService) *ScanController {
	return &ScanController{food: food}
}

// GET /scans?limit=20
func (sc *ScanController) List(c *gin.Context) {
	limit := defaultScanLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxScanLimit)
	}

	scans, err := sc.food.RecentScans(c.Request.Context(), limit)
	if errors.Is(err, services.ErrHistoryDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": scans, "count": len(scans)})
}
