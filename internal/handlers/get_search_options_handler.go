package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.mapleapps.campquest/internal/camp"
)

// GetSearchOptions returns the static pick-lists the search controls are
// built from.
func (h *CampsHandler) GetSearchOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":  camp.Categories,
		"provinces":   camp.Provinces,
		"ageGroups":   camp.AgeGroups,
		"priceRanges": camp.PriceRanges,
	})
}
