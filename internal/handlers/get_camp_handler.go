package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.mapleapps.campquest/internal/camp"
)

// GetCamp returns the grouped view of one camp, all sessions included,
// looked up by exact name.
func (h *CampsHandler) GetCamp(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Camp name is required"})
		return
	}

	var matches []camp.CampRecord
	for _, record := range h.store.Records() {
		if record.Name == name {
			matches = append(matches, record)
		}
	}

	grouped := camp.GroupCamps(matches)
	if len(grouped) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camp not found"})
		return
	}

	c.JSON(http.StatusOK, grouped[0])
}
