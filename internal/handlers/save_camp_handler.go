package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	savemodels "io.mapleapps.campquest/internal/models/save_camp"
)

// SaveCamp favorites a camp (by name, the grouping key) for the current
// user. Saving an already-saved camp is a no-op success.
func (h *CampsHandler) SaveCamp(c *gin.Context) {
	var req savemodels.SaveCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "campName is required"})
		return
	}

	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := context.Background()
	query := `
		INSERT INTO saved_camps (user_uid, camp_name)
		VALUES ($1, $2)
		ON CONFLICT (user_uid, camp_name) DO NOTHING
	`
	if _, err := h.postgres.Exec(ctx, query, uid, req.CampName); err != nil {
		h.logError(c, err, "failed to save camp", "camp_name", req.CampName)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save camp"})
		return
	}

	c.JSON(http.StatusOK, savemodels.SaveCampResponse{Success: true, CampName: req.CampName, Saved: true})
}

// UnsaveCamp removes a camp from the current user's favorites.
func (h *CampsHandler) UnsaveCamp(c *gin.Context) {
	var req savemodels.SaveCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "campName is required"})
		return
	}

	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := context.Background()
	query := `DELETE FROM saved_camps WHERE user_uid = $1 AND camp_name = $2`
	if _, err := h.postgres.Exec(ctx, query, uid, req.CampName); err != nil {
		h.logError(c, err, "failed to unsave camp", "camp_name", req.CampName)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave camp"})
		return
	}

	c.JSON(http.StatusOK, savemodels.SaveCampResponse{Success: true, CampName: req.CampName, Saved: false})
}
