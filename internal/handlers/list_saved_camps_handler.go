package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.mapleapps.campquest/internal/camp"
	savedmodels "io.mapleapps.campquest/internal/models/saved_camps"
)

// ListSavedCamps returns the grouped view of every camp the current user
// has favorited. Saved names with no live sessions in the store are
// dropped silently.
func (h *CampsHandler) ListSavedCamps(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := context.Background()
	rows, err := h.postgres.Query(ctx, `
		SELECT camp_name FROM saved_camps
		WHERE user_uid = $1
		ORDER BY created_at DESC
	`, uid)
	if err != nil {
		h.logError(c, err, "failed to load saved camps")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved camps"})
		return
	}
	defer rows.Close()

	saved := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			h.logError(c, err, "failed to scan saved camp")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved camps"})
			return
		}
		saved[name] = struct{}{}
	}

	var matches []camp.CampRecord
	for _, record := range h.store.Records() {
		if _, ok := saved[record.Name]; ok {
			matches = append(matches, record)
		}
	}

	grouped := camp.GroupCamps(matches)
	c.JSON(http.StatusOK, savedmodels.SavedCampsResponse{Camps: grouped, Total: len(grouped)})
}
