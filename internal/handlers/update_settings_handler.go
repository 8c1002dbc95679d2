package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	settingsmodels "io.mapleapps.campquest/internal/models/update_settings"
)

// UpdateSettings patches the user's preferences; only provided fields change.
func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	var req settingsmodels.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if req.ThemeMode != nil && *req.ThemeMode != "light" && *req.ThemeMode != "dark" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "themeMode must be 'light' or 'dark'"})
		return
	}

	ctx := context.Background()
	query := `
		UPDATE user_settings
		SET theme_mode = COALESCE($2, theme_mode),
			default_province = COALESCE($3, default_province),
			updated_at = NOW()
		WHERE uid = $1
		RETURNING theme_mode, default_province, created_at, updated_at
	`

	var response settingsmodels.UpdateSettingsResponse
	response.Settings.UID = uid
	err := h.postgres.QueryRow(ctx, query, uid, req.ThemeMode, req.DefaultProvince).
		Scan(&response.Settings.ThemeMode, &response.Settings.DefaultProvince,
			&response.Settings.CreatedAt, &response.Settings.UpdatedAt)
	if err != nil {
		h.logError(c, err, "failed to update settings", "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	response.Success = true
	response.Message = "Settings updated"
	c.JSON(http.StatusOK, response)
}
