package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	firebaseutil "io.mapleapps.campquest/internal/firebase"
)

// DeleteAccount removes the user from Firebase, Postgres, and the session
// cache. Saved camps and settings go with the user row via cascade.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := context.Background()
	authClient, err := firebaseutil.GetAuthClient(h.firebaseApp)
	if err != nil {
		h.logError(c, err, "failed to initialize auth client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize auth client"})
		return
	}

	if err := authClient.DeleteUser(ctx, uid); err != nil {
		h.logError(c, err, "failed to delete firebase user", "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user account"})
		return
	}

	if _, err := h.postgres.Exec(ctx, `DELETE FROM users WHERE uid = $1`, uid); err != nil {
		h.logError(c, err, "failed to delete user row", "uid", uid)
	}

	if err := h.redis.Del(ctx, "user:"+uid).Err(); err != nil {
		h.logError(c, err, "failed to clear session", "uid", uid)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
