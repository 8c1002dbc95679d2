package handlers

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	firebaseutil "io.mapleapps.campquest/internal/firebase"
	usermodels "io.mapleapps.campquest/internal/models/account"
	models "io.mapleapps.campquest/internal/models/login"
)

// Login handles user login via Firebase
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	authClient, err := firebaseutil.GetAuthClient(h.firebaseApp)
	if err != nil {
		h.logError(c, err, "failed to initialize auth client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize auth client"})
		return
	}

	var userRecord *auth.UserRecord
	var customToken string

	switch {
	case req.Token != "" && req.Email == "" && req.Password == "":
		// An identity-provider ID token (email, Google, etc.) from the
		// client SDK: verify it and reuse it as the session token.
		token, err := authClient.VerifyIDToken(ctx, req.Token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userRecord, err = authClient.GetUser(ctx, token.UID)
		if err != nil {
			h.logError(c, err, "failed to load user record", "uid", token.UID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user information"})
			return
		}

		customToken = req.Token

	case req.Email != "" && req.Password != "":
		// The Admin SDK cannot check passwords; password logins go through
		// the Firebase client SDK. Mint a custom token for the known user.
		userRecord, err = authClient.GetUserByEmail(ctx, req.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		customToken, err = authClient.CustomToken(ctx, userRecord.UID)
		if err != nil {
			h.logError(c, err, "failed to mint custom token", "uid", userRecord.UID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create authentication token"})
			return
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either token or email/password must be provided"})
		return
	}

	provider := "password"
	if len(userRecord.ProviderUserInfo) > 0 {
		provider = userRecord.ProviderUserInfo[0].ProviderID
	}

	user := &usermodels.User{
		UID:           userRecord.UID,
		DisplayName:   userRecord.DisplayName,
		Email:         userRecord.Email,
		Token:         customToken,
		PhotoURL:      userRecord.PhotoURL,
		Provider:      provider,
		EmailVerified: userRecord.EmailVerified,
	}

	if err := h.cacheUserSession(ctx, user); err != nil {
		h.logError(c, err, "failed to cache session", "uid", user.UID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	if err := h.storeUserInPostgres(ctx, user); err != nil {
		h.logError(c, err, "failed to store user row", "uid", user.UID)
	}

	response := models.LoginResponse{
		UID:           user.UID,
		DisplayName:   user.DisplayName,
		Email:         user.Email,
		Token:         customToken,
		PhotoURL:      user.PhotoURL,
		Provider:      user.Provider,
		EmailVerified: user.EmailVerified,
	}

	c.JSON(http.StatusOK, response)
}
