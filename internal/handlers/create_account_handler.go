package handlers

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	firebaseutil "io.mapleapps.campquest/internal/firebase"
	usermodels "io.mapleapps.campquest/internal/models/account"
	createmodels "io.mapleapps.campquest/internal/models/create_account"
)

// CreateAccount handles user account creation via Firebase
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req createmodels.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx := context.Background()
	authClient, err := firebaseutil.GetAuthClient(h.firebaseApp)
	if err != nil {
		h.logError(c, err, "failed to initialize auth client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize auth client"})
		return
	}

	params := (&auth.UserToCreate{}).
		Email(req.Email).
		EmailVerified(false).
		Password(req.Password).
		Disabled(false)

	if req.DisplayName != "" {
		params = params.DisplayName(req.DisplayName)
	}
	if req.PhotoURL != "" {
		params = params.PhotoURL(req.PhotoURL)
	}

	userRecord, err := authClient.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		h.logError(c, err, "failed to create firebase user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user account"})
		return
	}

	// Create custom token for immediate login
	customToken, err := authClient.CustomToken(ctx, userRecord.UID)
	if err != nil {
		h.logError(c, err, "failed to mint custom token", "uid", userRecord.UID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account created but failed to generate login token"})
		return
	}

	user := &usermodels.User{
		UID:           userRecord.UID,
		DisplayName:   userRecord.DisplayName,
		Email:         userRecord.Email,
		Token:         customToken,
		PhotoURL:      userRecord.PhotoURL,
		Provider:      "password",
		EmailVerified: userRecord.EmailVerified,
	}

	if err := h.cacheUserSession(ctx, user); err != nil {
		h.logError(c, err, "failed to cache session", "uid", user.UID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account created but failed to create session"})
		return
	}

	if err := h.storeUserInPostgres(ctx, user); err != nil {
		// The Firebase account exists and the session works; the row is
		// re-upserted on next login.
		h.logError(c, err, "failed to store user row", "uid", user.UID)
	}

	response := createmodels.CreateAccountResponse{
		UID:           user.UID,
		DisplayName:   user.DisplayName,
		Email:         user.Email,
		Token:         customToken,
		PhotoURL:      user.PhotoURL,
		EmailVerified: user.EmailVerified,
	}

	c.JSON(http.StatusCreated, response)
}
