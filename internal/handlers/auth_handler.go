package handlers

import (
	"context"
	"encoding/json"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	usermodels "io.mapleapps.campquest/internal/models/account"
)

// sessionTTL bounds how long a cached login stays valid without a re-login.
const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	firebaseApp *firebase.App
	postgres    *pgxpool.Pool
	redis       *redis.Client
	logger      *zap.SugaredLogger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(firebaseApp *firebase.App, postgres *pgxpool.Pool, redis *redis.Client, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		firebaseApp: firebaseApp,
		postgres:    postgres,
		redis:       redis,
		logger:      logger,
	}
}

// cacheUserSession stores the user in Redis for fast token checks.
func (h *AuthHandler) cacheUserSession(ctx context.Context, user *usermodels.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return h.redis.Set(ctx, "user:"+user.UID, userJSON, sessionTTL).Err()
}

// storeUserInPostgres upserts the user row and a default settings row.
func (h *AuthHandler) storeUserInPostgres(ctx context.Context, user *usermodels.User) error {
	query := `
		INSERT INTO users (uid, display_name, email, token, photo_url, provider, email_verified, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (uid)
		DO UPDATE SET
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			token = EXCLUDED.token,
			photo_url = EXCLUDED.photo_url,
			provider = EXCLUDED.provider,
			email_verified = EXCLUDED.email_verified,
			updated_at = NOW()
	`
	if _, err := h.postgres.Exec(ctx, query,
		user.UID, user.DisplayName, user.Email, user.Token,
		user.PhotoURL, user.Provider, user.EmailVerified,
	); err != nil {
		return err
	}

	settingsQuery := `
		INSERT INTO user_settings (uid) VALUES ($1)
		ON CONFLICT (uid) DO NOTHING
	`
	_, err := h.postgres.Exec(ctx, settingsQuery, user.UID)
	return err
}
