package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	firebaseutil "io.mapleapps.campquest/internal/firebase"
	usermodels "io.mapleapps.campquest/internal/models/account"
)

// AuthMiddleware validates the bearer token and sets the user uid in the
// request context. Lookup order: Redis session cache, then the users table,
// then Firebase ID-token verification as the last resort.
func AuthMiddleware(firebaseApp *firebase.App, postgres *pgxpool.Pool, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with 'Bearer '"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			c.Abort()
			return
		}

		ctx := context.Background()

		// Step 1: Try the Redis session cache
		var userUID string
		iter := redisClient.Scan(ctx, 0, "user:*", 0).Iterator()
		for iter.Next(ctx) {
			userJSON, err := redisClient.Get(ctx, iter.Val()).Result()
			if err != nil {
				continue
			}

			var user usermodels.User
			if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
				continue
			}

			if user.Token == token {
				userUID = user.UID
				break
			}
		}

		// Step 2: If not cached, try Postgres
		if userUID == "" {
			query := `SELECT uid FROM users WHERE token = $1`
			if err := postgres.QueryRow(ctx, query, token).Scan(&userUID); err != nil {
				// Step 3: Verify the token with Firebase as last resort
				authClient, err := firebaseutil.GetAuthClient(firebaseApp)
				if err == nil {
					if idToken, err := authClient.VerifyIDToken(ctx, token); err == nil {
						userUID = idToken.UID
					}
				}
			}
		}

		if userUID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("uid", userUID)
		c.Next()
	}
}
