package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	userRepo "tutorgo/database/repository/user"
	"tutorgo/utils"
)

// authCachePrefix namespaces token-hash entries in the auth cache.
const authCachePrefix = "auth:token:"

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// account's stored hash (via the auth cache, falling back to the database) and
// sets userID and role on the request context.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + userID

		ctx := context.Background()
		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					abortUnauthorized(c, "Token mismatch")
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			} else if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		account, err := repo.GetByID(userID)
		if err != nil || account == nil {
			abortUnauthorized(c, "Authentication error")
			return
		}
		if account.TokenHash == "" || account.TokenHash != computedHash {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Set("role", account.Role)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in the allowed
// set. It must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		roleStr, _ := role.(string)
		for _, allowed := range roles {
			if roleStr == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource."})
	}
}
