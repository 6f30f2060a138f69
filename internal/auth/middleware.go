package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
)

// AdminKeyHeader carries the shared admin key.
const AdminKeyHeader = "X-Admin-Key"

// HashAdminKey returns the bcrypt hash stored in ADMIN_API_KEY_HASH.
func HashAdminKey(key string) (string, error) {
	if key == "" {
		return "", ErrMissingAdminKey
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ValidateAdminKey checks key against a bcrypt hash.
func ValidateAdminKey(hash, key string) error {
	if hash == "" {
		return ErrNotConfigured
	}
	if key == "" {
		return ErrMissingAdminKey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidAdminKey
		}
		return err
	}
	return nil
}

// EnsureAdminKey rejects requests whose X-Admin-Key does not match hash.
// An empty hash locks the admin routes.
func EnsureAdminKey(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := ValidateAdminKey(hash, c.GetHeader(AdminKeyHeader))
		if err == nil {
			c.Set("authType", "admin_key")
			c.Next()
			return
		}

		logger.Log.Warn("Admin request rejected",
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err))

		message := err.Error()
		if !errors.Is(err, ErrMissingAdminKey) && !errors.Is(err, ErrNotConfigured) {
			message = ErrInvalidAdminKey.Error()
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
	}
}
