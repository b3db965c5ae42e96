package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/hagi-aesthetics/hagi-store/store"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// Profiles is the store the middleware resolves authenticated users
// through. Set once at startup; tests substitute a fake.
var Profiles store.ProfileStore

// AuthMiddleware validates the bearer token and loads the user profile
// into the request context. Token issuance happens upstream; this only
// verifies.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			utils.LogError("Invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.LogError("Invalid token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			utils.LogError("Token missing subject claim")
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}
		utils.LogDebug("Authenticating user ID: %s", userID)

		user, err := Profiles.Get(c.Request.Context(), userID)
		if err != nil {
			utils.LogError("User not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		c.Set("user", *user)
		c.Next()
	}
}
