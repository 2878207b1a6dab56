package middleware

import (
	"errors"
	"net/http"
	"strings"

	"crowdfund/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const authContextKey = "auth"

// AuthContext is the caller identity extracted once per request from the
// bearer token.
type AuthContext struct {
	UserID uint
	Role   string
}

func (a AuthContext) HasRole(roles ...string) bool {
	for _, role := range roles {
		if strings.EqualFold(a.Role, role) {
			return true
		}
	}
	return false
}

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be Bearer <token>"})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token expired. Please log in again"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(authContextKey, AuthContext{UserID: claims.UserID, Role: claims.Role})
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := GetAuthContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !auth.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRoles("admin")
}

// CreatorOnly admits creators and admins.
func CreatorOnly() gin.HandlerFunc {
	return RequireRoles("creator", "admin")
}

func GetAuthContext(c *gin.Context) (AuthContext, bool) {
	v, exists := c.Get(authContextKey)
	if !exists {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}

// SetAuthContext is used by tests and by handlers mounted without the
// bearer middleware.
func SetAuthContext(c *gin.Context, auth AuthContext) {
	c.Set(authContextKey, auth)
	c.Set("user_id", auth.UserID)
}
