package middleware

import (
	"net/http"
	"strings"

	"quicktransit/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthRequired validates the bearer token and stores the caller's identity
// on the context. The role claim must parse into the closed Role set;
// tokens minted with anything else are rejected outright.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		roleRaw, _ := claims["role"].(string)
		role, err := models.ParseRole(roleRaw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(ContextUserID, int64(userID))
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Runs after
// AuthRequired, which guarantees a parsed Role is on the context.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	set := make(map[models.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := UserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: no role on context"})
			return
		}

		switch role {
		case models.RoleSuperuser, models.RoleAdmin, models.RoleCustomer:
			if _, permitted := set[role]; permitted {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: role not allowed"})
	}
}

// UserID reads the authenticated user's ID from the context.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// UserRole reads the authenticated user's role from the context.
func UserRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get(ContextUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}
