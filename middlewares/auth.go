package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/repository"
	"github.com/shahmilc/LittleLemonAPI/utils"
)

// Role names accepted by AuthMiddleware's requiredRoles.
const (
	RoleManager      = "manager"
	RoleDeliveryCrew = "delivery-crew"
	RoleSuperuser    = "superuser"
)

// AuthMiddleware verifies the bearer token and resolves the caller's roles
// from group membership on every request. The token carries identity only;
// a role granted or revoked by an admin is visible on the very next call.
// When requiredRoles is non-empty the caller must hold at least one of them.
func AuthMiddleware(groupRepo *repository.GroupRepository, secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			c.Abort()
			return
		}

		roles, err := groupRepo.RolesForUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			} else {
				c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "store temporarily unavailable"})
			}
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("roles", roles)

		if len(requiredRoles) > 0 && !anyRole(roles, requiredRoles) {
			c.JSON(http.StatusForbidden, gin.H{"detail": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func anyRole(rs entity.RoleSet, required []string) bool {
	for _, r := range required {
		switch r {
		case RoleManager:
			if rs.Manager {
				return true
			}
		case RoleDeliveryCrew:
			if rs.DeliveryCrew {
				return true
			}
		case RoleSuperuser:
			if rs.Superuser {
				return true
			}
		}
	}
	return false
}
