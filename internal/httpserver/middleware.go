package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"plantstore/internal/domain"
)

const profileKey = "profile"

// authRequired resolves the bearer token to a profile and stashes it on the
// context. Missing or invalid tokens end the request with 401.
func authRequired(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		p, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(profileKey, p)
		c.Next()
	}
}

// nurseryOnly gates routes to profiles with the nursery role. Must run
// after authRequired.
func nurseryOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentProfile(c)
		if p == nil || p.Role != domain.RoleNursery {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "nursery account required"})
			return
		}
		c.Next()
	}
}

func currentProfile(c *gin.Context) *domain.Profile {
	v, ok := c.Get(profileKey)
	if !ok {
		return nil
	}
	p, ok := v.(*domain.Profile)
	if !ok {
		return nil
	}
	return p
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
