package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alex-pricope/simple-survey-system/auth"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// verified claims on the context.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			logging.Log.Warnf("AUTH: missing bearer token on %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logging.Log.Warnf("AUTH: rejected token on %s: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// AdminMiddleware must run after AuthMiddleware. The role is read from the
// store on every request, never from the token.
func AdminMiddleware(users storage.UserStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), claims.Email)
		if err != nil && !errors.Is(err, storage.ErrItemNotFound) {
			logging.Log.Errorf("AUTH: failed to look up %s: %v", claims.Email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil || user.Role != storage.RoleAdmin {
			logging.Log.Warnf("AUTH: %s is not an admin", claims.Email)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}

// Gate bundles the two access levels handed to controllers.
type Gate struct {
	Authenticated gin.HandlerFunc
	Admin         gin.HandlerFunc
}

func NewGate(tokens TokenVerifier, users storage.UserStorage) *Gate {
	return &Gate{
		Authenticated: AuthMiddleware(tokens),
		Admin:         AdminMiddleware(users),
	}
}
