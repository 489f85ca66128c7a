package middleware

import (
	"net/http"
	"strings"

	"quickgigs/internal/infrastructure/auth"
	"quickgigs/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)

// TokenValidator resolves a bearer token to its claims.
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// CallbackValidator resolves a checkout return state token issued for gigID.
type CallbackValidator interface {
	ValidateCallbackToken(token, gigID string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller id for handlers.
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			log.WithError(err).Debug("[auth][middleware] token rejected")
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// RequireCallbackAuth guards the checkout return routes. A bearer token is
// used when present; otherwise the state query parameter must be a callback
// token for the gig in the :gig_id path parameter.
func RequireCallbackAuth(tokens TokenValidator, callbacks CallbackValidator) gin.HandlerFunc {
	bearer := RequireAuth(tokens)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" || callbacks == nil {
			bearer(c)
			return
		}
		state := strings.TrimSpace(c.Query("state"))
		if state == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		claims, err := callbacks.ValidateCallbackToken(state, c.Param("gig_id"))
		if err != nil {
			log.WithError(err).WithField("gig_id", c.Param("gig_id")).Debug("[auth][middleware] callback state rejected")
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// UserID returns the authenticated caller, or "" on public routes.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SetUserID is used by tests that bypass token validation.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}
