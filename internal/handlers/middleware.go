package handlers

import (
	"net/http"

	"github.com/acadegrade/result-service/internal/auth"
	"github.com/acadegrade/result-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextOwnerUID = "owner_uid"
	ContextClaims   = "claims"
)

// AuthMiddleware verifies the bearer token on every request of the group and
// stores the verified claims in the request context.
func AuthMiddleware(verifier auth.TokenVerifier, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Token verification failed", "error", err, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextOwnerUID, claims.UID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// claimsFromContext returns the verified claims stored by AuthMiddleware.
func claimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
