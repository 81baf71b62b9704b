package middleware

import (
	"net/http"
	"strings"

	"comercial_xpto/internal/infrastructure/auth"
	"comercial_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the authenticated tenant id is
// stored under.
const ContextUserID = "user_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireAuth validates the Authorization bearer token and stores the
// tenant id in the request context. Every route under it is tenant-scoped.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
