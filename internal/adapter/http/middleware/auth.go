package middleware

import (
	"net/http"
	"strings"

	"pombal/internal/usecase/interfaces"
	"pombal/pkg"

	"github.com/gin-gonic/gin"
)

// ContextOwnerIDKey is where the auth guard stores the caller's user id.
const ContextOwnerIDKey = "owner_id"

const bearerPrefix = "Bearer "

// RequireAuth verifies the Authorization bearer token and scopes the request
// to the token's user id.
func RequireAuth(tokens interfaces.ITokenIssuer, loc pkg.Localizer) gin.HandlerFunc {
	errUnauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToLocalizedHTTPError(loc))
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToLocalizedHTTPError(loc))
			return
		}

		c.Set(ContextOwnerIDKey, userID)
		c.Next()
	}
}

// OwnerID returns the authenticated user id set by RequireAuth.
func OwnerID(c *gin.Context) string {
	return c.GetString(ContextOwnerIDKey)
}
