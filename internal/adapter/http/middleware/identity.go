package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shrinila/productify-backend/internal/core/ports"
	"github.com/Shrinila/productify-backend/pkg/apierrors"
)

const callerIDKey = "caller_id"

// IdentityMiddleware resolves the authenticated caller from an
// Authorization bearer token. A presented-but-invalid token is always
// rejected; an absent token is rejected only when required, otherwise the
// request continues anonymously and task ownership is not enforced.
func IdentityMiddleware(tokens ports.TokenIssuer, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				lang := GetLang(c)
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
				)
				return
			}
			c.Next()
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			unauthorized(c)
			return
		}

		accountID, err := tokens.Verify(token)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(callerIDKey, accountID)
		c.Next()
	}
}

// GetCallerID returns the authenticated account id, or "" for anonymous
// requests.
func GetCallerID(c *gin.Context) string {
	if caller, exists := c.Get(callerIDKey); exists {
		if s, ok := caller.(string); ok {
			return s
		}
	}
	return ""
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context) {
	lang := GetLang(c)
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
	)
}
