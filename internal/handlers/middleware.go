package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gamestore/internal/models"
	"gamestore/internal/service"

	"github.com/gin-gonic/gin"
)

// Key under which the resolved account is stored in the gin context.
const userCtxKey = "user"

// authMiddleware gates protected routes. A missing or malformed header is a
// client mistake (400); a token that fails verification, has expired or was
// revoked is an authentication failure (401). On success the account is
// re-resolved from the DB and attached to the context, so handlers always
// see current account state rather than the signed snapshot.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	user, err := h.services.Authorization.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_middleware_failed", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": errInternal,
		})
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// userFromContext returns the account the middleware attached, if any.
func userFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

// bearerToken re-extracts the raw token for handlers that act on the token
// itself (logout). The middleware already validated the header shape.
func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
