package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/invoice-actions/internal/models"
)

// Claves de contexto de gin
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// SessionMiddleware exige una sesión válida para las rutas del dashboard. El
// token se lee de la cookie de sesión o del header Authorization.
func (api *API) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(api.cookieName)
		if err != nil || token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewUnauthorizedError("Authentication required"))
			return
		}

		claims, err := api.sessions.Parse(token)
		if err != nil {
			api.logger.WithError(err).Debug("Rejected session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewUnauthorizedError("Invalid session"))
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
