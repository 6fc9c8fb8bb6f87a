package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/noticias-pt/news-api/domain"
)

// Auth gates a route behind bearer-token verification. On success the
// resolved email is bound to the gin context under "user_email" for the
// handlers that need attribution. Any verification failure fails closed
// with 401; handlers behind this middleware can rely on the identity
// being present.
func Auth(verifier domain.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
			return
		}

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logrus.Warnf("rejecting request: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
			return
		}

		c.Set("user_email", id.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
