package middlewares

import (
	"github.com/gin-gonic/gin"

	"ngoconnect-web/models"
)

// RequireRole lets the request through only for an identity holding one of
// roles. Anything else, including an identity that is still Unknown, is handed
// to denied, which renders the placeholder and must not call c.Next.
func RequireRole(denied gin.HandlerFunc, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c).Is(roles...) {
			c.Next()
			return
		}
		denied(c)
		c.Abort()
	}
}
