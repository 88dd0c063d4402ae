package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "stockpile/internal/core/context"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

// UserContext extracts the caller identity from request headers and adds it
// to the request context. Authentication happens upstream; the identity is
// taken as-is and recorded on created order documents.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID != "" {
			ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{
				UserID: userID,
				Name:   c.GetHeader(HeaderUserName),
			})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
