package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/app/session"
)

// Session opens a pipeline session per request, so the weather reading and
// the remote quote batch are fetched at most once however many handlers ask.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(session.WithContext(ctx, session.New(ctx)))
		c.Next()
	}
}
