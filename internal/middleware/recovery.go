package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"insight-srv/pkg/log"
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500. The panic value is echoed back to the client
// only outside production.
func Recovery(logger log.Logger, environment string) gin.HandlerFunc {
	exposeDetail := environment != "production"

	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			ctx := c.Request.Context()
			logger.Errorf(ctx, "middleware.Recovery: panic %v | %s %s\n%s",
				rec, c.Request.Method, c.Request.URL.Path, debug.Stack())

			if exposeDetail {
				response.PanicError(c, rec)
			} else {
				response.Error(c, fmt.Errorf("panic: %v", rec))
			}
			c.Abort()
		}()
		c.Next()
	}
}
