package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Recovery turns a panic in any later handler into a JSON 500 so that no
// fault ever leaves the server without an error body.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			panicRecoveries.Inc()

			var msg string
			switch v := rec.(type) {
			case error:
				msg = v.Error()
			default:
				msg = fmt.Sprintf("%v", v)
			}

			log.WithFields(logrus.Fields{
				"request_id": RequestID(c),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"stack":      string(debug.Stack()),
			}).Errorf("panic recovered: %s", msg)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Error:  "Internal Server Error",
				Detail: msg,
			})
		}()

		c.Next()
	}
}
