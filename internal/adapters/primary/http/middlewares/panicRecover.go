package middlewares

import (
	"net/http"
	"runtime/debug"

	"log/slog"

	"github.com/gin-gonic/gin"
)

// RecoveryLogger перехватывает панику в обработчике, логирует её со
// стеком и отвечает 500 вместо падения процесса
func RecoveryLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
