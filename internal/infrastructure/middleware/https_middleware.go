package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler redirects plain HTTP requests to the HTTPS endpoint.
func TlsHandler(host string, port int) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Error("tls redirection failed", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
