package wcbot

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Signature rejects webhook calls not signed with token. An empty token
// disables the check.
func Signature(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		if !CheckSignature(token, c.Query("signature"), c.Query("timestamp"), c.Query("nonce")) {
			logrus.Warn("wechat signature mismatch from ", c.ClientIP())
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		c.Next()
	}
}

func Auth(appKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logrus.Debug(c.Request.URL)

		if c.Query("appKey") != appKey {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		c.Next()
	}
}
