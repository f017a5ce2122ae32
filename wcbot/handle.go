package wcbot

import (
	"errors"
	"net/http"

	"wxDriver4g/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxPushBytes bounds a webhook body. WeChat pushes are a few KB.
const maxPushBytes = 64 << 10

// VerifyHandle answers the server verification WeChat does when the
// webhook URL is configured.
func (wc *WcBot) VerifyHandle(c *gin.Context) {
	c.String(http.StatusOK, c.Query("echostr"))
}

// ReceiveHandle always answers "success" once the signature checked out, so
// WeChat does not redeliver pushes the bot failed to process.
func (wc *WcBot) ReceiveHandle(c *gin.Context) {
	log := logrus.WithField("request_id", uuid.NewString())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPushBytes)
	body, err := c.GetRawData()
	if err != nil {
		log.Error(err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusBadRequest)
		return
	}
	if wc.Debug {
		log.Debug(string(body))
	}

	if err := wc.Handle(c.Request.Context(), body); err != nil {
		log.Error(err)
	}

	c.String(http.StatusOK, "success")
}

// TextHandle pushes a customer-service text message.
//
//	to:   openid
//	word: text
func (wc *WcBot) TextHandle(c *gin.Context) {
	if err := wc.handleMsg(c); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.Status(http.StatusOK)
}

func (wc *WcBot) handleMsg(c *gin.Context) error {
	to := c.Query("to")
	word := c.Query("word")

	if to == "" || word == "" {
		logrus.Error("param error")
		return errors.New("param error")
	}

	target := &models.IncomingMessage{Sender: to}
	if err := Reply(c.Request.Context(), wc.NewDriver(), word, target); err != nil {
		logrus.Error("send msg error: ", err)
		return err
	}
	return nil
}
