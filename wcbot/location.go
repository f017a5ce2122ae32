package wcbot

import (
	"context"
	"strconv"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"

	"github.com/sirupsen/logrus"
)

const WeChatLocationDriverName = "WeChatLocation"

type WeChatLocationDriver struct {
	*WeChatDriver
}

func NewWeChatLocationDriver(content []byte, conf *config.WeChatConfig, client HTTPClient, opts ...Option) *WeChatLocationDriver {
	return &WeChatLocationDriver{NewWeChatDriver(content, conf, client, opts...)}
}

func (d *WeChatLocationDriver) Name() string {
	return WeChatLocationDriverName
}

func (d *WeChatLocationDriver) MatchesRequest() bool {
	return d.isMessage(define.MsgTypeLocation)
}

func (d *WeChatLocationDriver) MatchingEvent() *models.GenericEvent {
	return nil
}

func (d *WeChatLocationDriver) Messages(ctx context.Context) ([]*models.IncomingMessage, error) {
	if d.messages == nil {
		lat, err := strconv.ParseFloat(d.event.Get("Location_X"), 64)
		if err != nil {
			logrus.Error(err)
			return nil, err
		}
		lng, err := strconv.ParseFloat(d.event.Get("Location_Y"), 64)
		if err != nil {
			logrus.Error(err)
			return nil, err
		}

		location := models.NewLocation(lat, lng, d.event)
		location.Scale, _ = strconv.Atoi(d.event.Get("Scale"))
		location.Label = d.event.Get("Label")

		message := d.newMessage(models.LocationPattern)
		message.Location = location
		d.messages = []*models.IncomingMessage{message}
	}
	return d.messages, nil
}
