package wcbot

import (
	"context"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"
)

const WeChatPhotoDriverName = "WeChatPhoto"

// WeChatPhotoDriver uses PicUrl from the push, no token exchange needed.
type WeChatPhotoDriver struct {
	*WeChatDriver
}

func NewWeChatPhotoDriver(content []byte, conf *config.WeChatConfig, client HTTPClient, opts ...Option) *WeChatPhotoDriver {
	return &WeChatPhotoDriver{NewWeChatDriver(content, conf, client, opts...)}
}

func (d *WeChatPhotoDriver) Name() string {
	return WeChatPhotoDriverName
}

func (d *WeChatPhotoDriver) MatchesRequest() bool {
	return d.isMessage(define.MsgTypeImage)
}

func (d *WeChatPhotoDriver) MatchingEvent() *models.GenericEvent {
	return nil
}

func (d *WeChatPhotoDriver) Messages(ctx context.Context) ([]*models.IncomingMessage, error) {
	if d.messages == nil {
		message := d.newMessage(models.ImagePattern)
		message.Images = []*models.Image{models.NewImage(d.event.Get("PicUrl"), d.event)}
		d.messages = []*models.IncomingMessage{message}
	}
	return d.messages, nil
}
