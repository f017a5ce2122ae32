package wcbot

import (
	"context"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"
)

const WeChatVideoDriverName = "WeChatVideo"

type WeChatVideoDriver struct {
	*WeChatDriver
}

func NewWeChatVideoDriver(content []byte, conf *config.WeChatConfig, client HTTPClient, opts ...Option) *WeChatVideoDriver {
	return &WeChatVideoDriver{NewWeChatDriver(content, conf, client, opts...)}
}

func (d *WeChatVideoDriver) Name() string {
	return WeChatVideoDriverName
}

func (d *WeChatVideoDriver) MatchesRequest() bool {
	return d.isMessage(define.MsgTypeVideo, define.MsgTypeShortVideo)
}

func (d *WeChatVideoDriver) MatchingEvent() *models.GenericEvent {
	return nil
}

func (d *WeChatVideoDriver) Messages(ctx context.Context) ([]*models.IncomingMessage, error) {
	if d.messages == nil {
		videoURL, err := d.mediaURL(ctx, d.event.MediaID())
		if err != nil {
			return nil, err
		}

		message := d.newMessage(models.VideoPattern)
		message.Videos = []*models.Video{models.NewVideo(videoURL, d.event)}
		d.messages = []*models.IncomingMessage{message}
	}
	return d.messages, nil
}
