package wcbot

import (
	"context"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"
)

const WeChatAudioDriverName = "WeChatAudio"

// WeChatAudioDriver turns voice pushes into audio messages whose attachment
// points at the media/get download URL.
type WeChatAudioDriver struct {
	*WeChatDriver
}

func NewWeChatAudioDriver(content []byte, conf *config.WeChatConfig, client HTTPClient, opts ...Option) *WeChatAudioDriver {
	return &WeChatAudioDriver{NewWeChatDriver(content, conf, client, opts...)}
}

func (d *WeChatAudioDriver) Name() string {
	return WeChatAudioDriverName
}

func (d *WeChatAudioDriver) MatchesRequest() bool {
	return d.isMessage(define.MsgTypeVoice)
}

func (d *WeChatAudioDriver) MatchingEvent() *models.GenericEvent {
	return nil
}

func (d *WeChatAudioDriver) Messages(ctx context.Context) ([]*models.IncomingMessage, error) {
	if d.messages == nil {
		audioURL, err := d.mediaURL(ctx, d.event.MediaID())
		if err != nil {
			return nil, err
		}

		message := d.newMessage(models.AudioPattern)
		message.Audio = []*models.Audio{models.NewAudio(audioURL, d.event)}
		d.messages = []*models.IncomingMessage{message}
	}
	return d.messages, nil
}
