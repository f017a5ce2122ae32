package wcbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"
	"wxDriver4g/pkg/utils"

	"github.com/sirupsen/logrus"
)

const (
	apiBaseURL  = "https://api.wechat.com/cgi-bin/"
	fileBaseURL = "http://file.api.wechat.com/cgi-bin/"
)

var (
	ErrNotConfigured = errors.New("wechat app_id and app_key are required")
	ErrNoRecipient   = errors.New("no matching message to address")
)

// APIError is returned when WeChat answers with a non-zero errcode.
type APIError struct {
	Code int    `json:"errcode"`
	Msg  string `json:"errmsg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wechat api error %d: %s", e.Code, e.Msg)
}

// HTTPClient is the transport the drivers use to reach the WeChat API.
type HTTPClient interface {
	Get(ctx context.Context, urlStr string, params url.Values) ([]byte, error)
	Post(ctx context.Context, urlStr string, params url.Values, body interface{}) ([]byte, error)
}

// Driver is what the bot needs from a platform driver.
type Driver interface {
	Name() string
	MatchesRequest() bool
	Messages(ctx context.Context) ([]*models.IncomingMessage, error)
	MatchingEvent() *models.GenericEvent
	IsConfigured() bool
	IsBot() bool
	User(ctx context.Context, matching *models.IncomingMessage) (*models.User, error)
	BuildServicePayload(message interface{}, matching *models.IncomingMessage, extra map[string]interface{}) (map[string]interface{}, error)
	SendPayload(ctx context.Context, payload map[string]interface{}) ([]byte, error)
	SendRequest(ctx context.Context, endpoint string, params map[string]interface{}, matching *models.IncomingMessage) ([]byte, error)
}

type Option func(*WeChatDriver)

// WithTokenCache shares access tokens between drivers.
func WithTokenCache(tokens *TokenCache) Option {
	return func(d *WeChatDriver) {
		d.tokens = tokens
	}
}

// WeChatDriver handles text messages and event pushes. The media drivers
// embed it for token handling and outgoing messages.
type WeChatDriver struct {
	conf     *config.WeChatConfig
	http     HTTPClient
	tokens   *TokenCache
	event    *models.Event
	messages []*models.IncomingMessage
}

const WeChatDriverName = "WeChat"

func NewWeChatDriver(content []byte, conf *config.WeChatConfig, client HTTPClient, opts ...Option) *WeChatDriver {
	if conf == nil {
		conf = &config.WeChatConfig{}
	}
	conf.Normalize()

	d := &WeChatDriver{
		conf:  conf,
		http:  client,
		event: buildPayload(content),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// buildPayload never fails: anything that is not a WeChat push becomes an
// empty event which no driver matches.
func buildPayload(content []byte) *models.Event {
	fields, keys, err := utils.XMLToMap(content)
	if err != nil {
		logrus.Debug("wechat payload is not xml: ", err)
		return models.NewEvent(nil, nil)
	}
	return models.NewEvent(fields, keys)
}

func (d *WeChatDriver) Name() string {
	return WeChatDriverName
}

func (d *WeChatDriver) Event() *models.Event {
	return d.event
}

func (d *WeChatDriver) MatchesRequest() bool {
	if d.event.MsgType() == define.MsgTypeEvent {
		return true
	}
	return d.isMessage(define.MsgTypeText)
}

// isMessage reports whether the push is a user message of one of msgTypes.
func (d *WeChatDriver) isMessage(msgTypes ...string) bool {
	if !d.event.Has("MsgId") || !d.event.Has("MsgType") {
		return false
	}
	for _, t := range msgTypes {
		if d.event.MsgType() == t {
			return true
		}
	}
	return false
}

func (d *WeChatDriver) MatchingEvent() *models.GenericEvent {
	if d.event.MsgType() != define.MsgTypeEvent {
		return nil
	}
	return &models.GenericEvent{Name: d.event.Get("Event"), Payload: d.event}
}

func (d *WeChatDriver) Messages(ctx context.Context) ([]*models.IncomingMessage, error) {
	if d.messages == nil {
		if d.event.MsgType() == define.MsgTypeEvent {
			return []*models.IncomingMessage{}, nil
		}
		d.messages = []*models.IncomingMessage{d.newMessage(d.event.Get("Content"))}
	}
	return d.messages, nil
}

func (d *WeChatDriver) newMessage(text string) *models.IncomingMessage {
	return models.NewIncomingMessage(text, d.event.FromUserName(), d.event.ToUserName(), d.event)
}

func (d *WeChatDriver) IsConfigured() bool {
	return d.conf.AppID != "" && d.conf.AppKey != ""
}

func (d *WeChatDriver) IsBot() bool {
	return false
}

func (d *WeChatDriver) accessToken(ctx context.Context) (string, error) {
	if d.tokens == nil {
		d.tokens = newDriverTokenCache(d.conf.TokenTTL)
	}
	return d.tokens.Token(ctx, d.http, d.conf)
}

func (d *WeChatDriver) mediaURL(ctx context.Context, mediaID string) (string, error) {
	token, err := d.accessToken(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(fileBaseURL+"media/get?access_token=%s&media_id=%s",
		url.QueryEscape(token), url.QueryEscape(mediaID)), nil
}

func (d *WeChatDriver) User(ctx context.Context, matching *models.IncomingMessage) (*models.User, error) {
	if matching == nil {
		return nil, ErrNoRecipient
	}

	token, err := d.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"access_token": []string{token},
		"openid":       []string{matching.Sender},
		"lang":         []string{"en_US"},
	}
	data, err := d.http.Get(ctx, apiBaseURL+"user/info", params)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if err := checkResponse(data); err != nil {
		return nil, err
	}

	var info models.UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		logrus.Error(err)
		return nil, err
	}

	return &models.User{ID: matching.Sender, Username: info.Nickname, Info: info}, nil
}

// BuildServicePayload renders a customer-service message for the sender of
// matching. message may be a string, *models.Question or
// *models.OutgoingMessage.
func (d *WeChatDriver) BuildServicePayload(message interface{}, matching *models.IncomingMessage, extra map[string]interface{}) (map[string]interface{}, error) {
	if matching == nil {
		return nil, ErrNoRecipient
	}

	payload := map[string]interface{}{
		"touser":  matching.Sender,
		"msgtype": "text",
	}

	switch m := message.(type) {
	case string:
		payload["text"] = map[string]string{"content": m}
	case *models.Question:
		payload["text"] = map[string]string{"content": m.Text}
	case *models.OutgoingMessage:
		if img, ok := m.Attachment.(*models.Image); ok {
			payload["msgtype"] = "news"
			payload["news"] = map[string]interface{}{
				"articles": []map[string]string{{
					"title":  m.Text,
					"picurl": img.URL(),
				}},
			}
		} else {
			payload["text"] = map[string]string{"content": m.Text}
		}
	default:
		return nil, fmt.Errorf("unsupported message type %T", message)
	}

	for k, v := range extra {
		payload[k] = v
	}

	return payload, nil
}

func (d *WeChatDriver) SendPayload(ctx context.Context, payload map[string]interface{}) ([]byte, error) {
	token, err := d.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	data, err := d.http.Post(ctx, apiBaseURL+"message/custom/send", url.Values{"access_token": []string{token}}, payload)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	return data, checkResponse(data)
}

// SendRequest calls an arbitrary cgi-bin endpoint, e.g. "menu/create".
func (d *WeChatDriver) SendRequest(ctx context.Context, endpoint string, params map[string]interface{}, matching *models.IncomingMessage) ([]byte, error) {
	token, err := d.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	data, err := d.http.Post(ctx, apiBaseURL+endpoint, url.Values{"access_token": []string{token}}, params)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	return data, checkResponse(data)
}

// Reply sends message back to whoever sent matching.
func Reply(ctx context.Context, d Driver, message interface{}, matching *models.IncomingMessage) error {
	payload, err := d.BuildServicePayload(message, matching, nil)
	if err != nil {
		return err
	}
	_, err = d.SendPayload(ctx, payload)
	return err
}

func checkResponse(data []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(data, &apiErr); err != nil {
		// not every endpoint answers with json
		return nil
	}
	if apiErr.Code != 0 {
		logrus.Error(apiErr.Error())
		return &apiErr
	}
	return nil
}
