package wcbot

import (
	"context"
	"net/http"
	"strconv"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"
	"wxDriver4g/pkg/httpClient"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

// Handler receives every message a driver produced.
type Handler interface {
	HandleMessage(ctx context.Context, d Driver, msg *models.IncomingMessage)
}

// EventHandler is implemented by handlers that also want event pushes.
type EventHandler interface {
	HandleEvent(ctx context.Context, d Driver, event *models.GenericEvent)
}

type DriverFactory func(content []byte, conf *config.WeChatConfig, client HTTPClient, opts ...Option) Driver

// DefaultDrivers is the match order on the webhook: media first, then
// text and events.
var DefaultDrivers = []DriverFactory{
	func(c []byte, conf *config.WeChatConfig, h HTTPClient, o ...Option) Driver {
		return NewWeChatAudioDriver(c, conf, h, o...)
	},
	func(c []byte, conf *config.WeChatConfig, h HTTPClient, o ...Option) Driver {
		return NewWeChatPhotoDriver(c, conf, h, o...)
	},
	func(c []byte, conf *config.WeChatConfig, h HTTPClient, o ...Option) Driver {
		return NewWeChatVideoDriver(c, conf, h, o...)
	},
	func(c []byte, conf *config.WeChatConfig, h HTTPClient, o ...Option) Driver {
		return NewWeChatLocationDriver(c, conf, h, o...)
	},
	func(c []byte, conf *config.WeChatConfig, h HTTPClient, o ...Option) Driver {
		return NewWeChatDriver(c, conf, h, o...)
	},
}

type WcBot struct {
	Debug      bool
	serverConf *config.ServerConfig
	conf       *config.WeChatConfig
	httpClient HTTPClient
	tokens     *TokenCache
	drivers    []DriverFactory
	handlers   []Handler
	cron       *cron.Cron
}

func New(serverConf *config.ServerConfig, conf *config.WeChatConfig) *WcBot {
	if serverConf == nil {
		serverConf = &config.ServerConfig{}
	}
	if conf == nil {
		conf = &config.WeChatConfig{}
	}
	conf.Normalize()

	wcBot := new(WcBot)
	wcBot.Debug = serverConf.Debug
	wcBot.serverConf = serverConf
	wcBot.conf = conf
	wcBot.httpClient = httpClient.New(map[string]string{"User-Agent": "wxDriver4g"})
	wcBot.tokens = NewTokenCache(conf.TokenTTL)
	wcBot.drivers = DefaultDrivers
	wcBot.handlers = make([]Handler, 0)

	if !wcBot.IsConfigured() {
		logrus.Warn("wechat app_id/app_key missing, media messages cannot be resolved")
	}
	if conf.Token == "" {
		logrus.Warn("wechat token missing, webhook signatures are not checked")
	}

	return wcBot
}

func (wc *WcBot) IsConfigured() bool {
	return wc.conf.AppID != "" && wc.conf.AppKey != ""
}

func (wc *WcBot) AddHandler(h Handler) {
	wc.handlers = append(wc.handlers, h)
}

func (wc *WcBot) SetHTTPClient(client HTTPClient) {
	wc.httpClient = client
}

func (wc *WcBot) SetDrivers(drivers ...DriverFactory) {
	wc.drivers = drivers
}

// NewDriver returns a plain WeChat driver sharing the bot's token cache, for
// calls that are not tied to an incoming push.
func (wc *WcBot) NewDriver() *WeChatDriver {
	return NewWeChatDriver(nil, wc.conf, wc.httpClient, WithTokenCache(wc.tokens))
}

// LoadDriver returns the first driver matching content, or nil.
func (wc *WcBot) LoadDriver(content []byte) Driver {
	for _, factory := range wc.drivers {
		d := factory(content, wc.conf, wc.httpClient, WithTokenCache(wc.tokens))
		if d.MatchesRequest() {
			return d
		}
	}
	return nil
}

// Handle dispatches one webhook body to the registered handlers.
func (wc *WcBot) Handle(ctx context.Context, content []byte) error {
	d := wc.LoadDriver(content)
	if d == nil {
		logrus.Debug("no wechat driver matched the request")
		return nil
	}

	if event := d.MatchingEvent(); event != nil {
		logrus.Debug("事件类型:", define.EventString(event.Name), " 发送者:", event.Payload.FromUserName())
		for _, h := range wc.handlers {
			if eh, ok := h.(EventHandler); ok {
				eh.HandleEvent(ctx, d, event)
			}
		}
		return nil
	}

	messages, err := d.Messages(ctx)
	if err != nil {
		logrus.Error(err)
		return err
	}

	for _, msg := range messages {
		logrus.Debug(
			"驱动:", d.Name(), " ",
			"消息类型:", define.MsgTypeString(msg.Payload.MsgType()), " ",
			"发送者:", msg.Sender, " ",
			"内容:", msg.Text)
		for _, h := range wc.handlers {
			h.HandleMessage(ctx, d, msg)
		}
	}
	return nil
}

func (wc *WcBot) Router() *gin.Engine {
	if wc.serverConf.Mode != "" {
		gin.SetMode(wc.serverConf.Mode)
	}
	g := gin.New()

	g.Use(gin.Recovery())
	g.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "The incorrect API route")
	})

	hook := g.Group(wc.conf.WebhookPath, Signature(wc.conf.Token))
	{
		hook.GET("", wc.VerifyHandle)
		hook.POST("", wc.ReceiveHandle)
	}

	g.GET("/v1/health/heartbeat", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	v1 := g.Group("/v1/msg", Auth(wc.serverConf.AppKey))
	{
		v1.GET("/text", wc.TextHandle)
	}

	return g
}

func (wc *WcBot) Run() error {
	if err := wc.InitTokenCron(); err != nil {
		logrus.Error(err)
		return err
	}
	if wc.cron != nil {
		defer wc.cron.Stop()
	}

	logrus.Info("wechat webhook listening on ", wc.conf.WebhookPath)
	return http.ListenAndServe(":"+strconv.Itoa(wc.serverConf.Port), wc.Router())
}
