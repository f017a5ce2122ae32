package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sirupsen/logrus"

	"github.com/spf13/viper"
)

type AppConfig struct {
	ServerConf *ServerConfig
	WeChatConf *WeChatConfig
}

type ServerConfig struct {
	Mode       string `json:"mode"`
	Port       int    `json:"port"`
	AppKey     string `json:"appKey"`
	RetryTimes int    `json:"retryTimes"`
	Debug      bool   `json:"debug"`
}

// WeChatConfig holds the official account credentials the drivers need.
type WeChatConfig struct {
	AppID       string        `json:"app_id"`
	AppKey      string        `json:"app_key"`
	Token       string        `json:"token"`
	TokenTTL    time.Duration `json:"tokenTTL"`
	WebhookPath string        `json:"webhookPath"`
	QrDir       string        `json:"qrDir"`
	MediaDir    string        `json:"mediaDir"`
}

const (
	defaultTokenTTL    = 7000 * time.Second
	defaultWebhookPath = "/wechat"
)

var (
	Config AppConfig
)

// Init reads the config file at path (or ./config.yaml when path is empty),
// sets up logging and starts watching the file for changes.
func Init(path string) error {
	if err := initConfig(path); err != nil {
		return err
	}
	initLog()
	watchConfig()

	Config = AppConfig{
		ServerConf: &ServerConfig{
			Mode:       viper.GetString("runmode"),
			Port:       viper.GetInt("addr"),
			AppKey:     viper.GetString("appKey"),
			RetryTimes: viper.GetInt("retryTimes"),
			Debug:      viper.GetBool("debug"),
		},
		WeChatConf: &WeChatConfig{
			AppID:       viper.GetString("wechat.app_id"),
			AppKey:      viper.GetString("wechat.app_key"),
			Token:       viper.GetString("wechat.token"),
			TokenTTL:    time.Duration(viper.GetInt("wechat.tokenTTL")) * time.Second,
			WebhookPath: viper.GetString("wechat.webhookPath"),
			QrDir:       viper.GetString("wechat.qrDir"),
			MediaDir:    viper.GetString("wechat.mediaDir"),
		},
	}
	Config.WeChatConf.Normalize()

	if Config.ServerConf.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if Config.ServerConf.Port == 0 {
		return errors.New("addr is required")
	}

	return nil
}

// Normalize fills in defaults for unset values.
func (w *WeChatConfig) Normalize() {
	if w.TokenTTL <= 0 {
		w.TokenTTL = defaultTokenTTL
	}
	if w.WebhookPath == "" {
		w.WebhookPath = defaultWebhookPath
	}
}

func initConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("wxDriver")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	return nil
}

func watchConfig() {
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infof("Config file changed: %s", e.Name)
	})
}

func initLog() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(true)
}
