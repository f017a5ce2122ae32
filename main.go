package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"wxDriver4g/config"
	"wxDriver4g/models"
	"wxDriver4g/pkg/define"
	"wxDriver4g/wcbot"

	"github.com/sirupsen/logrus"
)

var (
	Bot *wcbot.WcBot

	configFile = flag.String("config", "", "Path to the config file")
	qrScene    = flag.String("qrcode", "", "Print a follow QR code for this scene and exit")
)

type WeChatBot struct {
	mediaDir string
}

func (w *WeChatBot) HandleMessage(ctx context.Context, d wcbot.Driver, msg *models.IncomingMessage) {
	logrus.Debug(
		"驱动:", d.Name(), " ",
		"消息类型:", define.MsgTypeString(msg.Payload.MsgType()), " ",
		"发送者:", msg.Sender, " ",
		"内容:", msg.Text)

	if w.mediaDir == "" || len(msg.Audio) == 0 {
		return
	}

	//保存语音到本地
	downloader, ok := d.(interface {
		DownloadMedia(context.Context, models.Attachment) (*wcbot.Media, error)
	})
	if !ok {
		return
	}
	media, err := downloader.DownloadMedia(ctx, msg.Audio[0])
	if err != nil {
		logrus.Error(err)
		return
	}
	path, err := wcbot.SaveMedia(w.mediaDir, msg.Payload.MediaID(), media)
	if err != nil {
		logrus.Error(err)
		return
	}
	logrus.Info("voice saved to ", path)
}

func (w *WeChatBot) HandleEvent(ctx context.Context, d wcbot.Driver, event *models.GenericEvent) {
	if event.Name != define.EventSubscribe {
		return
	}

	target := &models.IncomingMessage{Sender: event.Payload.FromUserName()}
	if err := wcbot.Reply(ctx, d, "welcome", target); err != nil {
		logrus.Error(err)
	}
}

func printQRCode(scene string) error {
	code, err := Bot.NewDriver().CreateQRCode(context.Background(), scene, 0)
	if err != nil {
		return err
	}

	wcbot.PrintQRCode(code.URL, os.Stdout)

	dir := config.Config.WeChatConf.QrDir
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	return wcbot.WriteQRCode(code.URL, filepath.Join(dir, scene+".png"))
}

func main() {
	flag.Parse()

	if err := config.Init(*configFile); err != nil {
		panic(err)
	}

	Bot = wcbot.New(config.Config.ServerConf, config.Config.WeChatConf)

	if *qrScene != "" {
		if err := printQRCode(*qrScene); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	Bot.AddHandler(&WeChatBot{mediaDir: config.Config.WeChatConf.MediaDir})

	if err := Bot.Run(); err != nil {
		logrus.Fatal(err)
	}
}
