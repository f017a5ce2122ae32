package wcbot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

// InitTokenCron refreshes the access token before the cached one expires.
func (wc *WcBot) InitTokenCron() error {
	if !wc.IsConfigured() {
		return nil
	}

	c := cron.New()
	err := c.AddFunc(fmt.Sprintf("@every %s", refreshInterval(wc.conf.TokenTTL)), wc.refreshToken)
	if err != nil {
		logrus.Error(err)
		return err
	}

	c.Start()
	wc.cron = c
	return nil
}

func refreshInterval(ttl time.Duration) time.Duration {
	interval := ttl * 9 / 10
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval.Truncate(time.Second)
}

func (wc *WcBot) refreshToken() {
	retryTimes := 0
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := wc.tokens.Refresh(ctx, wc.httpClient, wc.conf)
		cancel()
		if err == nil {
			return
		}

		logrus.Error("wechat token refresh failed: ", err)
		if wc.serverConf.RetryTimes <= 0 || retryTimes >= wc.serverConf.RetryTimes {
			logrus.Error("wechat token refresh failed, giving up until next run")
			return
		}
		retryTimes++
		time.Sleep(time.Second)
	}
}
