package wcbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"wxDriver4g/config"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

var ErrTokenUnavailable = errors.New("wechat token response carried no access_token")

const (
	tokenURL = apiBaseURL + "token?grant_type=client_credential&appid=%s&secret=%s"

	// tokens are dropped this long before WeChat's expires_in runs out
	tokenExpiryMargin = 200 * time.Second
)

type cachedToken struct {
	value   string
	expires time.Time
}

func (t cachedToken) valid(now time.Time) bool {
	return t.value != "" && now.Before(t.expires)
}

// TokenCache keeps access tokens per app id until ttl runs out.
//
// A cache from NewTokenCache is backed by an expiring LRU and is meant to
// be shared for the life of the process. A driver built without one keeps
// a single token in place and starts no goroutines.
type TokenCache struct {
	mu  sync.Mutex
	ttl time.Duration

	shared *expirable.LRU[string, cachedToken]

	appID  string
	single cachedToken
}

func NewTokenCache(ttl time.Duration) *TokenCache {
	return &TokenCache{
		ttl:    ttl,
		shared: expirable.NewLRU[string, cachedToken](16, nil, ttl),
	}
}

func newDriverTokenCache(ttl time.Duration) *TokenCache {
	return &TokenCache{ttl: ttl}
}

// Token returns the cached token for conf.AppID, exchanging the app
// credentials for a new one on a miss.
func (tc *TokenCache) Token(ctx context.Context, client HTTPClient, conf *config.WeChatConfig) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if token, ok := tc.lookup(conf.AppID); ok {
		return token, nil
	}
	return tc.fetch(ctx, client, conf)
}

// Refresh drops the cached token and fetches a new one.
func (tc *TokenCache) Refresh(ctx context.Context, client HTTPClient, conf *config.WeChatConfig) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.drop(conf.AppID)
	return tc.fetch(ctx, client, conf)
}

func (tc *TokenCache) lookup(appID string) (string, bool) {
	var token cachedToken
	if tc.shared != nil {
		token, _ = tc.shared.Get(appID)
	} else if tc.appID == appID {
		token = tc.single
	}
	if !token.valid(time.Now()) {
		return "", false
	}
	return token.value, true
}

func (tc *TokenCache) store(appID string, token cachedToken) {
	if tc.shared != nil {
		tc.shared.Add(appID, token)
		return
	}
	tc.appID = appID
	tc.single = token
}

func (tc *TokenCache) drop(appID string) {
	if tc.shared != nil {
		tc.shared.Remove(appID)
		return
	}
	if tc.appID == appID {
		tc.single = cachedToken{}
	}
}

func (tc *TokenCache) fetch(ctx context.Context, client HTTPClient, conf *config.WeChatConfig) (string, error) {
	if conf.AppID == "" || conf.AppKey == "" {
		return "", ErrNotConfigured
	}

	urlStr := fmt.Sprintf(tokenURL, url.QueryEscape(conf.AppID), url.QueryEscape(conf.AppKey))
	data, err := client.Post(ctx, urlStr, nil, nil)
	if err != nil {
		logrus.Error(err)
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	if err := checkResponse(data); err != nil {
		return "", err
	}

	resp := struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}{}
	if err := json.Unmarshal(data, &resp); err != nil {
		logrus.Error(err)
		return "", fmt.Errorf("decode access token: %w", err)
	}
	if resp.AccessToken == "" {
		return "", ErrTokenUnavailable
	}

	lifetime := tokenLifetime(tc.ttl, resp.ExpiresIn)
	tc.store(conf.AppID, cachedToken{value: resp.AccessToken, expires: time.Now().Add(lifetime)})
	logrus.WithFields(logrus.Fields{
		"appid":    conf.AppID,
		"lifetime": lifetime.String(),
	}).Debug("wechat access token refreshed")

	return resp.AccessToken, nil
}

// tokenLifetime caps ttl by the expires_in WeChat reported, less
// tokenExpiryMargin. Short-lived tokens keep half their lifetime.
func tokenLifetime(ttl time.Duration, expiresIn int) time.Duration {
	if expiresIn <= 0 {
		return ttl
	}
	limit := time.Duration(expiresIn)*time.Second - tokenExpiryMargin
	if limit <= 0 {
		limit = time.Duration(expiresIn) * time.Second / 2
	}
	if ttl <= 0 || limit < ttl {
		return limit
	}
	return ttl
}
