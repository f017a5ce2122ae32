package httpClient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is the transport the drivers talk to the WeChat API with.
type Client struct {
	headers map[string]string
	client  http.Client
}

func New(headers map[string]string) *Client {
	httpClient := new(Client)
	httpClient.headers = make(map[string]string)
	for k, v := range headers {
		httpClient.headers[k] = v
	}
	httpClient.client = http.Client{Timeout: 30 * time.Second}

	return httpClient
}

// Post sends body to urlStr. A nil body sends an empty request, []byte and
// string bodies are sent verbatim and anything else is encoded as JSON.
func (h *Client) Post(ctx context.Context, urlStr string, params url.Values, body interface{}) ([]byte, error) {
	reader, isJSON, err := encodeBody(body)
	if err != nil {
		logrus.Error(err.Error())
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, withParams(urlStr, params), reader)
	if err != nil {
		logrus.Error(err.Error())
		return nil, err
	}
	if isJSON {
		req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	}

	return h.do(req)
}

func (h *Client) Get(ctx context.Context, urlStr string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, withParams(urlStr, params), nil)
	if err != nil {
		logrus.Error(err.Error())
		return nil, err
	}

	return h.do(req)
}

func (h *Client) do(req *http.Request) ([]byte, error) {
	for k, v := range h.headers {
		req.Header.Set(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logrus.Error(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.Error(err.Error())
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
		logrus.Error(err.Error())
		return out, err
	}

	return out, nil
}

func (h *Client) SetHeader(header map[string]string) {
	for key, value := range header {
		h.headers[key] = value
	}
}

func (h *Client) GetHeader() map[string]string {
	return h.headers
}

func (h *Client) DelHeader(header map[string]string) {
	for key := range header {
		delete(h.headers, key)
	}
}

func withParams(urlStr string, params url.Values) string {
	if len(params) == 0 {
		return urlStr
	}
	if strings.Contains(urlStr, "?") {
		return urlStr + "&" + params.Encode()
	}
	return urlStr + "?" + params.Encode()
}

func encodeBody(body interface{}) (io.Reader, bool, error) {
	switch v := body.(type) {
	case nil:
		return nil, false, nil
	case []byte:
		return bytes.NewReader(v), false, nil
	case string:
		return strings.NewReader(v), false, nil
	}

	// WeChat expects raw UTF-8 and unescaped markup in message content.
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, false, err
	}
	return buf, true, nil
}
