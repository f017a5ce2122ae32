package wcbot

import (
	"context"
	"encoding/json"
	"io"

	"github.com/mdp/qrterminal"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

// QRCode 带参数二维码
type QRCode struct {
	Ticket        string `json:"ticket"`
	ExpireSeconds int    `json:"expire_seconds"`
	URL           string `json:"url"`
}

// CreateQRCode asks WeChat for a follow QR code carrying scene. A zero
// expireSeconds creates a permanent code.
func (d *WeChatDriver) CreateQRCode(ctx context.Context, scene string, expireSeconds int) (*QRCode, error) {
	params := map[string]interface{}{
		"action_name": "QR_LIMIT_STR_SCENE",
		"action_info": map[string]interface{}{
			"scene": map[string]interface{}{"scene_str": scene},
		},
	}
	if expireSeconds > 0 {
		params["action_name"] = "QR_STR_SCENE"
		params["expire_seconds"] = expireSeconds
	}

	data, err := d.SendRequest(ctx, "qrcode/create", params, nil)
	if err != nil {
		return nil, err
	}

	var code QRCode
	if err := json.Unmarshal(data, &code); err != nil {
		logrus.Error(err)
		return nil, err
	}
	return &code, nil
}

func WriteQRCode(content, filePath string) error {
	if err := qrcode.WriteFile(content, qrcode.High, 256, filePath); err != nil {
		logrus.Error(err)
		return err
	}
	return nil
}

func PrintQRCode(content string, w io.Writer) {
	qrterminal.GenerateHalfBlock(content, qrterminal.M, w)
}
