package wcbot

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"

	"wxDriver4g/models"
	"wxDriver4g/pkg/utils"

	"github.com/sirupsen/logrus"
	"gopkg.in/h2non/filetype.v1"
)

// Media is a downloaded attachment.
type Media struct {
	Data      []byte
	MIME      string
	Extension string
}

func (m *Media) IsAudio() bool { return filetype.IsAudio(m.Data) }
func (m *Media) IsImage() bool { return filetype.IsImage(m.Data) }
func (m *Media) IsVideo() bool { return filetype.IsVideo(m.Data) }

// DownloadMedia fetches the attachment and sniffs its type from the content.
func (d *WeChatDriver) DownloadMedia(ctx context.Context, a models.Attachment) (*Media, error) {
	if a.URL() == "" {
		return nil, errors.New("attachment has no url")
	}

	data, err := d.http.Get(ctx, a.URL(), nil)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	// media/get answers failures with a json body instead of the file
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		if err := checkResponse(data); err != nil {
			return nil, err
		}
	}

	media := &Media{Data: data, MIME: "application/octet-stream", Extension: "bin"}
	kind, err := filetype.Match(data)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if kind != filetype.Unknown {
		media.MIME = kind.MIME.Value
		media.Extension = kind.Extension
	}

	return media, nil
}

// SaveMedia writes m as dir/name.<ext> and returns the path.
func SaveMedia(dir, name string, m *Media) (string, error) {
	path := filepath.Join(dir, name+"."+m.Extension)
	if err := utils.WriteFile(path, m.Data); err != nil {
		return "", err
	}
	return path, nil
}
