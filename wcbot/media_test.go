package wcbot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"wxDriver4g/models"
	"wxDriver4g/pkg/httpClient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestDownloadAndSaveMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	d := NewWeChatDriver(nil, testConf(), httpClient.New(nil))
	media, err := d.DownloadMedia(context.Background(), models.NewImage(srv.URL+"/foo.jpg", nil))
	require.NoError(t, err)

	assert.Equal(t, "image/png", media.MIME)
	assert.Equal(t, "png", media.Extension)
	assert.True(t, media.IsImage())
	assert.False(t, media.IsAudio())

	dir := t.TempDir()
	path, err := SaveMedia(dir, "12345", media)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "12345.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestDownloadMediaUnknownType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain bytes"))
	}))
	defer srv.Close()

	d := NewWeChatDriver(nil, testConf(), httpClient.New(nil))
	media, err := d.DownloadMedia(context.Background(), models.NewAudio(srv.URL, nil))
	require.NoError(t, err)

	assert.Equal(t, "application/octet-stream", media.MIME)
	assert.Equal(t, "bin", media.Extension)
}

func TestDownloadMediaAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errcode":40007,"errmsg":"invalid media_id"}`))
	}))
	defer srv.Close()

	d := NewWeChatDriver(nil, testConf(), httpClient.New(nil))
	_, err := d.DownloadMedia(context.Background(), models.NewAudio(srv.URL, nil))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40007, apiErr.Code)

	_, err = d.DownloadMedia(context.Background(), models.NewLocation(1, 2, nil))
	assert.Error(t, err)
}
