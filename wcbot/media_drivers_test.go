package wcbot

import (
	"context"
	"testing"

	"wxDriver4g/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPhotoDriver(t *testing.T) {
	html := new(mockHTTP)
	d := NewWeChatPhotoDriver([]byte(imageXML), testConf(), html)

	assert.Equal(t, "WeChatPhoto", d.Name())
	assert.True(t, d.MatchesRequest())
	assert.False(t, NewWeChatPhotoDriver([]byte(validVoiceXML), nil, html).MatchesRequest())

	messages, err := d.Messages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, models.ImagePattern, messages[0].Text)
	require.Len(t, messages[0].Images, 1)
	assert.Equal(t, "http://mmbiz.qpic.cn/foo.jpg", messages[0].Images[0].URL())
	assert.Same(t, messages[0].Payload, messages[0].Images[0].Payload())
	html.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoDriver(t *testing.T) {
	html := new(mockHTTP)
	html.expectToken("SECRET_TOKEN")
	d := NewWeChatVideoDriver([]byte(videoXML), testConf(), html)

	assert.Equal(t, "WeChatVideo", d.Name())
	assert.True(t, d.MatchesRequest())
	assert.False(t, NewWeChatVideoDriver([]byte(imageXML), nil, html).MatchesRequest())

	messages, err := d.Messages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.VideoPattern, messages[0].Text)
	require.Len(t, messages[0].Videos, 1)
	assert.Equal(t, "http://file.api.wechat.com/cgi-bin/media/get?access_token=SECRET_TOKEN&media_id=67890",
		messages[0].Videos[0].URL())
	assert.Same(t, messages[0].Payload, messages[0].Videos[0].Payload())
	html.AssertExpectations(t)
}

func TestLocationDriver(t *testing.T) {
	d := NewWeChatLocationDriver([]byte(locationXML), testConf(), new(mockHTTP))

	assert.Equal(t, "WeChatLocation", d.Name())
	assert.True(t, d.MatchesRequest())

	messages, err := d.Messages(context.Background())
	require.NoError(t, err)

	msg := messages[0]
	assert.Equal(t, models.LocationPattern, msg.Text)
	require.NotNil(t, msg.Location)
	assert.InDelta(t, 23.134521, msg.Location.Latitude, 1e-9)
	assert.InDelta(t, 113.358803, msg.Location.Longitude, 1e-9)
	assert.Equal(t, 20, msg.Location.Scale)
	assert.Equal(t, "Guangzhou", msg.Location.Label)
	assert.Same(t, msg.Payload, msg.Location.Payload())
}

func TestLocationDriverBadCoordinates(t *testing.T) {
	body := `<xml><MsgType><![CDATA[location]]></MsgType><MsgId>1</MsgId><Location_X>north</Location_X></xml>`
	d := NewWeChatLocationDriver([]byte(body), testConf(), new(mockHTTP))

	require.True(t, d.MatchesRequest())
	_, err := d.Messages(context.Background())
	assert.Error(t, err)
}
