package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent(t *testing.T) {
	e := NewEvent(map[string]string{
		"ToUserName":   "gh_123",
		"FromUserName": "o6_bmjrPTlm6",
		"CreateTime":   "1483534197",
		"MsgType":      "voice",
		"MsgId":        "1234567890",
		"MediaId":      "12345",
	}, []string{"ToUserName", "FromUserName", "CreateTime", "MsgType", "MsgId", "MediaId"})

	assert.Equal(t, "voice", e.MsgType())
	assert.Equal(t, "1234567890", e.MsgID())
	assert.Equal(t, "12345", e.MediaID())
	assert.Equal(t, "gh_123", e.ToUserName())
	assert.Equal(t, "o6_bmjrPTlm6", e.FromUserName())
	assert.Equal(t, time.Unix(1483534197, 0), e.CreateTime())
	assert.True(t, e.Has("MediaId"))
	assert.False(t, e.Has("PicUrl"))
	assert.Len(t, e.Keys(), 6)

	all := e.All()
	all["MsgType"] = "text"
	assert.Equal(t, "voice", e.MsgType())
}

func TestNilEvent(t *testing.T) {
	var e *Event

	assert.Equal(t, "", e.MsgType())
	assert.False(t, e.Has("MsgId"))
	assert.Nil(t, e.Keys())
	assert.Empty(t, e.All())
	assert.True(t, e.CreateTime().IsZero())
}

func TestAttachments(t *testing.T) {
	e := NewEvent(nil, nil)

	var atts = []Attachment{
		NewAudio("a", e),
		NewImage("i", e),
		NewVideo("v", e),
		NewFile("f", e),
		NewLocation(23.1, 113.3, e),
	}
	types := []string{"audio", "image", "video", "file", "location"}

	for i, a := range atts {
		assert.Equal(t, types[i], a.Type())
		assert.Same(t, e, a.Payload())
	}
	assert.Equal(t, "a", atts[0].URL())
	assert.Equal(t, "", atts[4].URL())
}
