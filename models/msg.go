package models

import (
	"strconv"
	"time"
)

// Event is a parsed WeChat push. Messages and their attachments share the
// same *Event as payload.
type Event struct {
	fields map[string]string
	keys   []string
}

func NewEvent(fields map[string]string, keys []string) *Event {
	if fields == nil {
		fields = make(map[string]string)
	}
	return &Event{fields: fields, keys: keys}
}

func (e *Event) Get(key string) string {
	if e == nil {
		return ""
	}
	return e.fields[key]
}

func (e *Event) Has(key string) bool {
	if e == nil {
		return false
	}
	_, ok := e.fields[key]
	return ok
}

// Keys returns the field names in document order.
func (e *Event) Keys() []string {
	if e == nil {
		return nil
	}
	return e.keys
}

// All returns a copy of the fields.
func (e *Event) All() map[string]string {
	out := make(map[string]string)
	if e == nil {
		return out
	}
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

func (e *Event) MsgType() string      { return e.Get("MsgType") }
func (e *Event) MsgID() string        { return e.Get("MsgId") }
func (e *Event) MediaID() string      { return e.Get("MediaId") }
func (e *Event) ToUserName() string   { return e.Get("ToUserName") }
func (e *Event) FromUserName() string { return e.Get("FromUserName") }

// CreateTime returns the zero time when the field is missing or malformed.
func (e *Event) CreateTime() time.Time {
	sec, err := strconv.ParseInt(e.Get("CreateTime"), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
