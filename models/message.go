package models

// IncomingMessage 统一的收到消息结构
type IncomingMessage struct {
	Text      string
	Sender    string // 用户 openid (FromUserName)
	Recipient string // 公众号 (ToUserName)
	Payload   *Event

	Audio    []*Audio
	Images   []*Image
	Videos   []*Video
	Files    []*File
	Location *Location
}

func NewIncomingMessage(text, sender, recipient string, payload *Event) *IncomingMessage {
	return &IncomingMessage{
		Text:      text,
		Sender:    sender,
		Recipient: recipient,
		Payload:   payload,
	}
}

// OutgoingMessage is a reply with an optional attachment.
type OutgoingMessage struct {
	Text       string
	Attachment Attachment
}

// Question is rendered as plain text since WeChat customer-service messages
// carry no buttons.
type Question struct {
	Text    string
	Buttons []string
}

// GenericEvent carries non-message pushes (subscribe, CLICK, ...).
type GenericEvent struct {
	Name    string
	Payload *Event
}
