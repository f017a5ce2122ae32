package define

// 推送消息类型 MsgType
const (
	MsgTypeText       = "text"
	MsgTypeImage      = "image"
	MsgTypeVoice      = "voice"
	MsgTypeVideo      = "video"
	MsgTypeShortVideo = "shortvideo"
	MsgTypeLocation   = "location"
	MsgTypeLink       = "link"
	MsgTypeEvent      = "event"
)

// 事件类型 Event
const (
	EventSubscribe   = "subscribe"
	EventUnsubscribe = "unsubscribe"
	EventScan        = "SCAN"
	EventLocation    = "LOCATION"
	EventClick       = "CLICK"
	EventView        = "VIEW"
)

var (
	MsgTypeList = make(map[string]string) //消息类型
	EventList   = make(map[string]string) //事件类型
)

func init() {
	MsgTypeList = map[string]string{
		MsgTypeText:       "Text",
		MsgTypeImage:      "Image",
		MsgTypeVoice:      "Voice",
		MsgTypeVideo:      "Video",
		MsgTypeShortVideo: "ShortVideo",
		MsgTypeLocation:   "Location",
		MsgTypeLink:       "Link",
		MsgTypeEvent:      "Event",
	}
	EventList = map[string]string{
		EventSubscribe:   "Subscribe",
		EventUnsubscribe: "Unsubscribe",
		EventScan:        "Scan",
		EventLocation:    "Location",
		EventClick:       "Click",
		EventView:        "View",
	}
}

func MsgTypeString(msgType string) string {
	if typeName, ok := MsgTypeList[msgType]; ok {
		return typeName
	}
	return "Unknown"
}

func EventString(event string) string {
	if name, ok := EventList[event]; ok {
		return name
	}
	return "Unknown"
}
