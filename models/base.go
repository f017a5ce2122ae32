package models

const (
	AudioPattern    = "%%%_AUDIO_%%%"
	ImagePattern    = "%%%_IMAGE_%%%"
	VideoPattern    = "%%%_VIDEO_%%%"
	FilePattern     = "%%%_FILE_%%%"
	LocationPattern = "%%%_LOCATION_%%%"
)

type Attachment interface {
	Type() string
	URL() string
	Payload() *Event
}

type attachment struct {
	url     string
	payload *Event
}

func (a attachment) URL() string     { return a.url }
func (a attachment) Payload() *Event { return a.payload }

type Audio struct{ attachment }

func NewAudio(url string, payload *Event) *Audio {
	return &Audio{attachment{url: url, payload: payload}}
}

func (*Audio) Type() string { return "audio" }

type Image struct {
	attachment
	Title string
}

func NewImage(url string, payload *Event) *Image {
	return &Image{attachment: attachment{url: url, payload: payload}}
}

func (*Image) Type() string { return "image" }

type Video struct{ attachment }

func NewVideo(url string, payload *Event) *Video {
	return &Video{attachment{url: url, payload: payload}}
}

func (*Video) Type() string { return "video" }

type File struct{ attachment }

func NewFile(url string, payload *Event) *File {
	return &File{attachment{url: url, payload: payload}}
}

func (*File) Type() string { return "file" }

// Location 地理位置, Location_X 为纬度, Location_Y 为经度
type Location struct {
	Latitude  float64
	Longitude float64
	Scale     int
	Label     string
	payload   *Event
}

func NewLocation(lat, lng float64, payload *Event) *Location {
	return &Location{Latitude: lat, Longitude: lng, payload: payload}
}

func (*Location) Type() string      { return "location" }
func (*Location) URL() string       { return "" }
func (l *Location) Payload() *Event { return l.payload }
