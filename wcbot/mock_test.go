package wcbot

import (
	"context"
	"net/url"

	"wxDriver4g/config"

	"github.com/stretchr/testify/mock"
)

const (
	testTokenURL = "https://api.wechat.com/cgi-bin/token?grant_type=client_credential&appid=WECHAT-APP-ID&secret=WECHAT-APP-KEY"

	validVoiceXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[voice]]></MsgType>
            <Content><![CDATA[foo]]></Content>
            <MsgId>1234567890</MsgId>
            <MediaId>12345</MediaId>
            </xml>`

	invalidVoiceXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[photo]]></MsgType>
            <Content><![CDATA[foo]]></Content>
            <MsgId>1234567890</MsgId>
            </xml>`

	textXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[text]]></MsgType>
            <Content><![CDATA[hi there]]></Content>
            <MsgId>1234567890</MsgId>
            </xml>`

	subscribeXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[event]]></MsgType>
            <Event><![CDATA[subscribe]]></Event>
            </xml>`

	imageXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[image]]></MsgType>
            <PicUrl><![CDATA[http://mmbiz.qpic.cn/foo.jpg]]></PicUrl>
            <MsgId>1234567890</MsgId>
            <MediaId>12345</MediaId>
            </xml>`

	videoXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[shortvideo]]></MsgType>
            <MediaId>67890</MediaId>
            <ThumbMediaId>54321</ThumbMediaId>
            <MsgId>1234567890</MsgId>
            </xml>`

	locationXML = `<xml><ToUserName><![CDATA[to_user_name]]></ToUserName>
            <FromUserName><![CDATA[from_user_name]]></FromUserName>
            <CreateTime>1483534197</CreateTime>
            <MsgType><![CDATA[location]]></MsgType>
            <Location_X>23.134521</Location_X>
            <Location_Y>113.358803</Location_Y>
            <Scale>20</Scale>
            <Label><![CDATA[Guangzhou]]></Label>
            <MsgId>1234567890</MsgId>
            </xml>`
)

type mockHTTP struct {
	mock.Mock
}

func (m *mockHTTP) Get(ctx context.Context, urlStr string, params url.Values) ([]byte, error) {
	args := m.Called(ctx, urlStr, params)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockHTTP) Post(ctx context.Context, urlStr string, params url.Values, body interface{}) ([]byte, error) {
	args := m.Called(ctx, urlStr, params, body)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockHTTP) expectToken(token string) *mock.Call {
	return m.On("Post", mock.Anything, testTokenURL, url.Values(nil), nil).
		Return([]byte(`{"access_token":"`+token+`","expires_in":7200}`), nil).
		Once()
}

func testConf() *config.WeChatConfig {
	return &config.WeChatConfig{
		AppID:  "WECHAT-APP-ID",
		AppKey: "WECHAT-APP-KEY",
	}
}

func tokenParams(token string) url.Values {
	return url.Values{"access_token": []string{token}}
}
