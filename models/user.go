package models

/*
*
user/info 返回

	{
	    "subscribe": 1,
	    "openid": "o6_bmjrPTlm6_2sgVt7hMZOPfL2M",
	    "language": "zh_CN",
	    "subscribe_time": 1382694957,
	    "unionid": " o6_bmasdasdsad6_2sgVt7hMZOPfL",
	    "remark": "",
	    "groupid": 0,
	    "tagid_list":[128,2],
	    "subscribe_scene": "ADD_SCENE_QR_CODE",
	    "qr_scene": 98765,
	    "qr_scene_str": ""
	}
*/
type UserInfo struct {
	Subscribe      int    `json:"subscribe"`
	OpenID         string `json:"openid"`
	Nickname       string `json:"nickname"`
	Sex            int    `json:"sex"`
	Language       string `json:"language"`
	City           string `json:"city"`
	Province       string `json:"province"`
	Country        string `json:"country"`
	HeadImgURL     string `json:"headimgurl"`
	SubscribeTime  int64  `json:"subscribe_time"`
	UnionID        string `json:"unionid"`
	Remark         string `json:"remark"`
	GroupID        int    `json:"groupid"`
	TagIDList      []int  `json:"tagid_list"`
	SubscribeScene string `json:"subscribe_scene"`
	QrScene        int    `json:"qr_scene"`
	QrSceneStr     string `json:"qr_scene_str"`
}

// User 统一的用户结构
type User struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
	Info      UserInfo
}
