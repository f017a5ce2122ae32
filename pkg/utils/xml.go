package utils

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

var ErrNoXMLRoot = errors.New("xml root element not found")

// XMLToMap flattens a WeChat push body into its field values.
//
//	<xml><ToUserName><![CDATA[gh_123]]></ToUserName><MsgId>1</MsgId></xml>
//
// becomes {"ToUserName": "gh_123", "MsgId": "1"}. Nested elements are keyed
// by their dotted path, e.g. "ScanCodeInfo.ScanResult". The returned slice
// keeps document order.
func XMLToMap(data []byte) (map[string]string, []string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, err
	}

	root := doc.SelectElement("xml")
	if root == nil {
		return nil, nil, ErrNoXMLRoot
	}

	fields := make(map[string]string)
	keys := make([]string, 0)
	walk(root, "", fields, &keys)

	return fields, keys, nil
}

func walk(el *etree.Element, prefix string, fields map[string]string, keys *[]string) {
	for _, child := range el.ChildElements() {
		key := child.Tag
		if prefix != "" {
			key = prefix + "." + key
		}

		if len(child.ChildElements()) > 0 {
			walk(child, key, fields, keys)
			continue
		}

		if _, ok := fields[key]; !ok {
			*keys = append(*keys, key)
		}
		fields[key] = strings.TrimSpace(child.Text())
	}
}
