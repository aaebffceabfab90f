package svg

import (
	"bytes"
	"encoding/xml"
)

// EscapeText escapes text for use in SVG character data and attributes.
func EscapeText(text string) string {
	buf := new(bytes.Buffer)
	_ = xml.EscapeText(buf, []byte(text))
	return buf.String()
}
