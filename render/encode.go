package render

import (
	"encoding/base64"
	"fmt"
	"html"
)

// DataURI returns the PNG bytes as a "data:image/png;base64,..." URI.
func DataURI(pngData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
}

// ImgTag returns an HTML <img> element embedding the PNG bytes.
func ImgTag(pngData []byte, alt string) string {
	return fmt.Sprintf("<img src='%s' alt='%s' />", DataURI(pngData), html.EscapeString(alt))
}
