package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"regexp"
	"strings"
	"sync"

	_ "golang.org/x/image/webp"
)

// Regex to match data URL pattern
var dataURLPattern = regexp.MustCompile(`^data:(image/[^;]+);base64,(.*)$`)

// FromDataURL splits a data URL into its mime type and decoded bytes.
func FromDataURL(dataURL string) (mimeType string, data []byte, err error) {
	matches := dataURLPattern.FindStringSubmatch(dataURL)
	if len(matches) != 3 {
		return "", nil, fmt.Errorf("not an image data URL")
	}
	data, err = base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return "", nil, err
	}
	return matches[1], data, nil
}

func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// IsDataURL reports whether s looks like an image data URL. It is a
// cheap prefix check; FromDataURL does the real parsing.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}

var readerPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Reader{}
	},
}

// GetImageSize reports the pixel dimensions of a still held as raw
// bytes. PNG, JPEG, GIF and WebP are recognized; providers differ in
// what they return.
func GetImageSize(data []byte) (width int, height int, err error) {
	reader := readerPool.Get().(*bytes.Reader)
	defer readerPool.Put(reader)
	reader.Reset(data)

	img, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, err
	}
	return img.Width, img.Height, nil
}
