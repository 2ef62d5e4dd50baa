package img

import (
	"bytes"
	"fmt"

	"github.com/h2non/filetype"
)

var (
	riffTag = []byte("RIFF")
	webpTag = []byte("WEBPVP8")
)

const webpTagOffset = 8

// Sniff checks that data starts with a RIFF header followed by a WEBPVP8
// chunk tag at offset 8.
func Sniff(data []byte) error {
	if bytes.HasPrefix(data, riffTag) &&
		len(data) >= webpTagOffset+len(webpTag) &&
		bytes.Equal(data[webpTagOffset:webpTagOffset+len(webpTag)], webpTag) {
		return nil
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || kind.Extension == "webp" {
		return ErrInvalidFormat
	}

	return fmt.Errorf("%w: looks like %s", ErrInvalidFormat, kind.MIME.Value)
}
