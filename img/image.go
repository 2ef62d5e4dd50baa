package img

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat    = errors.New("invalid file")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDecode           = errors.New("decode failed")
)

// Features are the bitstream properties a codec reports before decoding.
type Features struct {
	Width    int
	Height   int
	HasAlpha bool
}

// Channels returns the number of bytes per decoded pixel.
func (f Features) Channels() int {
	if f.HasAlpha {
		return 4
	}
	return 3
}

// Size returns the expected length of a decoded pixel buffer.
func (f Features) Size() int { return f.Width * f.Height * f.Channels() }

type Codec interface {
	Features(data []byte) (Features, error)
	// Decode returns tightly packed RGBA pixels when f.HasAlpha is set and
	// RGB otherwise, top row first.
	Decode(data []byte, f Features) ([]byte, error)
}

// DefaultCodec is used by Load when no codec is given.
var DefaultCodec Codec = WebP{}

// Image is a decoded image ready for texture upload.
type Image struct {
	Features
	Pix []byte
}

// Release drops the pixel buffer. The image must not be uploaded again.
func (i *Image) Release() { i.Pix = nil }

// Load reads and decodes the file at path. The codec is never consulted
// for files that do not carry a WebP signature.
func Load(path string, c Codec) (*Image, error) {
	data, err := Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return Decode(data, c)
}

func Decode(data []byte, c Codec) (*Image, error) {
	if c == nil {
		c = DefaultCodec
	}

	if err := Sniff(data); err != nil {
		return nil, err
	}

	f, err := c.Features(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf(
			"%w: bad dimensions %dx%d",
			ErrInsufficientData,
			f.Width,
			f.Height,
		)
	}

	pix, err := c.Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if pix == nil {
		return nil, fmt.Errorf("%w: no pixel data", ErrDecode)
	}
	if len(pix) != f.Size() {
		return nil, fmt.Errorf(
			"%w: got %d bytes, want %d",
			ErrDecode,
			len(pix),
			f.Size(),
		)
	}

	return &Image{Features: f, Pix: pix}, nil
}
