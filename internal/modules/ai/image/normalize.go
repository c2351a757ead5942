package image

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/reusedev/draw-edit/tools"
)

const (
	landscapeRatio = 1.3
	portraitRatio  = 0.77
	// decoded images are held as 8-bit RGBA, about 200 MiB at this bound
	maxPixels = 50_000_000
)

var ErrDecodeImage = errors.New("decode image")

// ClassifyAspect buckets width/height into a Size. Unknown or degenerate
// dimensions fall back to Square.
func ClassifyAspect(width, height int) Size {
	if width <= 0 || height <= 0 {
		return Square
	}
	r := float64(width) / float64(height)
	switch {
	case r > landscapeRatio:
		return Landscape
	case r < portraitRatio:
		return Portrait
	default:
		return Square
	}
}

// Normalize re-encodes raw as an RGBA png and classifies its aspect ratio.
// Dimensions are read from the header first so that a small file declaring
// a huge canvas is refused before any pixel buffer is allocated.
func Normalize(raw []byte) (NormalizedImage, error) {
	if len(raw) == 0 {
		return NormalizedImage{}, fmt.Errorf("%w: empty input", ErrDecodeImage)
	}
	cfg, format, err := tools.DecodeImageConfig(raw)
	if err != nil {
		return NormalizedImage{}, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > maxPixels {
		return NormalizedImage{}, fmt.Errorf("%w: %s %dx%d exceeds %d pixels", ErrDecodeImage, format, cfg.Width, cfg.Height, maxPixels)
	}
	img, err := tools.DecodeImage(raw)
	if err != nil {
		return NormalizedImage{}, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	nrgba := tools.ToNRGBA(img)
	width, height := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	var buf bytes.Buffer
	if err := tools.EncodeRGBAPNG(&buf, nrgba); err != nil {
		return NormalizedImage{}, fmt.Errorf("encode png: %w", err)
	}
	return NormalizedImage{
		PNG:    buf.Bytes(),
		Width:  width,
		Height: height,
		Size:   ClassifyAspect(width, height),
	}, nil
}
