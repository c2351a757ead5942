package image

import (
	"errors"
	"fmt"
)

const DataURLPrefix = "data:image/png;base64,"

var (
	ErrEmptyResult  = errors.New("empty result list")
	ErrNoImageData  = errors.New("no usable image data received")
	ErrUpstreamCall = errors.New("image edit request failed")
)

// Result is what the edit endpoint returned for one image: either InlineData
// or RemoteURL.
type Result interface {
	isResult()
}

type InlineData struct {
	B64 string
}

type RemoteURL struct {
	URL string
}

func (InlineData) isResult() {}
func (RemoteURL) isResult()  {}

// ResultFromImage picks the variant for one upstream item. Inline data wins
// when both fields are set; nil means neither was.
func ResultFromImage(b64, url string) Result {
	switch {
	case b64 != "":
		return InlineData{B64: b64}
	case url != "":
		return RemoteURL{URL: url}
	default:
		return nil
	}
}

// Translate turns a Result into something a browser can use as an img src.
func Translate(r Result) (string, error) {
	switch v := r.(type) {
	case InlineData:
		if v.B64 == "" {
			return "", ErrNoImageData
		}
		return DataURLPrefix + v.B64, nil
	case RemoteURL:
		if v.URL == "" {
			return "", ErrNoImageData
		}
		return v.URL, nil
	case nil:
		return "", ErrNoImageData
	default:
		return "", fmt.Errorf("%w: unexpected result %T", ErrNoImageData, r)
	}
}
