package gpt

import (
	"github.com/openai/openai-go"
	"github.com/reusedev/draw-edit/internal/modules/ai/image"
)

// ParseImagesResponse reads the first item of an edit response. Only one image
// is ever requested.
func ParseImagesResponse(resp *openai.ImagesResponse) (image.Result, error) {
	if resp == nil || len(resp.Data) == 0 {
		return nil, image.ErrEmptyResult
	}
	first := resp.Data[0]
	result := image.ResultFromImage(first.B64JSON, first.URL)
	if result == nil {
		return nil, image.ErrNoImageData
	}
	return result, nil
}
