package request

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/reusedev/draw-edit/internal/modules/ai/image"
)

type EditImage struct {
	Image  *multipart.FileHeader `form:"image"`
	Prompt string                `form:"prompt"`
}

func (e *EditImage) Valid() error {
	if e.Image == nil || e.Image.Size == 0 {
		return fmt.Errorf("image is required")
	}
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

// EditRequest reads the uploaded file. Call Valid first.
func (e *EditImage) EditRequest() (image.EditRequest, error) {
	f, err := e.Image.Open()
	if err != nil {
		return image.EditRequest{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return image.EditRequest{}, err
	}
	ret := image.EditRequest{
		ImageBytes: data,
		Filename:   e.Image.Filename,
		Prompt:     e.Prompt,
	}
	if !ret.Valid() {
		return image.EditRequest{}, fmt.Errorf("image is empty")
	}
	return ret, nil
}
