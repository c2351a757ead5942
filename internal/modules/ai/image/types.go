package image

import "strings"

// EditRequest is one user submission: the uploaded bytes and the prompt.
type EditRequest struct {
	ImageBytes []byte
	Filename   string
	Prompt     string
}

func (r EditRequest) Valid() bool {
	return len(r.ImageBytes) != 0 && strings.TrimSpace(r.Prompt) != ""
}

type Size int

const (
	Square Size = iota
	Landscape
	Portrait
)

// String returns the size string sent to the edit endpoint.
func (s Size) String() string {
	switch s {
	case Landscape:
		return "1536x1024"
	case Portrait:
		return "1024x1536"
	default:
		return "1024x1024"
	}
}

func (s Size) Name() string {
	switch s {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "square"
	}
}

// NormalizedImage is the png (always with alpha) sent upstream.
type NormalizedImage struct {
	PNG    []byte
	Width  int
	Height int
	Size   Size
}

const (
	NormalizedFilename    = "image.png"
	NormalizedContentType = "image/png"
)
