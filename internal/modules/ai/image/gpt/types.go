package gpt

import (
	"github.com/reusedev/draw-edit/internal/consts"
	"github.com/reusedev/draw-edit/internal/modules/http_client"
)

type Option func(o *options)

type options struct {
	baseURL    string
	model      consts.Model
	httpClient *http_client.HttpClient
}

// WithBaseURL points the editor at an OpenAI compatible endpoint,
// e.g. "https://api.openai.com/v1/".
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = consts.Model(model)
		}
	}
}

func WithHTTPClient(client *http_client.HttpClient) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}
