package gpt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/reusedev/draw-edit/internal/consts"
	"github.com/reusedev/draw-edit/internal/modules/ai"
	"github.com/reusedev/draw-edit/internal/modules/ai/image"
	"github.com/reusedev/draw-edit/internal/modules/http_client"
	"github.com/reusedev/draw-edit/internal/modules/logs"
	"github.com/reusedev/draw-edit/tools"
	"github.com/rs/zerolog"
)

// Editor sends one image edit per call to the OpenAI images API.
type Editor struct {
	token  ai.Token
	model  consts.Model
	client openai.Client
}

func NewEditor(token ai.Token, opts ...Option) *Editor {
	o := &options{
		model:      consts.GPTImage1,
		httpClient: http_client.New(),
	}
	for _, opt := range opts {
		opt(o)
	}
	baseURL := tools.BaseURL(o.baseURL)
	if baseURL == "" {
		baseURL = token.GetSupplier().BaseURL()
	}
	if baseURL == "" {
		baseURL = consts.OpenAIBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(token.Token),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(o.httpClient.HttpClient),
		option.WithMaxRetries(0),
	)
	return &Editor{
		token:  token,
		model:  o.model,
		client: client,
	}
}

func (e *Editor) Model() string {
	return e.model.String()
}

// Edit checks the credential, normalizes the upload and issues a single edit
// request. Failures are never retried.
func (e *Editor) Edit(ctx context.Context, req image.EditRequest) (image.Result, error) {
	if !e.token.Valid() {
		return nil, ai.ErrMissingCredential
	}
	normalized, err := image.Normalize(req.ImageBytes)
	if err != nil {
		return nil, err
	}

	params := openai.ImageEditParams{
		Image: openai.ImageEditParamsImageUnion{
			OfFile: openai.File(bytes.NewReader(normalized.PNG), image.NormalizedFilename, image.NormalizedContentType),
		},
		Prompt: req.Prompt,
		Model:  openai.ImageModel(e.model),
		N:      openai.Int(1),
		Size:   openai.ImageEditParamsSize(normalized.Size.String()),
	}

	reqAt := time.Now()
	resp, err := e.client.Images.Edit(ctx, params)
	var event *zerolog.Event
	if err != nil {
		event = logs.Logger.Warn().Err(err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			event = event.Int("status_code", apiErr.StatusCode)
		}
	} else {
		event = logs.Logger.Info()
	}
	event.
		Str("supplier", e.token.GetSupplier().String()).
		Str("token_desc", e.token.Desc).
		Str("model", e.model.String()).
		Str("original_filename", req.Filename).
		Str("size", normalized.Size.String()).
		Str("aspect", normalized.Size.Name()).
		Int("width", normalized.Width).
		Int("height", normalized.Height).
		Dur("req_consume_ms", time.Since(reqAt)).
		Msg("image edit request")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", image.ErrUpstreamCall, err)
	}
	return ParseImagesResponse(resp)
}
