package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-edit/internal/consts"
	"github.com/reusedev/draw-edit/internal/modules/ai"
	"github.com/reusedev/draw-edit/internal/modules/ai/image"
	"github.com/reusedev/draw-edit/internal/modules/logs"
	"github.com/reusedev/draw-edit/internal/modules/observer"
	"github.com/reusedev/draw-edit/internal/service/http/handler/request"
	"github.com/reusedev/draw-edit/internal/service/http/handler/response"
	errResponse "github.com/reusedev/draw-edit/internal/service/http/response"
)

type ImageEditor interface {
	Edit(ctx context.Context, req image.EditRequest) (image.Result, error)
}

type ImageHandler struct {
	editor   ImageEditor
	observer observer.Observer
	maxBytes int64
}

func NewImageHandler(editor ImageEditor, obs observer.Observer, maxBytes int64) *ImageHandler {
	if obs == nil {
		obs = observer.Nop()
	}
	return &ImageHandler{
		editor:   editor,
		observer: obs,
		maxBytes: maxBytes,
	}
}

func (h *ImageHandler) EditImage(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	var form request.EditImage
	if err := c.ShouldBind(&form); err != nil {
		h.invalid(c, err)
		return
	}
	if err := form.Valid(); err != nil {
		h.invalid(c, err)
		return
	}
	req, err := form.EditRequest()
	if err != nil {
		h.invalid(c, err)
		return
	}

	result, err := h.editor.Edit(c.Request.Context(), req)
	if err == nil {
		var imageURL string
		imageURL, err = image.Translate(result)
		if err == nil {
			h.observer.Update(observer.EventEditOutcome, consts.OutcomeSuccess)
			writeJSON(c, http.StatusOK, response.NewEditImage(imageURL))
			return
		}
	}

	status, body, outcome := editFailure(err)
	logs.Logger.Error().Err(err).
		Str("request_id", c.GetString(consts.RequestIDKey)).
		Str("filename", req.Filename).
		Str("outcome", outcome.String()).
		Msg("Error editing image")
	h.observer.Update(observer.EventEditOutcome, outcome)
	writeJSON(c, status, body)
}

// invalid answers every rejected form with the same 400 body. Over-cap
// uploads are told apart in the log only.
func (h *ImageHandler) invalid(c *gin.Context, err error) {
	if limit, ok := bodyTooLarge(err); ok {
		logs.Logger.Warn().Err(err).
			Str("request_id", c.GetString(consts.RequestIDKey)).
			Int64("limit_bytes", limit).
			Int64("content_length", c.Request.ContentLength).
			Msg("edit image body too large")
	} else {
		logs.Logger.Info().Err(err).
			Str("request_id", c.GetString(consts.RequestIDKey)).
			Msg("edit image param error")
	}
	h.observer.Update(observer.EventEditOutcome, consts.OutcomeInvalid)
	writeJSON(c, http.StatusBadRequest, errResponse.ParamError)
}

func bodyTooLarge(err error) (int64, bool) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return maxErr.Limit, true
	}
	return 0, false
}

// editFailure maps an edit error to the status and body shown to the client.
// The cause itself is only logged.
func editFailure(err error) (int, gin.H, consts.EditOutcome) {
	switch {
	case errors.Is(err, ai.ErrMissingCredential):
		return http.StatusInternalServerError, errResponse.APIKeyNotConfigured, consts.OutcomeUnconfigured
	case errors.Is(err, image.ErrEmptyResult), errors.Is(err, image.ErrNoImageData):
		return http.StatusInternalServerError, errResponse.GenerateFailed, consts.OutcomeEmpty
	default:
		return http.StatusInternalServerError, errResponse.InternalError, consts.OutcomeFailed
	}
}

func writeJSON(c *gin.Context, status int, body any) {
	data, err := response.Marshal(body)
	if err != nil {
		logs.Logger.Err(err).Msg("marshal response")
		c.JSON(http.StatusInternalServerError, errResponse.InternalError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
