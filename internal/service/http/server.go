package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-edit/internal/modules/logs"
	"github.com/reusedev/draw-edit/internal/modules/observer"
	"github.com/reusedev/draw-edit/internal/service/http/handler"
	"github.com/reusedev/draw-edit/internal/service/http/middleware"
	"github.com/reusedev/draw-edit/internal/service/http/response"
)

const shutdownTimeout = 10 * time.Second

func NewEngine(image *handler.ImageHandler, metrics *observer.Metrics, maxUploadBytes int64) *gin.Engine {
	e := gin.New()
	if maxUploadBytes > 0 {
		e.MaxMultipartMemory = maxUploadBytes
	}
	initRouter(e, image, metrics)
	return e
}

func initRouter(e *gin.Engine, image *handler.ImageHandler, metrics *observer.Metrics) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	if metrics != nil {
		e.Use(middleware.Metrics(metrics))
		e.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.NotFound)
	})
	e.GET("/healthz", handler.Healthz)

	api := e.Group("/api")
	{
		api.POST("/edit-image", image.EditImage)
	}
}

// Serve blocks until ctx is cancelled or the listener fails.
func Serve(ctx context.Context, addr string, e *gin.Engine) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: e,
	}
	errCh := make(chan error, 1)
	go func() {
		logs.Logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
