package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusedev/draw-edit/config"
	"github.com/reusedev/draw-edit/internal/consts"
	"github.com/reusedev/draw-edit/internal/modules/ai"
	"github.com/reusedev/draw-edit/internal/modules/ai/image/gpt"
	"github.com/reusedev/draw-edit/internal/modules/http_client"
	"github.com/reusedev/draw-edit/internal/modules/logs"
	"github.com/reusedev/draw-edit/internal/modules/observer"
	"github.com/reusedev/draw-edit/internal/service/http"
	"github.com/reusedev/draw-edit/internal/service/http/handler"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":8080", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger(config.GConfig.Log)

	openAI := config.GConfig.OpenAI
	if openAI.APIKey == "" {
		logs.Logger.Warn().Msg("OPENAI_API_KEY is not set, edit requests will fail")
	}
	editor := gpt.NewEditor(
		ai.Token{Token: openAI.APIKey, Desc: "default", Supplier: consts.OpenAI},
		gpt.WithBaseURL(openAI.BaseURL),
		gpt.WithModel(openAI.Model),
		gpt.WithHTTPClient(http_client.NewWithTimeout(openAI.TimeoutDuration())),
	)
	metrics := observer.NewMetrics()
	imageHandler := handler.NewImageHandler(editor, metrics, config.GConfig.Upload.MaxBytes)
	engine := http.NewEngine(imageHandler, metrics, config.GConfig.Upload.MaxBytes)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logs.Logger.Info().Str("model", editor.Model()).Msg("draw-edit starting")
	if err := http.Serve(ctx, httpPort, engine); err != nil {
		logs.Logger.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}
