package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/reusedev/draw-edit/config"
	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
)

func InitLogger(cfg config.Log) {
	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
			Compress:   true,
		})
	}
	// without a log file, or at debug level, also write to the console
	if cfg.LogFile == "" || level <= zerolog.DebugLevel {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
	}

	Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
}

// parseLogLevel defaults to info for unknown values.
func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
