package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusedev/draw-edit/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, parseLogLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, parseLogLevel(" warn "))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel(""))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel("verbose"))
}

func TestInitLoggerWritesFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)
	path := filepath.Join(t.TempDir(), "draw-edit.log")
	InitLogger(config.Log{LogLevel: "info", LogFile: path, LogMaxSize: 1})
	Logger.Info().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"hello"`)
	require.Contains(t, string(data), `"k":"v"`)
}
