package logger

import (
	"testing"

	"github.com/raywall/items-handler/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Run("Default Level Info", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true}, "items-handler")
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "DEBUG"}, "")
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("Invalid Level falls back to Info", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "verbose"}, "")
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		logger := Configure(config.LoggingConf{Enabled: false, Format: "console"}, "items-handler")
		// io.Discard: só garante que não panica
		logger.Info().Msg("teste")
	})

	t.Run("Becomes default context logger", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: false}, "items-handler")
		assert.NotNil(t, zerolog.DefaultContextLogger)
	})
}
