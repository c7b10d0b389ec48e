package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/items-handler/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure inicializa o logger global a partir da configuração e o devolve.
// O logger também vira o default de contexto, usado por zerolog.Ctx quando
// a requisição ainda não tem logger próprio.
func Configure(cfg config.LoggingConf, service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON para produção, Console "bonito" para local se solicitado
	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(output).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}
	logger := ctx.Logger()

	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}
