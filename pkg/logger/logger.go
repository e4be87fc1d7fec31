package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config logger seçenekleri.
type Config struct {
	Env   string // development -> okunur konsol; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger zerolog üzerine ince bir sarmalayıcı; enjeksiyon ve tutarlılık için.
type Logger struct {
	zl zerolog.Logger
}

// New yapılandırılmış bir logger oluşturur. Development'ta okunur konsol
// çıktısı, production'da JSON kullanılır.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Global zerolog'u da yönlendir; onu kullanan kütüphaneler için.
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
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
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error zerolog'a delege edilir.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With sabit alanlı bir alt logger başlatır.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog iç logger'ı döner; doğrudan API gerektiğinde kullanılır.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
