package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Config represents the configs used by logger.
type Config struct {
	Level string `yaml:"level"`
}

var (
	global zerolog.Logger
	once   sync.Once
)

func init() {
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// InitGlobalLogger replaces the default logger with one built from config.
func InitGlobalLogger(cfg *Config) {
	once.Do(func() {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil || cfg.Level == "" {
			level = zerolog.InfoLevel
		}

		global = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	})
}

func Debug(msg string, keyvals ...any) {
	withFields(global.Debug(), keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	withFields(global.Info(), keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	withFields(global.Warn(), keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	withFields(global.Error(), keyvals).Msg(msg)
}

func withFields(e *zerolog.Event, keyvals []any) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keyvals[i+1])
	}

	return e
}
