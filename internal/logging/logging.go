package logging

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"

	"selectkit/internal/config"
)

// Setup redirects the standard logger to a rotating file. The returned
// closer flushes and closes the file. An empty file name discards logs,
// since the terminal belongs to the picker.
func Setup(cfg config.LogConfig) io.Closer {
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
