package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func Auto(debug bool) io.Closer {
	w := getWriter()

	logLevel := slog.LevelDebug
	if !debug {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   debug,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !debug,
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w
}

func getWriter() io.WriteCloser {
	return struct {
		io.Writer
		io.Closer
	}{
		os.Stderr,
		io.NopCloser(nil),
	}
}
