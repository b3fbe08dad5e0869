package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// New builds the application logger. When mirror is non-nil every record is also written to it.
func New(level string, mirror io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	if mirror != nil {
		logger.SetOutput(io.MultiWriter(os.Stdout, mirror))
	}
	return logger
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// For returns an entry tagged with the request id carried by ctx, if any.
func For(ctx context.Context, logger *logrus.Logger) *logrus.Entry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return logger.WithField("request_id", id)
	}
	return logrus.NewEntry(logger)
}
