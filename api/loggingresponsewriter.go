package api

import (
	"log/slog"
	"net/http"
)

// loggingResponseWriter records what was sent so the access log can report it.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	responseSize int
	wroteHeader  bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (lrw *loggingResponseWriter) WriteHeader(statusCode int) {
	if !lrw.wroteHeader {
		lrw.statusCode = statusCode
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(statusCode)
}

func (lrw *loggingResponseWriter) Write(data []byte) (int, error) {
	lrw.wroteHeader = true
	size, err := lrw.ResponseWriter.Write(data)
	lrw.responseSize += size
	return size, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (lrw *loggingResponseWriter) Unwrap() http.ResponseWriter {
	return lrw.ResponseWriter
}

// level is what the access log line is written at. Server errors stand out
// from client mistakes.
func (lrw *loggingResponseWriter) level() slog.Level {
	switch {
	case lrw.statusCode >= http.StatusInternalServerError:
		return slog.LevelError
	case lrw.statusCode >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
