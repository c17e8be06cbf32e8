package api

import "net/http"

// loggingResponseWriter remembers what was sent so the access log and the
// request metrics can report it.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	responseSize  int
	headerWritten bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (lrw *loggingResponseWriter) WriteHeader(statusCode int) {
	if lrw.headerWritten {
		return
	}
	lrw.headerWritten = true
	lrw.statusCode = statusCode
	lrw.ResponseWriter.WriteHeader(statusCode)
}

func (lrw *loggingResponseWriter) Write(data []byte) (int, error) {
	lrw.headerWritten = true
	size, err := lrw.ResponseWriter.Write(data)
	lrw.responseSize += size
	return size, err
}

func (lrw *loggingResponseWriter) Unwrap() http.ResponseWriter {
	return lrw.ResponseWriter
}
