package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-account-gate/internal/logger"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies before validation sees them and
// compresses responses for clients that list gzip in Accept-Encoding.
//
// Responses without a body (204, 304, HEAD, or a handler that only sets a
// status) are never wrapped in a gzip stream.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasCoding(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				logger.FromRequest(r).Err(err).Msg("gzip request body rejected")
				writeFailure(w, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")

		if !hasCoding(r.Header.Get("Accept-Encoding"), "gzip") || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// hasCoding reports whether the comma-separated coding list header names
// coding with a non-zero quality.
func hasCoding(header, coding string) bool {
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), coding) {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}

func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}

	return &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			zr.Close()
			body.Close()
			gzipReaders.Put(zr)
		},
	}, nil
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter holds the status back until the first body write, so a
// response that never writes a body is sent without gzip framing.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	status      int
	wroteHeader bool
	sentHeader  bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.zw == nil && !w.sentHeader {
		if bodyAllowed(w.status) {
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Del("Content-Length")
			w.zw = gzipWriters.Get().(*gzip.Writer)
			w.zw.Reset(w.ResponseWriter)
		}
		w.sendHeader()
	}

	if w.zw == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) sendHeader() {
	w.sentHeader = true
	w.ResponseWriter.WriteHeader(w.status)
}

// finish sends a held-back status or flushes the gzip trailer and returns
// the writer to the pool.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		if w.wroteHeader && !w.sentHeader {
			w.sendHeader()
		}
		return
	}
	w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified && status >= http.StatusOK
}
