// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		seen = w.Header().Get(traceIDHeader)
	})

	t.Run("reuses client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
		assert.Equal(t, "trace-123", seen)
		assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	})

	t.Run("generates uuid when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, strings.Repeat("x", maxTraceIDLength+1))
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})
}

// ─────────────────────────────────────────────
// withLogging / responseWriter
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", http.StatusOK, "hello", "info"},
		{"not found", http.StatusNotFound, "{}", "info"},
		{"server error", http.StatusInternalServerError, "boom", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			out := buf.String()
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, out, `"method":"POST"`)
			assert.Contains(t, out, `"uri":"/api/blogs"`)
			assert.Contains(t, out, `"size":`+strconv.Itoa(len(tt.body)))
		})
	}
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200 on write", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec}

		n, err := rw.Write([]byte("abc"))

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, http.StatusOK, rw.status)
		assert.Equal(t, 3, rw.size)
	})

	t.Run("second WriteHeader ignored", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec}

		rw.WriteHeader(http.StatusCreated)
		rw.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, rw.status)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("size accumulates", func(t *testing.T) {
		rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

		rw.Write([]byte("ab"))
		rw.Write([]byte("cde"))

		assert.Equal(t, 5, rw.size)
		assert.NotNil(t, rw.Unwrap())
	})
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	t.Run("compresses response when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(got))
	})

	t.Run("plain response otherwise", func(t *testing.T) {
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain")))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "plain", rec.Body.String())
		assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	})

	t.Run("decompresses request body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"title":"T"}`)))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, `{"title":"T"}`, rec.Body.String())
	})

	t.Run("rejects broken gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
	})
}

func TestPooledReadCloser_CloseOnce(t *testing.T) {
	calls := 0
	rc := &pooledReadCloser{Reader: strings.NewReader(""), onClose: func() { calls++ }}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}

// ─────────────────────────────────────────────
// withCORS
// ─────────────────────────────────────────────

func TestWithCORS(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/blogs", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
