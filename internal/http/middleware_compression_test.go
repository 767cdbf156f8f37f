package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipHandler(contentType string, status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		if body != "" {
			_, _ = io.WriteString(w, body)
		}
	})
}

func TestCompression(t *testing.T) {
	page := strings.Repeat(`<tr class="supplier-row"><td>Dhaka Leather</td></tr>`, 200)

	tests := []struct {
		name        string
		method      string
		accept      string
		contentType string
		status      int
		body        string
		minSize     int
		wantGzip    bool
	}{
		{name: "html page", accept: "gzip, deflate", contentType: "text/html; charset=utf-8", status: 200, body: page, wantGzip: true},
		{name: "json status", accept: "gzip", contentType: "application/json", status: 200, body: `{"authenticated":true}`, wantGzip: true},
		{name: "client refuses", accept: "deflate", contentType: "text/html", status: 200, body: page},
		{name: "explicit q=0", accept: "gzip;q=0", contentType: "text/html", status: 200, body: page},
		{name: "event stream", accept: "gzip", contentType: "text/event-stream", status: 200, body: "event: session\ndata: {}\n\n"},
		{name: "image", accept: "gzip", contentType: "image/png", status: 200, body: page},
		{name: "head", method: http.MethodHead, accept: "gzip", contentType: "text/html", status: 200},
		{name: "discarded list response", accept: "gzip", contentType: "text/html", status: http.StatusNoContent},
		{name: "below min size", accept: "gzip", contentType: "text/html", status: 200, body: "<p>ok</p>", minSize: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			r := httptest.NewRequest(method, "/suppliers", nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Encoding", tt.accept)
			}
			w := httptest.NewRecorder()

			Compression(CompressionConfig{Level: gzip.BestSpeed, MinSize: tt.minSize, Logger: DiscardLogger()})(
				gzipHandler(tt.contentType, tt.status, tt.body)).ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			if !tt.wantGzip {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, w.Body.String())
				return
			}
			assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			assert.Contains(t, w.Header().Values("Vary"), "Accept-Encoding")
			zr, err := gzip.NewReader(w.Body)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(got))
		})
	}
}

func TestCompression_KeepsExistingEncoding(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		w.Header().Set("Content-Encoding", "br")
		_, _ = io.WriteString(w, "already-brotli")
	})
	r := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	r.Header.Set("Accept-Encoding", "gzip, br")
	w := httptest.NewRecorder()

	Compression(CompressionConfig{})(h).ServeHTTP(w, r)

	assert.Equal(t, "br", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "already-brotli", w.Body.String())
}

func TestAcceptsGzip(t *testing.T) {
	assert.True(t, acceptsGzip("br, GZIP"))
	assert.True(t, acceptsGzip("gzip;q=0.5"))
	assert.False(t, acceptsGzip("gzip; q=0"))
	assert.False(t, acceptsGzip(""))
}
