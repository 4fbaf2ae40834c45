package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/crops", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/crops", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/harvest/calculate", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Readyz", "", "/readyz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
		{"Public Path - Swagger", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RecordsFailedAttempts(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/crops", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.7"])
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < maxRequestsPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusOK, rec.Code, "request %d", i) {
			return
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, maxRequestsPerWindow+1, detector.requestCountByIP[ip])
}

func TestDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	detector := newDetector(2, time.Minute, func() time.Time { return now })

	assert.True(t, detector.RecordRequest("1.1.1.1"))
	assert.True(t, detector.RecordRequest("1.1.1.1"))
	assert.False(t, detector.RecordRequest("1.1.1.1"))
	assert.True(t, detector.RecordRequest("2.2.2.2"), "limits are per IP")

	now = now.Add(time.Minute + time.Second)
	assert.True(t, detector.RecordRequest("1.1.1.1"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "203.0.113.5:443", "", nil, "203.0.113.5"},
		{"untrusted proxy ignored", "203.0.113.5:443", "198.51.100.1", nil, "203.0.113.5"},
		{"trusted proxy rightmost hop", "10.0.0.1:80", "198.51.100.1, 198.51.100.2", []string{"10.0.0.1"}, "198.51.100.2"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("0123456789abcdef")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
