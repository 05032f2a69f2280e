package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"charity-care-portal/config"
)

func corsResponse(cfg config.CORSConfig, method, origin string) *httptest.ResponseRecorder {
	handler := NewCORSMiddleware(cfg).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/dashboard", nil)
	req.Header.Set("Origin", origin)
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.CORSConfig
		method string
		origin string
		want   string
	}{
		{"no origins configured refuses", config.CORSConfig{}, http.MethodGet, "https://evil.example", ""},
		{"no origins configured refuses preflight", config.CORSConfig{}, http.MethodOptions, "https://evil.example", ""},
		{"wildcard is ignored", config.CORSConfig{AllowedOrigins: []string{"*"}}, http.MethodGet, "https://evil.example", ""},
		{"listed origin is allowed", config.CORSConfig{AllowedOrigins: []string{"https://care.example"}}, http.MethodGet, "https://care.example", "https://care.example"},
		{"unlisted origin is refused", config.CORSConfig{AllowedOrigins: []string{"https://care.example"}}, http.MethodGet, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := corsResponse(tt.cfg, tt.method, tt.origin)
			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.want != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}
