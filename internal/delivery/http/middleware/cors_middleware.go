package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"charity-care-portal/config"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware allows only the configured origins. With none configured
// every cross-origin request is refused; a "*" entry is ignored because the
// session cookie is sent with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) *CORSMiddleware {
	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin != "" && origin != "*" {
			origins = append(origins, origin)
		}
	}

	options := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Form-ID"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(origins) == 0 {
		options.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}

	return &CORSMiddleware{cors: cors.New(options)}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
