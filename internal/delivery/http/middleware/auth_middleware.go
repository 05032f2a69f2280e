package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"charity-care-portal/internal/domain/entity"
	domainRepo "charity-care-portal/internal/domain/repository"
	"charity-care-portal/pkg/apiclient"
	"charity-care-portal/pkg/jwt"
	"charity-care-portal/pkg/response"
)

type contextKey string

const (
	VisitorIDKey     contextKey = "visitor_id"
	SessionKey       contextKey = "session"
	NavigationSeqKey contextKey = "navigation_seq"
)

// AuthMiddleware identifies the visitor from the signed cookie, issuing a new
// one when absent or invalid, and loads the visitor's Session if any. It never
// rejects a request; access decisions belong to GuardMiddleware.
type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo domainRepo.SessionRepository
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo domainRepo.SessionRepository, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := m.visitorFromCookie(r)
		if visitorID == "" {
			token, id, err := m.jwtService.IssueVisitorToken("")
			if err != nil {
				m.log.Warnf("Failed to issue visitor token: %+v", err)
				response.InternalServerError(w, "")
				return
			}
			visitorID = id
			http.SetCookie(w, &http.Cookie{
				Name:     m.jwtService.CookieName(),
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(m.jwtService.GetExpiry()),
				HttpOnly: true,
				Secure:   m.jwtService.CookieSecure(),
				SameSite: http.SameSiteLaxMode,
			})
		}

		session, err := m.sessionRepo.Get(r.Context(), visitorID)
		if err != nil {
			m.log.Warnf("Failed to load session for visitor %s: %+v", visitorID, err)
			response.InternalServerError(w, "")
			return
		}

		ctx := context.WithValue(r.Context(), VisitorIDKey, visitorID)
		creds := apiclient.Credentials{VisitorID: visitorID}
		if session != nil {
			ctx = context.WithValue(ctx, SessionKey, session)
			creds.Token = session.CredentialToken
		}
		ctx = apiclient.WithCredentials(ctx, creds)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) visitorFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(m.jwtService.CookieName())
	if err != nil || cookie.Value == "" {
		return ""
	}
	claims, err := m.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return ""
	}
	return claims.VisitorID
}

// GetVisitorIDFromContext extracts the visitor ID from context
func GetVisitorIDFromContext(ctx context.Context) (string, bool) {
	visitorID, ok := ctx.Value(VisitorIDKey).(string)
	return visitorID, ok && visitorID != ""
}

// GetSessionFromContext extracts the live session from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}

// GetNavigationSeqFromContext extracts the navigation sequence captured for this render
func GetNavigationSeqFromContext(ctx context.Context) (int64, bool) {
	seq, ok := ctx.Value(NavigationSeqKey).(int64)
	return seq, ok
}

// WithSession is used by handlers that establish or drop a session mid-request.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

func withNavigationSeq(ctx context.Context, seq int64) context.Context {
	return context.WithValue(ctx, NavigationSeqKey, seq)
}
