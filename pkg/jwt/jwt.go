package jwt

import (
	"errors"
	"time"

	"charity-care-portal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims identify a visitor. They carry no role or credential: those live
// server-side in the session store so they can be revoked.
type Claims struct {
	VisitorID string `json:"visitor_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.SessionConfig
}

func NewJWTService(cfg config.SessionConfig) *JWTService {
	return &JWTService{config: cfg}
}

// IssueVisitorToken mints a token for visitorID, or for a fresh visitor when empty.
func (s *JWTService) IssueVisitorToken(visitorID string) (string, string, error) {
	if visitorID == "" {
		visitorID = uuid.New().String()
	}
	now := time.Now()
	claims := Claims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, visitorID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.VisitorID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetExpiry() time.Duration {
	return s.config.TTL
}

func (s *JWTService) CookieName() string {
	return s.config.CookieName
}

func (s *JWTService) CookieSecure() bool {
	return s.config.CookieSecure
}
