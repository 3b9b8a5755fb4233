package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rkashyapa/automanage-industrial-hub/internal/config"
	"github.com/rkashyapa/automanage-industrial-hub/internal/dto"
	"github.com/rkashyapa/automanage-industrial-hub/internal/middleware"
)

// SessionService issues anonymous workspace sessions. There are no user
// accounts: a client asks for a session once, gets a signed token carrying a
// fresh session id, and every snapshot it saves is keyed by that id.
type SessionService interface {
	Open() (*dto.SessionResponse, error)
}

type sessionService struct {
	cfg *config.Config
}

func NewSessionService(cfg *config.Config) SessionService {
	return &sessionService{cfg: cfg}
}

func (s *sessionService) Open() (*dto.SessionResponse, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour)

	claims := middleware.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		SessionID: sessionID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
