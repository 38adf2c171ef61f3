package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
)

const issuer = "weather-bid-manager"

type Authenticator interface {
	IssueToken(subject, role string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret:   []byte(cfg.Auth.Secret),
		tokenTTL: cfg.Auth.TokenTTL,
		now:      time.Now,
	}
}

// IssueToken gera um token HS256 para operadores da API (ex.: `cli token`)
func (s *Service) IssueToken(subject, role string) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", NewAuthError(ErrMissingSubject, apiErrors.ErrMissingRequiredData, "")
	}

	if role != domain.RoleAdmin && role != domain.RoleViewer {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, role)
	}

	now := s.now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
