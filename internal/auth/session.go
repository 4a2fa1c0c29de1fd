package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hypernova-labs/invoice-actions/internal/config"
	"github.com/hypernova-labs/invoice-actions/internal/models"
)

// Claims son los datos de la sesión firmados en el token
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session es una sesión recién emitida
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

// SessionManager emite y verifica tokens de sesión HS256
type SessionManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewSessionManager crea un gestor de sesiones
func NewSessionManager(cfg config.JWTConfig) *SessionManager {
	return &SessionManager{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
		now:    time.Now,
	}
}

// Issue firma un token para el usuario
func (m *SessionManager) Issue(user *models.User) (*Session, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("JWT secret not set")
	}

	now := m.now()
	expiresAt := now.Add(m.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("error signing session token: %w", err)
	}

	return &Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}

// Parse verifica un token y retorna sus claims
func (m *SessionManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
