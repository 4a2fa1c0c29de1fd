package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/hypernova-labs/invoice-actions/internal/auth"
	"github.com/sirupsen/logrus"
)

// Mensajes del formulario de login
const (
	MessageInvalidCredentials = "Invalid credentials."
	MessageSomethingWentWrong = "Something went wrong."
)

// SignInProvider verifica credenciales y emite sesiones
type SignInProvider interface {
	SignIn(ctx context.Context, creds auth.Credentials) (*auth.Session, error)
}

// AuthActions implementa la acción de autenticación
type AuthActions struct {
	provider SignInProvider
	logger   *logrus.Logger
}

// NewAuthActions crea una nueva instancia de las acciones de autenticación
func NewAuthActions(provider SignInProvider, logger *logrus.Logger) *AuthActions {
	return &AuthActions{
		provider: provider,
		logger:   logger,
	}
}

// Authenticate reenvía el formulario al proveedor. Retorna la sesión si el
// login fue correcto, o un mensaje para el usuario si el proveedor reportó un
// fallo de autenticación reconocido. Cualquier otro error se retorna tal cual.
func (a *AuthActions) Authenticate(ctx context.Context, form url.Values) (*auth.Session, string, error) {
	session, err := a.provider.SignIn(ctx, auth.Credentials{
		Email:    form.Get("email"),
		Password: form.Get("password"),
	})
	if err == nil {
		return session, "", nil
	}

	var authErr *auth.Error
	if errors.As(err, &authErr) {
		switch authErr.Type {
		case auth.CredentialsSignin:
			return nil, MessageInvalidCredentials, nil
		default:
			a.logger.WithError(err).Warn("Sign in failed")
			return nil, MessageSomethingWentWrong, nil
		}
	}

	return nil, "", err
}
