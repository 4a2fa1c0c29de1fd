package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hypernova-labs/invoice-actions/internal/database"
	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Credentials son los datos enviados en el formulario de login
type Credentials struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// UserFinder busca usuarios por email
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CredentialsProvider autentica usuarios con email y contraseña
type CredentialsProvider struct {
	users    UserFinder
	sessions *SessionManager
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewCredentialsProvider crea un nuevo proveedor de credenciales
func NewCredentialsProvider(users UserFinder, sessions *SessionManager, logger *logrus.Logger) *CredentialsProvider {
	return &CredentialsProvider{
		users:    users,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// SignIn verifica las credenciales y emite una sesión. Las credenciales
// inválidas retornan *Error de tipo CredentialsSignin; un fallo al consultar
// usuarios se retorna sin clasificar.
func (p *CredentialsProvider) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	if err := p.validate.Struct(creds); err != nil {
		return nil, &Error{Type: CredentialsSignin}
	}

	user, err := p.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, &Error{Type: CredentialsSignin}
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			p.logger.WithField("user_id", user.ID).Info("Invalid password")
			return nil, &Error{Type: CredentialsSignin}
		}
		return nil, &Error{Type: CallbackRouteError, Err: err}
	}

	session, err := p.sessions.Issue(user)
	if err != nil {
		return nil, &Error{Type: CallbackRouteError, Err: err}
	}

	p.logger.WithField("user_id", user.ID).Info("User signed in")
	return session, nil
}

// HashPassword genera el hash bcrypt de una contraseña
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}
