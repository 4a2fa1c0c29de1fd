package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hypernova-labs/invoice-actions/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrUserNotFound indica que no existe un usuario con ese email
var ErrUserNotFound = errors.New("user not found")

// UserRepository maneja las operaciones de base de datos para User
type UserRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewUserRepository crea una nueva instancia del repositorio
func NewUserRepository(db *DB, logger *logrus.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// GetByEmail obtiene un usuario por email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return &user, nil
}
