package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, quietLogger())

	mock.ExpectQuery("FROM users").
		WithArgs("user@nextmail.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow("u1", "User", "user@nextmail.com", "$2a$10$hash"))

	user, err := repo.GetByEmail(context.Background(), "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "$2a$10$hash", user.Password)
}

func TestUserRepository_GetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, quietLogger())

	mock.ExpectQuery("FROM users").
		WithArgs("nobody@nextmail.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@nextmail.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_GetByEmailQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, quietLogger())

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByEmail(context.Background(), "user@nextmail.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestMigrate(t *testing.T) {
	db, mock := newMockDB(t)

	for range schemaStatements {
		mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, db.Migrate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
