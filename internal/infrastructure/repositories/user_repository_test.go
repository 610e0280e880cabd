package repositories_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperpress/newsletter/internal/core/domain/user"
	"github.com/paperpress/newsletter/internal/infrastructure/repositories"
)

func TestGetByUsername(t *testing.T) {
	database, mock := newMockDB(t)
	repo := repositories.NewUserRepository(database, nil)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash FROM users")).
		WithArgs("publisher").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash"}).
			AddRow(userID.String(), "publisher", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA"))

	u, err := repo.GetByUsername(context.Background(), "publisher")

	require.NoError(t, err)
	assert.Equal(t, userID, u.ID)
	assert.Equal(t, "publisher", u.Username)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestGetByUsername_NotFound(t *testing.T) {
	database, mock := newMockDB(t)
	repo := repositories.NewUserRepository(database, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash FROM users")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash"}))

	_, err := repo.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestGetByUsername_StorageError(t *testing.T) {
	database, mock := newMockDB(t)
	repo := repositories.NewUserRepository(database, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash FROM users")).
		WithArgs("publisher").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByUsername(context.Background(), "publisher")

	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrNotFound)
}
