package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/features/user/models"
	"police-bot-backend/internal/features/user/repository"
	"police-bot-backend/internal/platform/postgres"
)

func newRepoWithMock(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(postgres.NewFromDB(db)), mock
}

func TestGetByDiscordUserID_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*discord_user_id,\s*role\s+FROM\s+users\s+WHERE\s+discord_user_id\s*=\s*\$1`).
		WithArgs("3003").
		WillReturnRows(sqlmock.NewRows([]string{"id", "discord_user_id", "role"}).AddRow(5, "3003", "moderator"))

	got, err := repo.GetByDiscordUserID(context.Background(), "3003")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, models.RoleModerator, got.Role)
}

func TestGetByDiscordUserID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+users`).
		WithArgs("3003").
		WillReturnRows(sqlmock.NewRows([]string{"id", "discord_user_id", "role"}))

	_, err := repo.GetByDiscordUserID(context.Background(), "3003")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUpdateRole(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+role\s*=\s*\$1\s+WHERE\s+discord_user_id\s*=\s*\$2`).
		WithArgs("admin", "3003").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateRole(context.Background(), "3003", models.RoleAdmin))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRole_NoRows(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+users`).
		WithArgs("admin", "3003").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRole(context.Background(), "3003", models.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUpdateRole_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+users`).
		WillReturnError(errors.New(`new row violates check constraint "users_role_check"`))

	err := repo.UpdateRole(context.Background(), "3003", "superuser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users_role_check")
}

func TestRepository_DatabaseUnavailable(t *testing.T) {
	repo := NewPostgresRepository(&postgres.Client{})

	_, err := repo.GetByDiscordUserID(context.Background(), "1")
	assert.ErrorIs(t, err, apperrors.ErrDatabaseUnavailable)
	assert.ErrorIs(t, repo.UpdateRole(context.Background(), "1", models.RoleUser), apperrors.ErrDatabaseUnavailable)
}
