package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"police-bot-backend/internal/features/user/models"
	"police-bot-backend/internal/features/user/repository"
	"police-bot-backend/internal/platform/postgres"
)

type postgresRepository struct {
	provider postgres.Provider
}

func NewPostgresRepository(provider postgres.Provider) repository.UserRepository {
	return &postgresRepository{provider: provider}
}

// GetByDiscordUserID получает пользователя по ID Discord
func (r *postgresRepository) GetByDiscordUserID(ctx context.Context, discordUserID string) (*models.User, error) {
	db, err := r.provider.DB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, discord_user_id, role
		FROM users
		WHERE discord_user_id = $1
	`

	var user models.User
	err = db.QueryRowContext(ctx, query, discordUserID).Scan(&user.ID, &user.DiscordUserID, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateRole обновляет роль пользователя
func (r *postgresRepository) UpdateRole(ctx context.Context, discordUserID string, role models.Role) error {
	db, err := r.provider.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, "UPDATE users SET role = $1 WHERE discord_user_id = $2", string(role), discordUserID)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
