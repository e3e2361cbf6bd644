package service

import (
	"context"
	"errors"

	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/common/logger"
	"police-bot-backend/internal/features/user/models"
	"police-bot-backend/internal/features/user/repository"
)

type UserService interface {
	// SyncRole меняет роль существующего пользователя. Роль пишется как есть,
	// новых строк не создает.
	SyncRole(ctx context.Context, discordUserID string, role models.Role) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) SyncRole(ctx context.Context, discordUserID string, role models.Role) (*models.User, error) {
	if discordUserID == "" {
		return nil, apperrors.NewValidationError("user", "target user id is required")
	}

	user, err := s.repo.GetByDiscordUserID(ctx, discordUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", discordUserID)
		}
		return nil, apperrors.NewDatabaseError("find user by discord id", err)
	}

	if err := s.repo.UpdateRole(ctx, discordUserID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", discordUserID)
		}
		return nil, apperrors.NewDatabaseError("update user role", err)
	}

	if !role.Known() {
		logger.Warn().Str("role", string(role)).Str("discord_user_id", discordUserID).Msg("Role outside of the command choice list")
	}
	logger.Info().
		Str("discord_user_id", discordUserID).
		Str("old_role", string(user.Role)).
		Str("new_role", string(role)).
		Msg("User role synced")

	user.Role = role
	return user, nil
}
