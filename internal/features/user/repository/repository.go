package repository

import (
	"context"
	"errors"

	"police-bot-backend/internal/features/user/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	GetByDiscordUserID(ctx context.Context, discordUserID string) (*models.User, error)
	UpdateRole(ctx context.Context, discordUserID string, role models.Role) error
}
