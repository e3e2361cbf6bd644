package repository

import (
	"context"
	"errors"

	"police-bot-backend/internal/features/citizen/models"
)

var (
	ErrCitizenNotFound = errors.New("citizen not found")
)

type CitizenRepository interface {
	// GetByDiscordUserID ищет персонажа владельца. ErrCitizenNotFound, если его нет.
	GetByDiscordUserID(ctx context.Context, discordUserID string) (*models.Citizen, error)
	// NextDisplayID вычисляет номер ID-карты как MAX(id) + 1.
	// Не защищен от гонки двух одновременных созданий.
	NextDisplayID(ctx context.Context) (string, error)
	Create(ctx context.Context, citizen *models.Citizen) error
	GetProfileByDiscordUserID(ctx context.Context, discordUserID string) (*models.CitizenProfile, error)
}
