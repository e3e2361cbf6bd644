package service

import (
	"context"
	"errors"
	"time"

	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/common/logger"
	"police-bot-backend/internal/features/citizen/models"
	"police-bot-backend/internal/features/citizen/repository"
)

// Locker распределенная блокировка. Реализуется platform/redis.Locker.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

type CitizenService interface {
	CreateCharacter(ctx context.Context, input models.CreateCitizenInput) (*models.CreateCitizenResult, error)
	GetOwnCharacter(ctx context.Context, discordUserID string) (*models.CitizenProfile, error)
}

type citizenService struct {
	repo    repository.CitizenRepository
	locker  Locker
	lockTTL time.Duration
}

// NewCitizenService создает сервис персонажей. locker может быть nil:
// тогда проверка и вставка не сериализуются между запросами.
func NewCitizenService(repo repository.CitizenRepository, locker Locker, lockTTL time.Duration) CitizenService {
	return &citizenService{
		repo:    repo,
		locker:  locker,
		lockTTL: lockTTL,
	}
}

func (s *citizenService) CreateCharacter(ctx context.Context, input models.CreateCitizenInput) (*models.CreateCitizenResult, error) {
	if input.FirstName == "" || input.LastName == "" || input.DateOfBirth == "" {
		return nil, apperrors.NewValidationError("options", "first name, last name and date of birth are required")
	}
	if input.DiscordUserID == "" {
		return nil, apperrors.NewValidationError("user", "discord user id is required")
	}

	if s.locker != nil {
		release, ok, err := s.locker.Acquire(ctx, "citizen:create:"+input.DiscordUserID, s.lockTTL)
		if err != nil {
			return nil, apperrors.NewLockError("acquire citizen create lock", err)
		}
		if !ok {
			return nil, apperrors.NewConflictError("citizen", "creation already in progress").
				WithDetail("discord_user_id", input.DiscordUserID)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				logger.Warn().Err(err).Str("discord_user_id", input.DiscordUserID).Msg("Failed to release citizen create lock")
			}
		}()
	}

	existing, err := s.repo.GetByDiscordUserID(ctx, input.DiscordUserID)
	if err == nil {
		return &models.CreateCitizenResult{Citizen: existing, Existing: true}, nil
	}
	if !errors.Is(err, repository.ErrCitizenNotFound) {
		return nil, apperrors.NewDatabaseError("find citizen by discord user", err)
	}

	displayID, err := s.repo.NextDisplayID(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("generate citizen id", err)
	}

	citizen := &models.Citizen{
		CitizenID:       displayID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		DateOfBirth:     input.DateOfBirth,
		DiscordUserID:   input.DiscordUserID,
		DiscordUsername: input.DiscordUsername,
		Notes:           models.CreationNote(input.DiscordUsername),
	}
	if err := s.repo.Create(ctx, citizen); err != nil {
		return nil, apperrors.NewDatabaseError("create citizen", err)
	}

	logger.Info().
		Str("citizen_id", citizen.CitizenID).
		Str("discord_user_id", citizen.DiscordUserID).
		Msg("Citizen created")

	return &models.CreateCitizenResult{Citizen: citizen}, nil
}

func (s *citizenService) GetOwnCharacter(ctx context.Context, discordUserID string) (*models.CitizenProfile, error) {
	if discordUserID == "" {
		return nil, apperrors.NewValidationError("user", "discord user id is required")
	}

	profile, err := s.repo.GetProfileByDiscordUserID(ctx, discordUserID)
	if err != nil {
		if errors.Is(err, repository.ErrCitizenNotFound) {
			return nil, apperrors.NewNotFoundError("citizen", discordUserID)
		}
		return nil, apperrors.NewDatabaseError("get citizen profile", err)
	}

	return profile, nil
}
