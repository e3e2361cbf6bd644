package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"police-bot-backend/internal/features/citizen/models"
	"police-bot-backend/internal/features/citizen/repository"
	"police-bot-backend/internal/platform/postgres"
)

type postgresRepository struct {
	provider postgres.Provider
}

func NewPostgresRepository(provider postgres.Provider) repository.CitizenRepository {
	return &postgresRepository{provider: provider}
}

// GetByDiscordUserID получает персонажа по ID пользователя Discord
func (r *postgresRepository) GetByDiscordUserID(ctx context.Context, discordUserID string) (*models.Citizen, error) {
	db, err := r.provider.DB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, citizen_id, first_name, last_name, date_of_birth::text,
		       address, phone, notes, discord_user_id, discord_username
		FROM citizens
		WHERE discord_user_id = $1
		LIMIT 1
	`

	var (
		citizen               models.Citizen
		address, phone, notes sql.NullString
		username              sql.NullString
	)
	err = db.QueryRowContext(ctx, query, discordUserID).Scan(
		&citizen.ID, &citizen.CitizenID, &citizen.FirstName, &citizen.LastName, &citizen.DateOfBirth,
		&address, &phone, &notes, &citizen.DiscordUserID, &username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrCitizenNotFound
		}
		return nil, fmt.Errorf("failed to get citizen: %w", err)
	}

	citizen.Address = address.String
	citizen.Phone = phone.String
	citizen.Notes = notes.String
	citizen.DiscordUsername = username.String

	return &citizen, nil
}

// NextDisplayID вычисляет следующий номер ID-карты
func (r *postgresRepository) NextDisplayID(ctx context.Context) (string, error) {
	db, err := r.provider.DB()
	if err != nil {
		return "", err
	}

	var maxID int64
	if err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) FROM citizens").Scan(&maxID); err != nil {
		return "", fmt.Errorf("failed to get max citizen id: %w", err)
	}

	return models.FormatDisplayID(maxID + 1), nil
}

// Create вставляет персонажа и заполняет его ID
func (r *postgresRepository) Create(ctx context.Context, citizen *models.Citizen) error {
	db, err := r.provider.DB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO citizens
			(citizen_id, first_name, last_name, date_of_birth, discord_user_id, discord_username, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = db.QueryRowContext(ctx, query,
		citizen.CitizenID, citizen.FirstName, citizen.LastName, citizen.DateOfBirth,
		citizen.DiscordUserID, citizen.DiscordUsername, citizen.Notes).Scan(&citizen.ID)
	if err != nil {
		return fmt.Errorf("failed to create citizen: %w", err)
	}

	return nil
}

// GetProfileByDiscordUserID получает персонажа со счетчиками преступлений, штрафов и розыска
func (r *postgresRepository) GetProfileByDiscordUserID(ctx context.Context, discordUserID string) (*models.CitizenProfile, error) {
	db, err := r.provider.DB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT c.id, c.citizen_id, c.first_name, c.last_name, c.date_of_birth::text,
		       c.address, c.phone, c.notes,
		       (SELECT COUNT(*) FROM criminal_records WHERE citizen_id = c.id) AS crimes_count,
		       (SELECT COUNT(*) FROM fines WHERE citizen_id = c.id) AS fines_count,
		       (SELECT COUNT(*) FROM wanted WHERE citizen_id = c.id) AS wanted_count
		FROM citizens c
		WHERE c.discord_user_id = $1
		LIMIT 1
	`

	var (
		profile               models.CitizenProfile
		address, phone, notes sql.NullString
	)
	err = db.QueryRowContext(ctx, query, discordUserID).Scan(
		&profile.ID, &profile.CitizenID, &profile.FirstName, &profile.LastName, &profile.DateOfBirth,
		&address, &phone, &notes,
		&profile.CrimesCount, &profile.FinesCount, &profile.WantedCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrCitizenNotFound
		}
		return nil, fmt.Errorf("failed to get citizen profile: %w", err)
	}

	profile.Address = address.String
	profile.Phone = phone.String
	profile.Notes = notes.String
	profile.DiscordUserID = discordUserID

	return &profile, nil
}
