package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "police-bot-backend/internal/common/errors"
	"police-bot-backend/internal/features/citizen/models"
	"police-bot-backend/internal/features/citizen/repository"
)

// mockCitizenRepository implements repository.CitizenRepository for testing.
type mockCitizenRepository struct {
	mu       sync.Mutex
	citizens []*models.Citizen
	counts   map[string][3]int // discordUserID -> crimes, fines, wanted

	getErr    error
	nextErr   error
	createErr error
	creates   int
}

func newMockCitizenRepository() *mockCitizenRepository {
	return &mockCitizenRepository{counts: make(map[string][3]int)}
}

func (m *mockCitizenRepository) GetByDiscordUserID(ctx context.Context, discordUserID string) (*models.Citizen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.citizens {
		if c.DiscordUserID == discordUserID {
			return c, nil
		}
	}
	return nil, repository.ErrCitizenNotFound
}

func (m *mockCitizenRepository) NextDisplayID(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nextErr != nil {
		return "", m.nextErr
	}
	var maxID int64
	for _, c := range m.citizens {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return models.FormatDisplayID(maxID + 1), nil
}

func (m *mockCitizenRepository) Create(ctx context.Context, citizen *models.Citizen) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.creates++
	citizen.ID = int64(len(m.citizens) + 1)
	m.citizens = append(m.citizens, citizen)
	return nil
}

func (m *mockCitizenRepository) GetProfileByDiscordUserID(ctx context.Context, discordUserID string) (*models.CitizenProfile, error) {
	c, err := m.GetByDiscordUserID(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	counts := m.counts[discordUserID]
	return &models.CitizenProfile{
		Citizen:     *c,
		CrimesCount: counts[0],
		FinesCount:  counts[1],
		WantedCount: counts[2],
	}, nil
}

// fakeLocker держит блокировки в памяти
type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	err      error
	released int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		l.released++
		return nil
	}, true, nil
}

func validInput() models.CreateCitizenInput {
	return models.CreateCitizenInput{
		FirstName:       "Ivan",
		LastName:        "Petrov",
		DateOfBirth:     "1990-01-01",
		DiscordUserID:   "1001",
		DiscordUsername: "ivan",
	}
}

func TestCreateCharacter_New(t *testing.T) {
	repo := newMockCitizenRepository()
	svc := NewCitizenService(repo, nil, 0)

	res, err := svc.CreateCharacter(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, res.Existing)
	assert.Equal(t, "ID-00001", res.Citizen.CitizenID)
	assert.Equal(t, "Ivan Petrov", res.Citizen.FullName())
	assert.Equal(t, "Created via Discord: @ivan", res.Citizen.Notes)
	assert.Equal(t, 1, repo.creates)
}

func TestCreateCharacter_ExistingIsNotDuplicated(t *testing.T) {
	repo := newMockCitizenRepository()
	svc := NewCitizenService(repo, nil, 0)
	ctx := context.Background()

	first, err := svc.CreateCharacter(ctx, validInput())
	require.NoError(t, err)

	second, err := svc.CreateCharacter(ctx, validInput())
	require.NoError(t, err)
	assert.True(t, second.Existing)
	assert.Equal(t, first.Citizen.CitizenID, second.Citizen.CitizenID)
	assert.Equal(t, 1, repo.creates)
}

func TestCreateCharacter_DisplayIDFollowsMaxID(t *testing.T) {
	repo := newMockCitizenRepository()
	repo.citizens = append(repo.citizens, &models.Citizen{ID: 41, CitizenID: "ID-00041", DiscordUserID: "other"})
	svc := NewCitizenService(repo, nil, 0)

	res, err := svc.CreateCharacter(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "ID-00042", res.Citizen.CitizenID)
}

func TestCreateCharacter_Validation(t *testing.T) {
	repo := newMockCitizenRepository()
	repo.getErr = errors.New("must not be called")
	svc := NewCitizenService(repo, nil, 0)

	in := validInput()
	in.LastName = ""
	_, err := svc.CreateCharacter(context.Background(), in)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	in = validInput()
	in.DiscordUserID = ""
	_, err = svc.CreateCharacter(context.Background(), in)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
	assert.Zero(t, repo.creates)
}

func TestCreateCharacter_StoreErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mockCitizenRepository)
		code  apperrors.ErrorCode
	}{
		{"lookup", func(r *mockCitizenRepository) { r.getErr = errors.New("timeout") }, apperrors.ErrCodeDatabaseError},
		{"next id", func(r *mockCitizenRepository) { r.nextErr = errors.New("timeout") }, apperrors.ErrCodeDatabaseError},
		{"insert", func(r *mockCitizenRepository) { r.createErr = errors.New("timeout") }, apperrors.ErrCodeDatabaseError},
		{"unavailable", func(r *mockCitizenRepository) { r.getErr = apperrors.ErrDatabaseUnavailable }, apperrors.ErrCodeDatabaseUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockCitizenRepository()
			tt.setup(repo)
			svc := NewCitizenService(repo, nil, 0)

			_, err := svc.CreateCharacter(context.Background(), validInput())
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestCreateCharacter_LockSerializesSameUser(t *testing.T) {
	repo := newMockCitizenRepository()
	locker := newFakeLocker()
	svc := NewCitizenService(repo, locker, time.Second)

	// Блокировку уже держит параллельный запрос
	release, ok, err := locker.Acquire(context.Background(), "citizen:create:1001", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.CreateCharacter(context.Background(), validInput())
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))
	assert.Zero(t, repo.creates)

	require.NoError(t, release(context.Background()))

	res, err := svc.CreateCharacter(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, res.Existing)
	assert.Equal(t, 2, locker.released)
	assert.Empty(t, locker.held)
}

func TestCreateCharacter_LockError(t *testing.T) {
	locker := newFakeLocker()
	locker.err = errors.New("redis: connection refused")
	svc := NewCitizenService(newMockCitizenRepository(), locker, time.Second)

	_, err := svc.CreateCharacter(context.Background(), validInput())
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeLockError))
}

func TestGetOwnCharacter(t *testing.T) {
	repo := newMockCitizenRepository()
	repo.citizens = append(repo.citizens, &models.Citizen{ID: 1, CitizenID: "ID-00001", DiscordUserID: "1001"})
	repo.counts["1001"] = [3]int{3, 2, 1}
	svc := NewCitizenService(repo, nil, 0)

	profile, err := svc.GetOwnCharacter(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, 3, profile.CrimesCount)
	assert.True(t, profile.IsWanted())
}

func TestGetOwnCharacter_Errors(t *testing.T) {
	repo := newMockCitizenRepository()
	svc := NewCitizenService(repo, nil, 0)

	_, err := svc.GetOwnCharacter(context.Background(), "")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))

	_, err = svc.GetOwnCharacter(context.Background(), "1001")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))

	repo.getErr = errors.New("boom")
	_, err = svc.GetOwnCharacter(context.Background(), "1001")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDatabaseError))
}
