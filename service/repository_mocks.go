package service

import (
	"context"

	"mhroulette/events"
	"mhroulette/models"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetOrCreate(ctx context.Context, discordID int64) (*models.Profile, bool, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Bool(1), args.Error(2)
}

func (m *MockProfileRepository) Get(ctx context.Context, discordID int64) (*models.Profile, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) AddServer(ctx context.Context, discordID, guildID int64) error {
	args := m.Called(ctx, discordID, guildID)
	return args.Error(0)
}

func (m *MockProfileRepository) RemoveServer(ctx context.Context, discordID, guildID int64) error {
	args := m.Called(ctx, discordID, guildID)
	return args.Error(0)
}

func (m *MockProfileRepository) SetBans(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) SetFavorites(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) SetMainWeapon(ctx context.Context, discordID int64, weapon string) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) IncrementDraws(ctx context.Context, discordID int64, weapons []models.Weapon) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) ResetDraws(ctx context.Context, discordID int64) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) ServerDrawStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeaponStat), args.Error(1)
}

func (m *MockStatsRepository) ServerBanStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeaponStat), args.Error(1)
}

func (m *MockStatsRepository) ServerFavoriteStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeaponStat), args.Error(1)
}

func (m *MockStatsRepository) ServerMainStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeaponStat), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
