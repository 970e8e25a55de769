package service

import (
	"context"

	"mhroulette/models"

	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetOrCreate(ctx context.Context, discordID int64) (*models.Profile, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) RecordServerMembership(ctx context.Context, discordID, guildID int64) error {
	args := m.Called(ctx, discordID, guildID)
	return args.Error(0)
}

func (m *MockProfileService) SetBans(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) ClearBans(ctx context.Context, discordID int64) (*models.Profile, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) SetFavorites(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) SetMainWeapon(ctx context.Context, discordID int64, weapon string) (*models.Profile, error) {
	args := m.Called(ctx, discordID, weapon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) ResetStats(ctx context.Context, discordID int64) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

// MockDrawService is a mock implementation of DrawService
type MockDrawService struct {
	mock.Mock
}

func (m *MockDrawService) DrawOne(ctx context.Context, profile *models.Profile) (*models.Profile, models.Weapon, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Get(1).(models.Weapon), args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Get(1).(models.Weapon), args.Error(2)
}

func (m *MockDrawService) DrawMany(ctx context.Context, profile *models.Profile, n int) ([]models.Weapon, error) {
	args := m.Called(ctx, profile, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Weapon), args.Error(1)
}

func (m *MockDrawService) DrawOneFromFavorites(ctx context.Context, profile *models.Profile) (*models.Profile, models.Weapon, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Get(1).(models.Weapon), args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Get(1).(models.Weapon), args.Error(2)
}

func (m *MockDrawService) DrawManyFromFavorites(ctx context.Context, profile *models.Profile, n int) ([]models.Weapon, error) {
	args := m.Called(ctx, profile, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Weapon), args.Error(1)
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) ServerStats(ctx context.Context, kind models.StatKind, guildID int64) ([]models.WeaponStat, error) {
	args := m.Called(ctx, kind, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeaponStat), args.Error(1)
}
