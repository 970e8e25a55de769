package service

import (
	"context"
	"testing"

	"mhroulette/models"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_ServerStats_DispatchesByKind(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockStatsRepository)
	service := NewStatsService(mockRepo)

	rows := map[models.StatKind][]models.WeaponStat{
		models.StatKindDraws:      {{Weapon: models.WeaponGreatSword, Count: 8, Percentage: 80}},
		models.StatKindBans:       {{Weapon: models.WeaponBow, Count: 3, Percentage: 75}},
		models.StatKindPopularity: {{Weapon: models.WeaponHammer, Count: 2, Percentage: 100}},
		models.StatKindMains:      {{Weapon: models.WeaponLance, Count: 1, Percentage: 50}},
	}

	mockRepo.On("ServerDrawStats", ctx, int64(42)).Return(rows[models.StatKindDraws], nil)
	mockRepo.On("ServerBanStats", ctx, int64(42)).Return(rows[models.StatKindBans], nil)
	mockRepo.On("ServerFavoriteStats", ctx, int64(42)).Return(rows[models.StatKindPopularity], nil)
	mockRepo.On("ServerMainStats", ctx, int64(42)).Return(rows[models.StatKindMains], nil)

	for kind, expected := range rows {
		result, err := service.ServerStats(ctx, kind, 42)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
	}
	mockRepo.AssertExpectations(t)
}

func TestStatsService_ServerStats_UnknownKind(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockStatsRepository)
	service := NewStatsService(mockRepo)

	result, err := service.ServerStats(ctx, models.StatKind("elo"), 42)

	assert.Error(t, err)
	assert.Nil(t, result)
}
