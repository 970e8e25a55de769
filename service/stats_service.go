package service

import (
	"context"
	"fmt"

	"mhroulette/models"
)

// statsService implements the StatsService interface
type statsService struct {
	statsRepo StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

// ServerStats computes a guild-wide aggregation of the given kind
func (s *statsService) ServerStats(ctx context.Context, kind models.StatKind, guildID int64) ([]models.WeaponStat, error) {
	switch kind {
	case models.StatKindDraws:
		return s.statsRepo.ServerDrawStats(ctx, guildID)
	case models.StatKindBans:
		return s.statsRepo.ServerBanStats(ctx, guildID)
	case models.StatKindPopularity:
		return s.statsRepo.ServerFavoriteStats(ctx, guildID)
	case models.StatKindMains:
		return s.statsRepo.ServerMainStats(ctx, guildID)
	default:
		return nil, fmt.Errorf("unknown stat kind %q", kind)
	}
}
