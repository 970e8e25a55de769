package repository

import (
	"context"
	"fmt"

	"mhroulette/database"
	"mhroulette/models"
)

// StatsRepository computes server-wide weapon aggregations.
// Every query returns rows ordered by percentage descending; tie order
// between equal percentages is unspecified. A server with no qualifying
// data yields an empty slice, never an error.
type StatsRepository struct {
	q queryable
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{q: db.Pool}
}

// ServerDrawStats sums draw counters per weapon across every profile
// seen in the guild. Weapons never drawn by anyone are omitted.
func (r *StatsRepository) ServerDrawStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	query := `
		SELECT d.weapon,
		       SUM(d.count)::bigint AS cnt,
		       (100.0 * SUM(d.count) / SUM(SUM(d.count)) OVER ())::float8 AS percentage
		FROM weapon_draws d
		JOIN profile_servers ps ON ps.discord_id = d.discord_id
		WHERE ps.guild_id = $1
		GROUP BY d.weapon
		HAVING SUM(d.count) > 0
		ORDER BY percentage DESC
	`
	return r.queryStats(ctx, query, guildID)
}

// ServerBanStats counts ban occurrences per weapon across the guild's
// profiles; a user banning three weapons contributes three occurrences
func (r *StatsRepository) ServerBanStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	query := `
		SELECT w AS weapon,
		       COUNT(*)::bigint AS cnt,
		       (100.0 * COUNT(*) / SUM(COUNT(*)) OVER ())::float8 AS percentage
		FROM profiles p
		JOIN profile_servers ps ON ps.discord_id = p.discord_id
		CROSS JOIN LATERAL unnest(p.banned_weapons) AS w
		WHERE ps.guild_id = $1
		GROUP BY w
		ORDER BY percentage DESC
	`
	return r.queryStats(ctx, query, guildID)
}

// ServerFavoriteStats counts favorite occurrences per weapon; only
// profiles with at least one favorite contribute rows
func (r *StatsRepository) ServerFavoriteStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	query := `
		SELECT w AS weapon,
		       COUNT(*)::bigint AS cnt,
		       (100.0 * COUNT(*) / SUM(COUNT(*)) OVER ())::float8 AS percentage
		FROM profiles p
		JOIN profile_servers ps ON ps.discord_id = p.discord_id
		CROSS JOIN LATERAL unnest(p.favorite_weapons) AS w
		WHERE ps.guild_id = $1
		GROUP BY w
		ORDER BY percentage DESC
	`
	return r.queryStats(ctx, query, guildID)
}

// ServerMainStats counts profiles (not occurrences) per main weapon,
// excluding profiles that have no main weapon set
func (r *StatsRepository) ServerMainStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error) {
	query := `
		SELECT p.main_weapon AS weapon,
		       COUNT(*)::bigint AS cnt,
		       (100.0 * COUNT(*) / SUM(COUNT(*)) OVER ())::float8 AS percentage
		FROM profiles p
		JOIN profile_servers ps ON ps.discord_id = p.discord_id
		WHERE ps.guild_id = $1 AND p.main_weapon <> ''
		GROUP BY p.main_weapon
		ORDER BY percentage DESC
	`
	return r.queryStats(ctx, query, guildID)
}

func (r *StatsRepository) queryStats(ctx context.Context, query string, guildID int64) ([]models.WeaponStat, error) {
	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to query server stats for guild %d: %w", guildID, err))
	}
	defer rows.Close()

	stats := []models.WeaponStat{}
	for rows.Next() {
		var weapon string
		var stat models.WeaponStat
		if err := rows.Scan(&weapon, &stat.Count, &stat.Percentage); err != nil {
			return nil, storeError(fmt.Errorf("failed to scan stats row: %w", err))
		}
		stat.Weapon = models.Weapon(weapon)
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(fmt.Errorf("failed to iterate stats rows: %w", err))
	}

	return stats, nil
}
