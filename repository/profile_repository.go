package repository

import (
	"context"
	"fmt"

	"mhroulette/database"
	"mhroulette/models"

	"github.com/jackc/pgx/v5"
)

// ProfileRepository provides access to the per-user profile store
type ProfileRepository struct {
	db *database.DB
	q  queryable
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db, q: db.Pool}
}

// weaponCodes returns the catalog as plain strings for array parameters
func weaponCodes() []string {
	catalog := models.AllWeapons()
	codes := make([]string, len(catalog))
	for i, w := range catalog {
		codes[i] = string(w)
	}
	return codes
}

// storeError tags err so callers can classify it with
// errors.Is(err, ErrStoreUnavailable)
func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// GetOrCreate retrieves the profile for the given Discord ID, creating
// an empty one with all 14 counters zeroed if none exists. The insert
// runs in a transaction with ON CONFLICT DO NOTHING, so two concurrent
// first touches for the same user still end up with exactly one row.
// The second return value reports whether a new profile was created.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, discordID int64) (*models.Profile, bool, error) {
	var profile *models.Profile
	var created bool

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO profiles (discord_id)
			VALUES ($1)
			ON CONFLICT (discord_id) DO NOTHING
		`, discordID)
		if err != nil {
			return fmt.Errorf("failed to upsert profile %d: %w", discordID, err)
		}
		created = tag.RowsAffected() == 1

		// Seed one counter row per catalog weapon so DrawCounts always
		// carries all 14 keys
		_, err = tx.Exec(ctx, `
			INSERT INTO weapon_draws (discord_id, weapon)
			SELECT $1, unnest($2::text[])
			ON CONFLICT (discord_id, weapon) DO NOTHING
		`, discordID, weaponCodes())
		if err != nil {
			return fmt.Errorf("failed to seed draw counters for %d: %w", discordID, err)
		}

		profile, err = r.get(ctx, tx, discordID)
		return err
	})
	if err != nil {
		return nil, false, storeError(err)
	}
	if profile == nil {
		return nil, false, storeError(fmt.Errorf("profile %d missing after upsert", discordID))
	}

	return profile, created, nil
}

// Get retrieves a profile by Discord ID, or nil if none exists
func (r *ProfileRepository) Get(ctx context.Context, discordID int64) (*models.Profile, error) {
	profile, err := r.get(ctx, r.q, discordID)
	if err != nil {
		return nil, storeError(err)
	}
	return profile, nil
}

func (r *ProfileRepository) get(ctx context.Context, q queryable, discordID int64) (*models.Profile, error) {
	query := `
		SELECT discord_id, banned_weapons, favorite_weapons, main_weapon, created_at, updated_at
		FROM profiles
		WHERE discord_id = $1
	`

	var profile models.Profile
	err := q.QueryRow(ctx, query, discordID).Scan(
		&profile.DiscordID,
		&profile.BannedWeapons,
		&profile.FavoriteWeapons,
		&profile.MainWeapon,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %d: %w", discordID, err)
	}

	rows, err := q.Query(ctx, `
		SELECT guild_id
		FROM profile_servers
		WHERE discord_id = $1
		ORDER BY guild_id
	`, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get servers for profile %d: %w", discordID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var guildID int64
		if err := rows.Scan(&guildID); err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		profile.Servers = append(profile.Servers, guildID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate server rows: %w", err)
	}

	drawRows, err := q.Query(ctx, `
		SELECT weapon, count
		FROM weapon_draws
		WHERE discord_id = $1
	`, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get draw counters for profile %d: %w", discordID, err)
	}
	defer drawRows.Close()

	profile.DrawCounts = make(map[models.Weapon]int64, models.WeaponCount)
	for drawRows.Next() {
		var weapon string
		var count int64
		if err := drawRows.Scan(&weapon, &count); err != nil {
			return nil, fmt.Errorf("failed to scan draw counter row: %w", err)
		}
		profile.DrawCounts[models.Weapon(weapon)] = count
	}
	if err := drawRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draw counter rows: %w", err)
	}

	return &profile, nil
}

// AddServer records that the user has been seen in the given guild.
// Adding an already-known guild is a no-op.
func (r *ProfileRepository) AddServer(ctx context.Context, discordID, guildID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO profile_servers (discord_id, guild_id)
		VALUES ($1, $2)
		ON CONFLICT (discord_id, guild_id) DO NOTHING
	`, discordID, guildID)
	if err != nil {
		return storeError(fmt.Errorf("failed to add server %d to profile %d: %w", guildID, discordID, err))
	}
	return nil
}

// RemoveServer removes a guild from the user's server list
func (r *ProfileRepository) RemoveServer(ctx context.Context, discordID, guildID int64) error {
	_, err := r.q.Exec(ctx, `
		DELETE FROM profile_servers
		WHERE discord_id = $1 AND guild_id = $2
	`, discordID, guildID)
	if err != nil {
		return storeError(fmt.Errorf("failed to remove server %d from profile %d: %w", guildID, discordID, err))
	}
	return nil
}

// SetBans replaces the banned weapon list wholesale
func (r *ProfileRepository) SetBans(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	return r.setWeaponList(ctx, discordID, "banned_weapons", weapons)
}

// SetFavorites replaces the favorite weapon list wholesale. The caller
// is expected to have de-duplicated the list.
func (r *ProfileRepository) SetFavorites(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error) {
	return r.setWeaponList(ctx, discordID, "favorite_weapons", weapons)
}

func (r *ProfileRepository) setWeaponList(ctx context.Context, discordID int64, column string, weapons []string) (*models.Profile, error) {
	if weapons == nil {
		weapons = []string{}
	}

	// column is one of two fixed identifiers, never caller input
	query := fmt.Sprintf(`
		UPDATE profiles
		SET %s = $2, updated_at = NOW()
		WHERE discord_id = $1
	`, column)

	tag, err := r.q.Exec(ctx, query, discordID, weapons)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to update %s for profile %d: %w", column, discordID, err))
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("profile %d not found", discordID)
	}

	return r.Get(ctx, discordID)
}

// SetMainWeapon sets the user's main weapon. The access layer defends
// against non-catalog codes even though handlers validate first.
func (r *ProfileRepository) SetMainWeapon(ctx context.Context, discordID int64, weapon string) (*models.Profile, error) {
	if !models.IsValidWeapon(weapon) {
		return nil, fmt.Errorf("weapon %q not in catalog", weapon)
	}

	tag, err := r.q.Exec(ctx, `
		UPDATE profiles
		SET main_weapon = $2, updated_at = NOW()
		WHERE discord_id = $1
	`, discordID, weapon)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to set main weapon for profile %d: %w", discordID, err))
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("profile %d not found", discordID)
	}

	return r.Get(ctx, discordID)
}

// IncrementDraws bumps each listed weapon's counter by one per
// occurrence, in a single statement, and returns the updated profile.
// Passing the same weapon N times increments its counter by N.
func (r *ProfileRepository) IncrementDraws(ctx context.Context, discordID int64, weapons []models.Weapon) (*models.Profile, error) {
	if len(weapons) == 0 {
		return r.Get(ctx, discordID)
	}

	deltas := make(map[models.Weapon]int64, len(weapons))
	for _, w := range weapons {
		deltas[w]++
	}

	codes := make([]string, 0, len(deltas))
	amounts := make([]int64, 0, len(deltas))
	for w, n := range deltas {
		codes = append(codes, string(w))
		amounts = append(amounts, n)
	}

	_, err := r.q.Exec(ctx, `
		UPDATE weapon_draws AS d
		SET count = d.count + v.delta
		FROM (SELECT unnest($2::text[]) AS weapon, unnest($3::bigint[]) AS delta) v
		WHERE d.discord_id = $1 AND d.weapon = v.weapon
	`, discordID, codes, amounts)
	if err != nil {
		return nil, storeError(fmt.Errorf("failed to increment draws for profile %d: %w", discordID, err))
	}

	return r.Get(ctx, discordID)
}

// ResetDraws zeroes all 14 counters, leaving bans, favorites, main
// weapon and server memberships untouched
func (r *ProfileRepository) ResetDraws(ctx context.Context, discordID int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE weapon_draws
		SET count = 0
		WHERE discord_id = $1
	`, discordID)
	if err != nil {
		return storeError(fmt.Errorf("failed to reset draws for profile %d: %w", discordID, err))
	}
	return nil
}
