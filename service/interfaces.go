package service

import (
	"context"

	"mhroulette/events"
	"mhroulette/models"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// GetOrCreate retrieves the profile, creating an empty one if none
	// exists; the bool reports whether a new profile was created
	GetOrCreate(ctx context.Context, discordID int64) (*models.Profile, bool, error)

	// Get retrieves a profile, or nil if none exists
	Get(ctx context.Context, discordID int64) (*models.Profile, error)

	// AddServer records guild membership; re-adding is a no-op
	AddServer(ctx context.Context, discordID, guildID int64) error

	// RemoveServer removes a guild from the user's server list
	RemoveServer(ctx context.Context, discordID, guildID int64) error

	// SetBans replaces the banned weapon list wholesale
	SetBans(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error)

	// SetFavorites replaces the favorite weapon list wholesale
	SetFavorites(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error)

	// SetMainWeapon sets the user's main weapon
	SetMainWeapon(ctx context.Context, discordID int64, weapon string) (*models.Profile, error)

	// IncrementDraws bumps counters for the listed weapons in one write
	// and returns the updated profile
	IncrementDraws(ctx context.Context, discordID int64, weapons []models.Weapon) (*models.Profile, error)

	// ResetDraws zeroes all draw counters
	ResetDraws(ctx context.Context, discordID int64) error
}

// StatsRepository defines the interface for server aggregations
type StatsRepository interface {
	ServerDrawStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error)
	ServerBanStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error)
	ServerFavoriteStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error)
	ServerMainStats(ctx context.Context, guildID int64) ([]models.WeaponStat, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// ProfileService defines the interface for profile operations
type ProfileService interface {
	// GetOrCreate resolves the caller's profile, creating it on first touch
	GetOrCreate(ctx context.Context, discordID int64) (*models.Profile, error)

	// RecordServerMembership notes that the caller was seen in a guild
	RecordServerMembership(ctx context.Context, discordID, guildID int64) error

	// SetBans replaces the banned weapon list; every code must be in
	// the catalog
	SetBans(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error)

	// ClearBans removes all banned weapons
	ClearBans(ctx context.Context, discordID int64) (*models.Profile, error)

	// SetFavorites replaces the favorite list, de-duplicating while
	// preserving first-seen order
	SetFavorites(ctx context.Context, discordID int64, weapons []string) (*models.Profile, error)

	// SetMainWeapon sets the main weapon; ErrInvalidWeapon for codes
	// outside the catalog
	SetMainWeapon(ctx context.Context, discordID int64, weapon string) (*models.Profile, error)

	// ResetStats zeroes the caller's draw counters
	ResetStats(ctx context.Context, discordID int64) error
}

// DrawService defines the interface for randomized weapon draws
type DrawService interface {
	// DrawOne draws uniformly from the catalog minus the profile's
	// bans, records it, and returns the updated profile plus the weapon
	DrawOne(ctx context.Context, profile *models.Profile) (*models.Profile, models.Weapon, error)

	// DrawMany performs n independent draws with replacement and
	// records them in one batched write; n <= 0 draws nothing
	DrawMany(ctx context.Context, profile *models.Profile, n int) ([]models.Weapon, error)

	// DrawOneFromFavorites draws uniformly from the profile's favorites
	// (bans are not applied to favorites)
	DrawOneFromFavorites(ctx context.Context, profile *models.Profile) (*models.Profile, models.Weapon, error)

	// DrawManyFromFavorites is DrawMany over the favorites list
	DrawManyFromFavorites(ctx context.Context, profile *models.Profile, n int) ([]models.Weapon, error)
}

// StatsService defines the interface for server statistics
type StatsService interface {
	// ServerStats computes the aggregation of the given kind for a guild
	ServerStats(ctx context.Context, kind models.StatKind, guildID int64) ([]models.WeaponStat, error)
}
