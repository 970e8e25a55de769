package testutil

import (
	"time"

	"mhroulette/models"
)

// CreateTestProfile creates a profile with empty lists and zeroed counters
func CreateTestProfile(discordID int64) *models.Profile {
	now := time.Now()

	counts := make(map[models.Weapon]int64, models.WeaponCount)
	for _, w := range models.AllWeapons() {
		counts[w] = 0
	}

	return &models.Profile{
		DiscordID:       discordID,
		BannedWeapons:   []string{},
		FavoriteWeapons: []string{},
		MainWeapon:      "",
		DrawCounts:      counts,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CreateTestProfileWithBans creates a profile with the given banned weapons
func CreateTestProfileWithBans(discordID int64, banned ...string) *models.Profile {
	profile := CreateTestProfile(discordID)
	profile.BannedWeapons = banned
	return profile
}

// CreateTestProfileWithFavorites creates a profile with the given favorites
func CreateTestProfileWithFavorites(discordID int64, favorites ...string) *models.Profile {
	profile := CreateTestProfile(discordID)
	profile.FavoriteWeapons = favorites
	return profile
}

// CreateTestProfileWithDraws creates a profile with specific draw counts
func CreateTestProfileWithDraws(discordID int64, draws map[models.Weapon]int64) *models.Profile {
	profile := CreateTestProfile(discordID)
	for w, n := range draws {
		profile.DrawCounts[w] = n
	}
	return profile
}
