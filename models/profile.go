package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Profile represents a user's persistent roulette state
type Profile struct {
	DiscordID       int64            `db:"discord_id"`
	BannedWeapons   []string         `db:"banned_weapons"`
	FavoriteWeapons []string         `db:"favorite_weapons"`
	MainWeapon      string           `db:"main_weapon"` // "" means unset
	Servers         []int64          `db:"-"`
	DrawCounts      map[Weapon]int64 `db:"-"` // always has all 14 catalog keys
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

// HasMainWeapon reports whether the user has set a main weapon
func (p *Profile) HasMainWeapon() bool {
	return p.MainWeapon != ""
}

// InServer reports whether the profile has been seen in the given guild
func (p *Profile) InServer(guildID int64) bool {
	for _, id := range p.Servers {
		if id == guildID {
			return true
		}
	}
	return false
}

// PossibleWeapons returns the catalog minus the user's banned weapons.
// Banned codes are matched case-insensitively against the catalog.
func (p *Profile) PossibleWeapons() []Weapon {
	banned := make(map[string]bool, len(p.BannedWeapons))
	for _, b := range p.BannedWeapons {
		banned[strings.ToLower(b)] = true
	}

	var possible []Weapon
	for _, w := range AllWeapons() {
		if !banned[strings.ToLower(string(w))] {
			possible = append(possible, w)
		}
	}
	return possible
}

// DrawCount returns how many times the given weapon has been drawn
func (p *Profile) DrawCount(w Weapon) int64 {
	return p.DrawCounts[w]
}

// TotalDraws returns the sum of all 14 draw counters
func (p *Profile) TotalDraws() int64 {
	var total int64
	for _, count := range p.DrawCounts {
		total += count
	}
	return total
}

// DrawRate returns the weapon's share of all draws as an integer percent
// string, e.g. "33%". A profile with no draws at all yields "0%".
func (p *Profile) DrawRate(w Weapon) string {
	total := p.TotalDraws()

	var percentage float64
	if total > 0 {
		percentage = float64(p.DrawCount(w)) / float64(total) * 100
	}

	return fmt.Sprintf("%d%%", int(math.Round(percentage)))
}
