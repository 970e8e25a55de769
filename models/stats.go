package models

// StatKind selects which server-wide aggregation to compute
type StatKind string

const (
	// StatKindDraws sums draw counters across every profile in the server
	StatKindDraws StatKind = "draws"

	// StatKindBans counts ban occurrences (a user banning 3 weapons
	// contributes 3 occurrences)
	StatKindBans StatKind = "bans"

	// StatKindPopularity counts favorite occurrences across profiles
	// that have at least one favorite
	StatKindPopularity StatKind = "popularity"

	// StatKindMains counts profiles per main weapon, excluding profiles
	// with no main weapon set
	StatKindMains StatKind = "mains"
)

// WeaponStat is one row of a server aggregation: a weapon, its count for
// the requested kind, and that count as a percentage of the kind's total.
// Rows are ordered by percentage descending; tie order is unspecified.
type WeaponStat struct {
	Weapon     Weapon
	Count      int64
	Percentage float64
}
