package models

// Weapon is the short code identifying one of the 14 weapon categories
type Weapon string

const (
	WeaponGreatSword     Weapon = "GS"
	WeaponLongSword      Weapon = "LS"
	WeaponSwordAndShield Weapon = "SnS"
	WeaponDualBlades     Weapon = "DB"
	WeaponHammer         Weapon = "Hammer"
	WeaponHuntingHorn    Weapon = "HH"
	WeaponLance          Weapon = "Lance"
	WeaponGunlance       Weapon = "GL"
	WeaponSwitchAxe      Weapon = "SA"
	WeaponChargeBlade    Weapon = "CB"
	WeaponInsectGlaive   Weapon = "IG"
	WeaponBow            Weapon = "Bow"
	WeaponLightBowgun    Weapon = "LBG"
	WeaponHeavyBowgun    Weapon = "HBG"
)

// weaponCatalog is the fixed catalog order used everywhere a stable
// ordering matters (prompts, recap tables, counter seeding)
var weaponCatalog = []Weapon{
	WeaponGreatSword,
	WeaponLongSword,
	WeaponSwordAndShield,
	WeaponDualBlades,
	WeaponHammer,
	WeaponHuntingHorn,
	WeaponLance,
	WeaponGunlance,
	WeaponSwitchAxe,
	WeaponChargeBlade,
	WeaponInsectGlaive,
	WeaponBow,
	WeaponLightBowgun,
	WeaponHeavyBowgun,
}

var weaponDisplayNames = map[Weapon]string{
	WeaponGreatSword:     "Great Sword",
	WeaponLongSword:      "Long Sword",
	WeaponSwordAndShield: "Sword and Shield",
	WeaponDualBlades:     "Dual Blades",
	WeaponHammer:         "Hammer",
	WeaponHuntingHorn:    "Hunting Horn",
	WeaponLance:          "Lance",
	WeaponGunlance:       "Gunlance",
	WeaponSwitchAxe:      "Switch Axe",
	WeaponChargeBlade:    "Charge Blade",
	WeaponInsectGlaive:   "Insect Glaive",
	WeaponBow:            "Bow",
	WeaponLightBowgun:    "Light Bowgun",
	WeaponHeavyBowgun:    "Heavy Bowgun",
}

// AllWeapons returns the full catalog in fixed order
func AllWeapons() []Weapon {
	weapons := make([]Weapon, len(weaponCatalog))
	copy(weapons, weaponCatalog)
	return weapons
}

// WeaponCount is the size of the weapon catalog
const WeaponCount = 14

// IsValidWeapon reports whether code is a catalog short code.
// Comparison is case-sensitive, matching the stored codes.
func IsValidWeapon(code string) bool {
	_, ok := weaponDisplayNames[Weapon(code)]
	return ok
}

// String returns the short code
func (w Weapon) String() string {
	return string(w)
}

// DisplayName returns the full weapon name, or "" for an unknown code
func (w Weapon) DisplayName() string {
	return weaponDisplayNames[w]
}
