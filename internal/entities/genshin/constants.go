package genshin

import "strings"

// Element constants
const (
	ElementAnemo   = "anemo"
	ElementGeo     = "geo"
	ElementElectro = "electro"
	ElementDendro  = "dendro"
	ElementPyro    = "pyro"
	ElementHydro   = "hydro"
	ElementCryo    = "cryo"
)

// Weapon type constants
const (
	WeaponTypeSword    = "sword"
	WeaponTypeClaymore = "claymore"
	WeaponTypePolearm  = "polearm"
	WeaponTypeBow      = "bow"
	WeaponTypeCatalyst = "catalyst"
)

// Default rarities applied when upstream data is missing or malformed
const (
	DefaultCharacterRarity = 5
	DefaultWeaponRarity    = 4
	DefaultMaterialRarity  = 1
)

// Progression bounds for roster records
const (
	MaxCharacterLevel = 90
	MaxAscensionLevel = 6
	MaxConstellations = 6
	MaxTalentLevel    = 15
)

// Elements lists every valid element value
var Elements = []string{
	ElementAnemo,
	ElementGeo,
	ElementElectro,
	ElementDendro,
	ElementPyro,
	ElementHydro,
	ElementCryo,
}

// NormalizeElement lowercases the value and checks it against the known
// element vocabulary. Unknown values come back empty rather than
// polluting the catalog.
func NormalizeElement(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, e := range Elements {
		if v == e {
			return e
		}
	}
	return ""
}

// MaterialClass is the coarse grouping derived from a material's type
type MaterialClass string

// Material classes
const (
	MaterialClassCharacter MaterialClass = "character"
	MaterialClassTalent    MaterialClass = "talent"
	MaterialClassWeapon    MaterialClass = "weapon"
	MaterialClassGeneral   MaterialClass = "general"
)

var characterTypeHints = []string{"character", "ascension", "boss", "local"}

// Class derives the coarse material class from the raw Type value.
// Weapon wins over character so "weapon-ascension" groups with weapons.
func (m *Material) Class() MaterialClass {
	t := strings.ToLower(m.Type)
	if strings.Contains(t, "weapon") {
		return MaterialClassWeapon
	}
	if strings.Contains(t, "talent") {
		return MaterialClassTalent
	}
	for _, hint := range characterTypeHints {
		if strings.Contains(t, hint) {
			return MaterialClassCharacter
		}
	}
	return MaterialClassGeneral
}
