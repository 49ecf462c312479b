// Package genshin defines the catalog and roster records the application
// tracks. Catalog records are normalized upstream game data keyed by
// display name; roster records are the player's own progress against them.
package genshin

// Character represents a playable character in the catalog. Role is a
// free-form label like "Bow DPS"; imports leave it empty.
type Character struct {
	Name        string
	Element     string
	WeaponType  string
	Rarity      int
	Role        string
	Description string
}

// Material represents an upgrade material in the catalog.
// Type holds the raw upstream value: the category key when the material
// was discovered under a category endpoint, otherwise whatever type or
// category field the payload carried.
type Material struct {
	Name   string
	Type   string
	Rarity int
	Source string
}

// Weapon represents an equippable weapon in the catalog
type Weapon struct {
	Name        string
	WeaponType  string
	Rarity      int
	Source      string
	Description string
}

// ArtifactSet represents an artifact set and its set bonuses
type ArtifactSet struct {
	Name           string
	TwoPieceBonus  string
	FourPieceBonus string
}

// Talent represents a single talent of a character.
// Priority is 1-based; lower means upgrade first.
type Talent struct {
	Name        string
	Description string
	Priority    int
}

// Recommendation links a character to a recommended weapon or artifact
// set by name. Ranking is 1-based and dense; 1 is the best pick.
type Recommendation struct {
	Name    string
	Ranking int
}

// CharacterPayload bundles everything learned about one character from
// a single upstream fetch
type CharacterPayload struct {
	Character               *Character
	Talents                 []*Talent
	WeaponRecommendations   []*Recommendation
	ArtifactRecommendations []*Recommendation
}
