// Package catalog provides the interface for game catalog persistence.
// Catalog records are keyed by their natural name: upstream data has no
// stable identifiers, names are the identity.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/DylanBreuer/GenshinTools/internal/repositories/catalog Repository

import (
	"context"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
)

// Repository defines the interface for catalog persistence. Every
// mutation is an idempotent upsert reporting whether it created the
// record, so ingestion runs can be replayed against live data.
type Repository interface {
	// UpsertCharacter writes a character keyed by name
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	UpsertCharacter(ctx context.Context, input UpsertCharacterInput) (*UpsertCharacterOutput, error)

	// GetCharacter retrieves a character by name
	// Returns errors.NotFound if no character has that name
	GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters retrieves every character, ordered by name
	ListCharacters(ctx context.Context, input ListCharactersInput) (*ListCharactersOutput, error)

	// UpsertMaterial writes a material keyed by name
	UpsertMaterial(ctx context.Context, input UpsertMaterialInput) (*UpsertMaterialOutput, error)

	// GetMaterial retrieves a material by name
	// Returns errors.NotFound if no material has that name
	GetMaterial(ctx context.Context, input GetMaterialInput) (*GetMaterialOutput, error)

	// ListMaterials retrieves every material, ordered by name
	ListMaterials(ctx context.Context, input ListMaterialsInput) (*ListMaterialsOutput, error)

	// UpsertWeapon writes a weapon keyed by name
	UpsertWeapon(ctx context.Context, input UpsertWeaponInput) (*UpsertWeaponOutput, error)

	// GetWeapon retrieves a weapon by name
	// Returns errors.NotFound if no weapon has that name
	GetWeapon(ctx context.Context, input GetWeaponInput) (*GetWeaponOutput, error)

	// ListWeapons retrieves every weapon, ordered by name
	ListWeapons(ctx context.Context, input ListWeaponsInput) (*ListWeaponsOutput, error)

	// UpsertArtifactSet writes an artifact set keyed by name
	UpsertArtifactSet(ctx context.Context, input UpsertArtifactSetInput) (*UpsertArtifactSetOutput, error)

	// GetArtifactSet retrieves an artifact set by name
	// Returns errors.NotFound if no artifact set has that name
	GetArtifactSet(ctx context.Context, input GetArtifactSetInput) (*GetArtifactSetOutput, error)

	// ListArtifactSets retrieves every artifact set, ordered by name
	ListArtifactSets(ctx context.Context, input ListArtifactSetsInput) (*ListArtifactSetsOutput, error)

	// UpsertTalent writes a talent keyed by character and talent name
	UpsertTalent(ctx context.Context, input UpsertTalentInput) (*UpsertTalentOutput, error)

	// ListTalents retrieves a character's talents, ordered by name
	ListTalents(ctx context.Context, input ListTalentsInput) (*ListTalentsOutput, error)

	// UpsertWeaponRecommendation links a character to a recommended
	// weapon, overwriting the ranking on replays
	UpsertWeaponRecommendation(ctx context.Context, input UpsertWeaponRecommendationInput) (*UpsertWeaponRecommendationOutput, error)

	// ListWeaponRecommendations retrieves a character's weapon
	// recommendations, ordered by ranking
	ListWeaponRecommendations(ctx context.Context, input ListWeaponRecommendationsInput) (*ListWeaponRecommendationsOutput, error)

	// UpsertArtifactRecommendation links a character to a recommended
	// artifact set, overwriting the ranking on replays
	UpsertArtifactRecommendation(ctx context.Context, input UpsertArtifactRecommendationInput) (*UpsertArtifactRecommendationOutput, error)

	// ListArtifactRecommendations retrieves a character's artifact set
	// recommendations, ordered by ranking
	ListArtifactRecommendations(ctx context.Context, input ListArtifactRecommendationsInput) (*ListArtifactRecommendationsOutput, error)
}

// UpsertCharacterInput defines the input for upserting a character
type UpsertCharacterInput struct {
	Character *genshin.Character
}

// UpsertCharacterOutput defines the output for upserting a character
type UpsertCharacterOutput struct {
	Character *genshin.Character
	Created   bool
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	Name string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Character *genshin.Character
}

// ListCharactersInput defines the input for listing characters
type ListCharactersInput struct {
	// Empty for now, filters can be added later
}

// ListCharactersOutput defines the output for listing characters
type ListCharactersOutput struct {
	Characters []*genshin.Character
}

// UpsertMaterialInput defines the input for upserting a material
type UpsertMaterialInput struct {
	Material *genshin.Material
}

// UpsertMaterialOutput defines the output for upserting a material
type UpsertMaterialOutput struct {
	Material *genshin.Material
	Created  bool
}

// GetMaterialInput defines the input for getting a material
type GetMaterialInput struct {
	Name string
}

// GetMaterialOutput defines the output for getting a material
type GetMaterialOutput struct {
	Material *genshin.Material
}

// ListMaterialsInput defines the input for listing materials
type ListMaterialsInput struct {
	// Type filters by material type when non-empty
	Type string
}

// ListMaterialsOutput defines the output for listing materials
type ListMaterialsOutput struct {
	Materials []*genshin.Material
}

// UpsertWeaponInput defines the input for upserting a weapon
type UpsertWeaponInput struct {
	Weapon *genshin.Weapon
}

// UpsertWeaponOutput defines the output for upserting a weapon
type UpsertWeaponOutput struct {
	Weapon  *genshin.Weapon
	Created bool
}

// GetWeaponInput defines the input for getting a weapon
type GetWeaponInput struct {
	Name string
}

// GetWeaponOutput defines the output for getting a weapon
type GetWeaponOutput struct {
	Weapon *genshin.Weapon
}

// ListWeaponsInput defines the input for listing weapons
type ListWeaponsInput struct {
	// Empty for now, filters can be added later
}

// ListWeaponsOutput defines the output for listing weapons
type ListWeaponsOutput struct {
	Weapons []*genshin.Weapon
}

// UpsertArtifactSetInput defines the input for upserting an artifact set
type UpsertArtifactSetInput struct {
	ArtifactSet *genshin.ArtifactSet
}

// UpsertArtifactSetOutput defines the output for upserting an artifact set
type UpsertArtifactSetOutput struct {
	ArtifactSet *genshin.ArtifactSet
	Created     bool
}

// GetArtifactSetInput defines the input for getting an artifact set
type GetArtifactSetInput struct {
	Name string
}

// GetArtifactSetOutput defines the output for getting an artifact set
type GetArtifactSetOutput struct {
	ArtifactSet *genshin.ArtifactSet
}

// ListArtifactSetsInput defines the input for listing artifact sets
type ListArtifactSetsInput struct {
	// Empty for now, filters can be added later
}

// ListArtifactSetsOutput defines the output for listing artifact sets
type ListArtifactSetsOutput struct {
	ArtifactSets []*genshin.ArtifactSet
}

// UpsertTalentInput defines the input for upserting a talent
type UpsertTalentInput struct {
	CharacterName string
	Talent        *genshin.Talent
}

// UpsertTalentOutput defines the output for upserting a talent
type UpsertTalentOutput struct {
	Talent  *genshin.Talent
	Created bool
}

// ListTalentsInput defines the input for listing a character's talents
type ListTalentsInput struct {
	CharacterName string
}

// ListTalentsOutput defines the output for listing a character's talents
type ListTalentsOutput struct {
	Talents []*genshin.Talent
}

// UpsertWeaponRecommendationInput defines the input for linking a
// recommended weapon
type UpsertWeaponRecommendationInput struct {
	CharacterName  string
	Recommendation *genshin.Recommendation
}

// UpsertWeaponRecommendationOutput defines the output for linking a
// recommended weapon
type UpsertWeaponRecommendationOutput struct {
	Recommendation *genshin.Recommendation
	Created        bool
}

// ListWeaponRecommendationsInput defines the input for listing weapon
// recommendations
type ListWeaponRecommendationsInput struct {
	CharacterName string
}

// ListWeaponRecommendationsOutput defines the output for listing weapon
// recommendations
type ListWeaponRecommendationsOutput struct {
	Recommendations []*genshin.Recommendation
}

// UpsertArtifactRecommendationInput defines the input for linking a
// recommended artifact set
type UpsertArtifactRecommendationInput struct {
	CharacterName  string
	Recommendation *genshin.Recommendation
}

// UpsertArtifactRecommendationOutput defines the output for linking a
// recommended artifact set
type UpsertArtifactRecommendationOutput struct {
	Recommendation *genshin.Recommendation
	Created        bool
}

// ListArtifactRecommendationsInput defines the input for listing
// artifact set recommendations
type ListArtifactRecommendationsInput struct {
	CharacterName string
}

// ListArtifactRecommendationsOutput defines the output for listing
// artifact set recommendations
type ListArtifactRecommendationsOutput struct {
	Recommendations []*genshin.Recommendation
}
