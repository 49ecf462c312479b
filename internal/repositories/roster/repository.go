// Package roster provides the interface for player roster persistence:
// owned characters, material stock, upgrade requirements and talent
// progress.
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/DylanBreuer/GenshinTools/internal/repositories/roster Repository

import (
	"context"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
)

// Repository defines the interface for roster persistence. Writes are
// last-write-wins by natural key; UpdatedAt stamps come from the
// repository clock.
type Repository interface {
	// SetOwnedCharacter records or replaces an owned character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	SetOwnedCharacter(ctx context.Context, input SetOwnedCharacterInput) (*SetOwnedCharacterOutput, error)

	// GetOwnedCharacter retrieves an owned character by name
	// Returns errors.NotFound if the character is not owned
	GetOwnedCharacter(ctx context.Context, input GetOwnedCharacterInput) (*GetOwnedCharacterOutput, error)

	// ListOwnedCharacters retrieves every owned character, ordered by name
	ListOwnedCharacters(ctx context.Context, input ListOwnedCharactersInput) (*ListOwnedCharactersOutput, error)

	// SetMaterialStock records or replaces a material's stocked quantity
	SetMaterialStock(ctx context.Context, input SetMaterialStockInput) (*SetMaterialStockOutput, error)

	// GetMaterialStock retrieves one material's stocked quantity
	// Returns errors.NotFound if the material has never been stocked
	GetMaterialStock(ctx context.Context, input GetMaterialStockInput) (*GetMaterialStockOutput, error)

	// ListMaterialStock retrieves every stocked material, ordered by name
	ListMaterialStock(ctx context.Context, input ListMaterialStockInput) (*ListMaterialStockOutput, error)

	// SetRequirement records or replaces one character's need for a
	// material in one upgrade category
	SetRequirement(ctx context.Context, input SetRequirementInput) (*SetRequirementOutput, error)

	// ListRequirements retrieves a character's material requirements
	ListRequirements(ctx context.Context, input ListRequirementsInput) (*ListRequirementsOutput, error)

	// SetTalentProgress records or replaces progress on one talent
	SetTalentProgress(ctx context.Context, input SetTalentProgressInput) (*SetTalentProgressOutput, error)

	// ListTalentProgress retrieves a character's talent progress entries
	ListTalentProgress(ctx context.Context, input ListTalentProgressInput) (*ListTalentProgressOutput, error)
}

// SetOwnedCharacterInput defines the input for recording an owned character
type SetOwnedCharacterInput struct {
	OwnedCharacter *genshin.OwnedCharacter
}

// SetOwnedCharacterOutput defines the output for recording an owned character
type SetOwnedCharacterOutput struct {
	OwnedCharacter *genshin.OwnedCharacter
}

// GetOwnedCharacterInput defines the input for getting an owned character
type GetOwnedCharacterInput struct {
	CharacterName string
}

// GetOwnedCharacterOutput defines the output for getting an owned character
type GetOwnedCharacterOutput struct {
	OwnedCharacter *genshin.OwnedCharacter
}

// ListOwnedCharactersInput defines the input for listing owned characters
type ListOwnedCharactersInput struct {
	// Empty for now, filters can be added later
}

// ListOwnedCharactersOutput defines the output for listing owned characters
type ListOwnedCharactersOutput struct {
	OwnedCharacters []*genshin.OwnedCharacter
}

// SetMaterialStockInput defines the input for recording material stock
type SetMaterialStockInput struct {
	Stock *genshin.MaterialStock
}

// SetMaterialStockOutput defines the output for recording material stock
type SetMaterialStockOutput struct {
	Stock *genshin.MaterialStock
}

// GetMaterialStockInput defines the input for getting material stock
type GetMaterialStockInput struct {
	MaterialName string
}

// GetMaterialStockOutput defines the output for getting material stock
type GetMaterialStockOutput struct {
	Stock *genshin.MaterialStock
}

// ListMaterialStockInput defines the input for listing material stock
type ListMaterialStockInput struct {
	// Empty for now, filters can be added later
}

// ListMaterialStockOutput defines the output for listing material stock
type ListMaterialStockOutput struct {
	Stocks []*genshin.MaterialStock
}

// SetRequirementInput defines the input for recording a requirement
type SetRequirementInput struct {
	Requirement *genshin.MaterialRequirement
}

// SetRequirementOutput defines the output for recording a requirement
type SetRequirementOutput struct {
	Requirement *genshin.MaterialRequirement
}

// ListRequirementsInput defines the input for listing requirements
type ListRequirementsInput struct {
	CharacterName string
}

// ListRequirementsOutput defines the output for listing requirements
type ListRequirementsOutput struct {
	Requirements []*genshin.MaterialRequirement
}

// SetTalentProgressInput defines the input for recording talent progress
type SetTalentProgressInput struct {
	Progress *genshin.TalentProgress
}

// SetTalentProgressOutput defines the output for recording talent progress
type SetTalentProgressOutput struct {
	Progress *genshin.TalentProgress
}

// ListTalentProgressInput defines the input for listing talent progress
type ListTalentProgressInput struct {
	CharacterName string
}

// ListTalentProgressOutput defines the output for listing talent progress
type ListTalentProgressOutput struct {
	Progresses []*genshin.TalentProgress
}
