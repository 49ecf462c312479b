// Package roster defines the interface for roster and upgrade-progress
// operations
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/DylanBreuer/GenshinTools/internal/services/roster Service

import (
	"context"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
)

// Service defines the interface for roster operations
type Service interface {
	// Owned characters
	SetOwnedCharacter(ctx context.Context, input *SetOwnedCharacterInput) (*SetOwnedCharacterOutput, error)
	ListOwnedCharacters(ctx context.Context, input *ListOwnedCharactersInput) (*ListOwnedCharactersOutput, error)

	// Material stock
	SetMaterialStock(ctx context.Context, input *SetMaterialStockInput) (*SetMaterialStockOutput, error)
	ListMaterialStock(ctx context.Context, input *ListMaterialStockInput) (*ListMaterialStockOutput, error)

	// Upgrade requirements
	SetRequirement(ctx context.Context, input *SetRequirementInput) (*SetRequirementOutput, error)
	ListRequirements(ctx context.Context, input *ListRequirementsInput) (*ListRequirementsOutput, error)

	// Talent progress
	SetTalentProgress(ctx context.Context, input *SetTalentProgressInput) (*SetTalentProgressOutput, error)
	ListTalentProgress(ctx context.Context, input *ListTalentProgressInput) (*ListTalentProgressOutput, error)

	// Aggregations
	RequiredMaterials(ctx context.Context, input *RequiredMaterialsInput) (*RequiredMaterialsOutput, error)
	SummarizeMaterials(ctx context.Context, input *SummarizeMaterialsInput) (*SummarizeMaterialsOutput, error)
}

// SetOwnedCharacterInput defines the request for recording an owned
// character. The character must exist in the catalog.
type SetOwnedCharacterInput struct {
	OwnedCharacter *genshin.OwnedCharacter
}

// SetOwnedCharacterOutput defines the response for recording an owned
// character
type SetOwnedCharacterOutput struct {
	OwnedCharacter *genshin.OwnedCharacter
}

// ListOwnedCharactersInput defines the request for listing owned characters
type ListOwnedCharactersInput struct {
	// Empty for now, filters can be added later
}

// ListOwnedCharactersOutput defines the response for listing owned characters
type ListOwnedCharactersOutput struct {
	OwnedCharacters []*genshin.OwnedCharacter
}

// SetMaterialStockInput defines the request for recording material stock
type SetMaterialStockInput struct {
	Stock *genshin.MaterialStock
}

// SetMaterialStockOutput defines the response for recording material stock
type SetMaterialStockOutput struct {
	Stock *genshin.MaterialStock
}

// ListMaterialStockInput defines the request for listing material stock
type ListMaterialStockInput struct {
	// Empty for now, filters can be added later
}

// ListMaterialStockOutput defines the response for listing material stock
type ListMaterialStockOutput struct {
	Stocks []*genshin.MaterialStock
}

// SetRequirementInput defines the request for recording a requirement
type SetRequirementInput struct {
	Requirement *genshin.MaterialRequirement
}

// SetRequirementOutput defines the response for recording a requirement
type SetRequirementOutput struct {
	Requirement *genshin.MaterialRequirement
}

// ListRequirementsInput defines the request for listing a character's
// requirements
type ListRequirementsInput struct {
	CharacterName string
}

// ListRequirementsOutput defines the response for listing requirements
type ListRequirementsOutput struct {
	Requirements []*genshin.MaterialRequirement
}

// SetTalentProgressInput defines the request for recording talent progress
type SetTalentProgressInput struct {
	Progress *genshin.TalentProgress
}

// SetTalentProgressOutput defines the response for recording talent progress
type SetTalentProgressOutput struct {
	Progress *genshin.TalentProgress
}

// ListTalentProgressInput defines the request for listing talent progress
type ListTalentProgressInput struct {
	CharacterName string
}

// ListTalentProgressOutput defines the response for listing talent progress
type ListTalentProgressOutput struct {
	Progresses []*genshin.TalentProgress
}

// RequiredMaterialsInput defines the request for tallying one
// character's outstanding requirements
type RequiredMaterialsInput struct {
	CharacterName string
}

// RequiredMaterialsOutput defines the response for tallying one
// character's outstanding requirements
type RequiredMaterialsOutput struct {
	Summaries []*genshin.MaterialSummary
}

// SummarizeMaterialsInput defines the request for the roster-wide
// material summary
type SummarizeMaterialsInput struct {
	// Empty for now, filters can be added later
}

// SummarizeMaterialsOutput defines the response for the roster-wide
// material summary
type SummarizeMaterialsOutput struct {
	Summaries []*genshin.MaterialSummary
}
