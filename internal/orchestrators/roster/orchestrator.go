// Package roster implements the roster orchestrator: player-owned
// characters, material stock, upgrade requirements and talent progress,
// validated against the ingested catalog before anything is written.
package roster

import (
	"context"
	"sort"
	"strings"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
	catalogrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog"
	rosterrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/roster"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

// Config holds the dependencies for the roster orchestrator
type Config struct {
	CatalogRepo catalogrepo.Repository
	RosterRepo  rosterrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}

	return vb.Build()
}

// Orchestrator implements the roster.Service interface
type Orchestrator struct {
	catalogRepo catalogrepo.Repository
	rosterRepo  rosterrepo.Repository
}

// New creates a new roster orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		catalogRepo: cfg.CatalogRepo,
		rosterRepo:  cfg.RosterRepo,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ rostersvc.Service = (*Orchestrator)(nil)

// SetOwnedCharacter records or replaces a roster entry after checking
// the character and any chosen gear against the catalog
func (o *Orchestrator) SetOwnedCharacter(ctx context.Context, input *rostersvc.SetOwnedCharacterInput) (*rostersvc.SetOwnedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.OwnedCharacter == nil {
		return nil, errors.InvalidArgument("owned character is required")
	}
	owned := input.OwnedCharacter

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterName", owned.CharacterName, vb)
	errors.ValidateRange("Level", owned.Level, 1, genshin.MaxCharacterLevel, vb)
	errors.ValidateRange("AscensionLevel", owned.AscensionLevel, 0, genshin.MaxAscensionLevel, vb)
	errors.ValidateRange("Constellations", owned.Constellations, 0, genshin.MaxConstellations, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.requireCharacter(ctx, owned.CharacterName); err != nil {
		return nil, err
	}
	if owned.ChosenWeapon != "" {
		if _, err := o.catalogRepo.GetWeapon(ctx, catalogrepo.GetWeaponInput{Name: owned.ChosenWeapon}); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.FailedPreconditionf("weapon %q is not in the catalog", owned.ChosenWeapon)
			}
			return nil, errors.Wrap(err, "failed to check chosen weapon")
		}
	}
	if owned.ChosenArtifactSet != "" {
		if _, err := o.catalogRepo.GetArtifactSet(ctx, catalogrepo.GetArtifactSetInput{Name: owned.ChosenArtifactSet}); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.FailedPreconditionf("artifact set %q is not in the catalog", owned.ChosenArtifactSet)
			}
			return nil, errors.Wrap(err, "failed to check chosen artifact set")
		}
	}

	out, err := o.rosterRepo.SetOwnedCharacter(ctx, rosterrepo.SetOwnedCharacterInput{
		OwnedCharacter: owned,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save owned character %s", owned.CharacterName)
	}

	return &rostersvc.SetOwnedCharacterOutput{OwnedCharacter: out.OwnedCharacter}, nil
}

// ListOwnedCharacters retrieves every roster entry ordered by name
func (o *Orchestrator) ListOwnedCharacters(ctx context.Context, input *rostersvc.ListOwnedCharactersInput) (*rostersvc.ListOwnedCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.rosterRepo.ListOwnedCharacters(ctx, rosterrepo.ListOwnedCharactersInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned characters")
	}

	return &rostersvc.ListOwnedCharactersOutput{OwnedCharacters: out.OwnedCharacters}, nil
}

// SetMaterialStock records or replaces a stocked quantity after checking
// the material against the catalog
func (o *Orchestrator) SetMaterialStock(ctx context.Context, input *rostersvc.SetMaterialStockInput) (*rostersvc.SetMaterialStockOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Stock == nil {
		return nil, errors.InvalidArgument("stock is required")
	}
	stock := input.Stock

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("MaterialName", stock.MaterialName, vb)
	if stock.QuantityOwned < 0 {
		vb.Fieldf("QuantityOwned", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.requireMaterial(ctx, stock.MaterialName); err != nil {
		return nil, err
	}

	out, err := o.rosterRepo.SetMaterialStock(ctx, rosterrepo.SetMaterialStockInput{
		Stock: stock,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save stock for %s", stock.MaterialName)
	}

	return &rostersvc.SetMaterialStockOutput{Stock: out.Stock}, nil
}

// ListMaterialStock retrieves every stocked material ordered by name
func (o *Orchestrator) ListMaterialStock(ctx context.Context, input *rostersvc.ListMaterialStockInput) (*rostersvc.ListMaterialStockOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.rosterRepo.ListMaterialStock(ctx, rosterrepo.ListMaterialStockInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list material stock")
	}

	return &rostersvc.ListMaterialStockOutput{Stocks: out.Stocks}, nil
}

// SetRequirement records or replaces one character's need for a material
// in one upgrade category
func (o *Orchestrator) SetRequirement(ctx context.Context, input *rostersvc.SetRequirementInput) (*rostersvc.SetRequirementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Requirement == nil {
		return nil, errors.InvalidArgument("requirement is required")
	}
	req := input.Requirement

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterName", req.CharacterName, vb)
	errors.ValidateRequired("MaterialName", req.MaterialName, vb)
	errors.ValidateEnum("Category", req.Category, genshin.RequirementCategories, vb)
	if req.Quantity < 0 {
		vb.Fieldf("Quantity", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.requireCharacter(ctx, req.CharacterName); err != nil {
		return nil, err
	}
	if err := o.requireMaterial(ctx, req.MaterialName); err != nil {
		return nil, err
	}

	out, err := o.rosterRepo.SetRequirement(ctx, rosterrepo.SetRequirementInput{
		Requirement: req,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save requirement for %s", req.CharacterName)
	}

	return &rostersvc.SetRequirementOutput{Requirement: out.Requirement}, nil
}

// ListRequirements retrieves a character's material requirements
func (o *Orchestrator) ListRequirements(ctx context.Context, input *rostersvc.ListRequirementsInput) (*rostersvc.ListRequirementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	out, err := o.rosterRepo.ListRequirements(ctx, rosterrepo.ListRequirementsInput{
		CharacterName: input.CharacterName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list requirements for %s", input.CharacterName)
	}

	return &rostersvc.ListRequirementsOutput{Requirements: out.Requirements}, nil
}

// SetTalentProgress records or replaces progress on one talent. The
// character must already be in the roster and the talent must exist in
// the catalog; the saved entry uses the catalog's spelling of the name.
func (o *Orchestrator) SetTalentProgress(ctx context.Context, input *rostersvc.SetTalentProgressInput) (*rostersvc.SetTalentProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Progress == nil {
		return nil, errors.InvalidArgument("progress is required")
	}
	progress := input.Progress

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterName", progress.CharacterName, vb)
	errors.ValidateRequired("TalentName", progress.TalentName, vb)
	errors.ValidateRange("CurrentLevel", progress.CurrentLevel, 1, genshin.MaxTalentLevel, vb)
	errors.ValidateRange("TargetLevel", progress.TargetLevel, 1, genshin.MaxTalentLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.rosterRepo.GetOwnedCharacter(ctx, rosterrepo.GetOwnedCharacterInput{
		CharacterName: progress.CharacterName,
	}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("character %q is not in the roster", progress.CharacterName)
		}
		return nil, errors.Wrap(err, "failed to check owned character")
	}

	talent, err := o.findTalent(ctx, progress.CharacterName, progress.TalentName)
	if err != nil {
		return nil, err
	}

	saved := *progress
	saved.TalentName = talent.Name

	out, err := o.rosterRepo.SetTalentProgress(ctx, rosterrepo.SetTalentProgressInput{
		Progress: &saved,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save talent progress for %s", progress.CharacterName)
	}

	return &rostersvc.SetTalentProgressOutput{Progress: out.Progress}, nil
}

// ListTalentProgress retrieves a character's talent progress entries
func (o *Orchestrator) ListTalentProgress(ctx context.Context, input *rostersvc.ListTalentProgressInput) (*rostersvc.ListTalentProgressOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	out, err := o.rosterRepo.ListTalentProgress(ctx, rosterrepo.ListTalentProgressInput{
		CharacterName: input.CharacterName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list talent progress for %s", input.CharacterName)
	}

	return &rostersvc.ListTalentProgressOutput{Progresses: out.Progresses}, nil
}

// RequiredMaterials tallies one roster character's requirements against
// the stocked quantities
func (o *Orchestrator) RequiredMaterials(ctx context.Context, input *rostersvc.RequiredMaterialsInput) (*rostersvc.RequiredMaterialsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	if _, err := o.rosterRepo.GetOwnedCharacter(ctx, rosterrepo.GetOwnedCharacterInput{
		CharacterName: input.CharacterName,
	}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("character %q is not in the roster", input.CharacterName)
		}
		return nil, errors.Wrap(err, "failed to get owned character")
	}

	requirements, err := o.rosterRepo.ListRequirements(ctx, rosterrepo.ListRequirementsInput{
		CharacterName: input.CharacterName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list requirements for %s", input.CharacterName)
	}

	tally := make(map[string]int)
	for _, req := range requirements.Requirements {
		tally[req.MaterialName] += req.Quantity
	}

	summaries, err := o.summarize(ctx, tally)
	if err != nil {
		return nil, err
	}

	return &rostersvc.RequiredMaterialsOutput{Summaries: summaries}, nil
}

// SummarizeMaterials tallies requirements across the whole roster
// against the stocked quantities
func (o *Orchestrator) SummarizeMaterials(ctx context.Context, input *rostersvc.SummarizeMaterialsInput) (*rostersvc.SummarizeMaterialsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	owned, err := o.rosterRepo.ListOwnedCharacters(ctx, rosterrepo.ListOwnedCharactersInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned characters")
	}

	tally := make(map[string]int)
	for _, entry := range owned.OwnedCharacters {
		requirements, err := o.rosterRepo.ListRequirements(ctx, rosterrepo.ListRequirementsInput{
			CharacterName: entry.CharacterName,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list requirements for %s", entry.CharacterName)
		}
		for _, req := range requirements.Requirements {
			tally[req.MaterialName] += req.Quantity
		}
	}

	summaries, err := o.summarize(ctx, tally)
	if err != nil {
		return nil, err
	}

	return &rostersvc.SummarizeMaterialsOutput{Summaries: summaries}, nil
}

// requireCharacter checks the catalog knows the name before a roster
// write references it
func (o *Orchestrator) requireCharacter(ctx context.Context, name string) error {
	_, err := o.catalogRepo.GetCharacter(ctx, catalogrepo.GetCharacterInput{Name: name})
	if err == nil {
		return nil
	}
	if errors.IsNotFound(err) {
		return errors.FailedPreconditionf("character %q is not in the catalog, run an import first", name)
	}
	return errors.Wrap(err, "failed to check character")
}

func (o *Orchestrator) requireMaterial(ctx context.Context, name string) error {
	_, err := o.catalogRepo.GetMaterial(ctx, catalogrepo.GetMaterialInput{Name: name})
	if err == nil {
		return nil
	}
	if errors.IsNotFound(err) {
		return errors.FailedPreconditionf("material %q is not in the catalog, run an import first", name)
	}
	return errors.Wrap(err, "failed to check material")
}

// findTalent resolves a talent name against the character's catalog
// talents, matching case-insensitively
func (o *Orchestrator) findTalent(ctx context.Context, characterName, talentName string) (*genshin.Talent, error) {
	talents, err := o.catalogRepo.ListTalents(ctx, catalogrepo.ListTalentsInput{
		CharacterName: characterName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list talents for %s", characterName)
	}

	for _, talent := range talents.Talents {
		if strings.EqualFold(talent.Name, talentName) {
			return talent, nil
		}
	}

	return nil, errors.FailedPreconditionf("talent %q is not in the catalog for %s", talentName, characterName)
}

// summarize builds per-material summaries from a requirement tally and
// the current stock, ordered by material name. Missing never goes below
// zero; surplus stock is just surplus.
func (o *Orchestrator) summarize(ctx context.Context, tally map[string]int) ([]*genshin.MaterialSummary, error) {
	stocks, err := o.rosterRepo.ListMaterialStock(ctx, rosterrepo.ListMaterialStockInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list material stock")
	}

	inventory := make(map[string]int, len(stocks.Stocks))
	for _, stock := range stocks.Stocks {
		inventory[stock.MaterialName] = stock.QuantityOwned
	}

	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]*genshin.MaterialSummary, 0, len(names))
	for _, name := range names {
		required := tally[name]
		owned := inventory[name]
		summaries = append(summaries, &genshin.MaterialSummary{
			MaterialName: name,
			Required:     required,
			Owned:        owned,
			Missing:      max(0, required-owned),
		})
	}

	return summaries, nil
}
