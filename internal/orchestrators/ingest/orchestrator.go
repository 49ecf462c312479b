// Package ingest implements the catalog ingestion orchestrator: it
// pulls the full upstream catalog through the genshin.blue client,
// upserts every record by natural name and reconciles recommendation
// names back to canonical records, synthesizing placeholders for names
// the upstream never defined.
package ingest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DylanBreuer/GenshinTools/internal/clients/genshinblue"
	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/clock"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/idgen"
	catalogrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog"
	"github.com/DylanBreuer/GenshinTools/internal/services/ingest"
)

// Config holds the dependencies for the ingest orchestrator
type Config struct {
	Client      genshinblue.Client
	CatalogRepo catalogrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}

	return vb.Build()
}

// Orchestrator implements the ingest.Service interface
type Orchestrator struct {
	client      genshinblue.Client
	catalogRepo catalogrepo.Repository
	idGen       idgen.Generator
	clock       clock.Clock
}

// New creates a new ingest orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("run")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		client:      cfg.Client,
		catalogRepo: cfg.CatalogRepo,
		idGen:       idGen,
		clock:       c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ ingest.Service = (*Orchestrator)(nil)

// Run executes one full ingestion: characters, materials, weapons and
// artifact sets in that order, then the per-character build data that
// cross-references them. Stages run sequentially; a failing fetch
// aborts everything after it.
func (o *Orchestrator) Run(ctx context.Context, input *ingest.RunInput) (*ingest.RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	start := o.clock.Now()
	summary := &ingest.Summary{RunID: o.idGen.Generate()}

	slog.InfoContext(ctx, "Starting catalog ingestion",
		"run_id", summary.RunID,
		"legacy_materials", input.LegacyMaterials)

	characters, err := o.ingestCharacters(ctx, summary)
	if err != nil {
		return nil, err
	}

	if err := o.ingestMaterials(ctx, input.LegacyMaterials, summary); err != nil {
		return nil, err
	}

	weaponMap, err := o.ingestWeapons(ctx, summary)
	if err != nil {
		return nil, err
	}

	artifactMap, err := o.ingestArtifactSets(ctx, summary)
	if err != nil {
		return nil, err
	}

	if err := o.linkBuildData(ctx, characters, weaponMap, artifactMap, summary); err != nil {
		return nil, err
	}

	summary.Duration = o.clock.Now().Sub(start)

	slog.InfoContext(ctx, "Catalog ingestion complete",
		"run_id", summary.RunID,
		"characters", summary.Characters.Fetched,
		"materials", summary.Materials.Fetched,
		"weapons", summary.Weapons.Fetched,
		"artifact_sets", summary.ArtifactSets.Fetched,
		"placeholder_weapons", summary.PlaceholderWeapons,
		"placeholder_artifact_sets", summary.PlaceholderArtifactSets,
		"duration", summary.Duration)

	return &ingest.RunOutput{Summary: summary}, nil
}

func (o *Orchestrator) ingestCharacters(ctx context.Context, summary *ingest.Summary) ([]*genshin.CharacterPayload, error) {
	characters, err := o.client.FetchCharacters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch characters")
	}

	summary.Characters.Fetched = len(characters)
	for _, payload := range characters {
		out, err := o.catalogRepo.UpsertCharacter(ctx, catalogrepo.UpsertCharacterInput{
			Character: payload.Character,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save character %s", payload.Character.Name)
		}
		if out.Created {
			summary.Characters.Created++
		}
	}

	return characters, nil
}

func (o *Orchestrator) ingestMaterials(ctx context.Context, legacy bool, summary *ingest.Summary) error {
	var (
		materials []*genshin.Material
		err       error
	)
	if legacy {
		materials, err = o.client.FetchAllMaterials(ctx)
	} else {
		materials, err = o.client.FetchMaterials(ctx)
	}
	if err != nil {
		return errors.Wrap(err, "failed to fetch materials")
	}

	summary.Materials.Fetched = len(materials)
	for _, material := range materials {
		out, err := o.catalogRepo.UpsertMaterial(ctx, catalogrepo.UpsertMaterialInput{
			Material: material,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to save material %s", material.Name)
		}
		if out.Created {
			summary.Materials.Created++
		}
	}

	return nil
}

func (o *Orchestrator) ingestWeapons(ctx context.Context, summary *ingest.Summary) (map[string]*genshin.Weapon, error) {
	weapons, err := o.client.FetchWeapons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch weapons")
	}

	summary.Weapons.Fetched = len(weapons)
	weaponMap := make(map[string]*genshin.Weapon, len(weapons))
	for _, weapon := range weapons {
		out, err := o.catalogRepo.UpsertWeapon(ctx, catalogrepo.UpsertWeaponInput{
			Weapon: weapon,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save weapon %s", weapon.Name)
		}
		if out.Created {
			summary.Weapons.Created++
		}
		weaponMap[strings.ToLower(weapon.Name)] = weapon
	}

	return weaponMap, nil
}

func (o *Orchestrator) ingestArtifactSets(ctx context.Context, summary *ingest.Summary) (map[string]*genshin.ArtifactSet, error) {
	sets, err := o.client.FetchArtifactSets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch artifact sets")
	}

	summary.ArtifactSets.Fetched = len(sets)
	artifactMap := make(map[string]*genshin.ArtifactSet, len(sets))
	for _, set := range sets {
		out, err := o.catalogRepo.UpsertArtifactSet(ctx, catalogrepo.UpsertArtifactSetInput{
			ArtifactSet: set,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save artifact set %s", set.Name)
		}
		if out.Created {
			summary.ArtifactSets.Created++
		}
		artifactMap[strings.ToLower(set.Name)] = set
	}

	return artifactMap, nil
}

// linkBuildData writes each character's talents and resolves its
// recommendations against the fetched catalogs. A recommendation name
// with no canonical record gets a placeholder, registered back into
// the map so every later reference reuses the same record.
func (o *Orchestrator) linkBuildData(
	ctx context.Context,
	characters []*genshin.CharacterPayload,
	weaponMap map[string]*genshin.Weapon,
	artifactMap map[string]*genshin.ArtifactSet,
	summary *ingest.Summary,
) error {
	for _, payload := range characters {
		characterName := payload.Character.Name

		for _, talent := range payload.Talents {
			if _, err := o.catalogRepo.UpsertTalent(ctx, catalogrepo.UpsertTalentInput{
				CharacterName: characterName,
				Talent:        talent,
			}); err != nil {
				return errors.Wrapf(err, "failed to save talent %s for %s", talent.Name, characterName)
			}
		}

		for _, rec := range payload.WeaponRecommendations {
			weapon, ok := weaponMap[strings.ToLower(rec.Name)]
			if !ok {
				weapon = &genshin.Weapon{
					Name:       rec.Name,
					WeaponType: payload.Character.WeaponType,
					Rarity:     genshin.DefaultWeaponRarity,
				}
				out, err := o.catalogRepo.UpsertWeapon(ctx, catalogrepo.UpsertWeaponInput{
					Weapon: weapon,
				})
				if err != nil {
					return errors.Wrapf(err, "failed to save placeholder weapon %s", weapon.Name)
				}
				weaponMap[strings.ToLower(weapon.Name)] = weapon
				if out.Created {
					summary.PlaceholderWeapons++
				}
				slog.DebugContext(ctx, "Recommendation matched no fetched weapon, saved placeholder",
					"character", characterName,
					"weapon", weapon.Name)
			}

			if _, err := o.catalogRepo.UpsertWeaponRecommendation(ctx, catalogrepo.UpsertWeaponRecommendationInput{
				CharacterName:  characterName,
				Recommendation: &genshin.Recommendation{Name: weapon.Name, Ranking: rec.Ranking},
			}); err != nil {
				return errors.Wrapf(err, "failed to link weapon %s for %s", weapon.Name, characterName)
			}
		}

		for _, rec := range payload.ArtifactRecommendations {
			set, ok := artifactMap[strings.ToLower(rec.Name)]
			if !ok {
				set = &genshin.ArtifactSet{Name: rec.Name}
				out, err := o.catalogRepo.UpsertArtifactSet(ctx, catalogrepo.UpsertArtifactSetInput{
					ArtifactSet: set,
				})
				if err != nil {
					return errors.Wrapf(err, "failed to save placeholder artifact set %s", set.Name)
				}
				artifactMap[strings.ToLower(set.Name)] = set
				if out.Created {
					summary.PlaceholderArtifactSets++
				}
				slog.DebugContext(ctx, "Recommendation matched no fetched artifact set, saved placeholder",
					"character", characterName,
					"artifact_set", set.Name)
			}

			if _, err := o.catalogRepo.UpsertArtifactRecommendation(ctx, catalogrepo.UpsertArtifactRecommendationInput{
				CharacterName:  characterName,
				Recommendation: &genshin.Recommendation{Name: set.Name, Ranking: rec.Ranking},
			}); err != nil {
				return errors.Wrapf(err, "failed to link artifact set %s for %s", set.Name, characterName)
			}
		}
	}

	return nil
}
