package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/config"
	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	catalogrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog"
	rosterrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/roster"
)

var seedRedisAddr string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed Redis with example characters, materials and recommendations",
	Long: `Seed writes a small fixed dataset so the roster commands have
something to work against without running a full import.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedRedisAddr, "redis", "", "Redis address backing the catalog (defaults to localhost:6379)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if seedRedisAddr != "" {
			c.RedisAddr = seedRedisAddr
		}
	})
	if err != nil {
		return err
	}

	catalogRepo, rosterRepo, redisClient, err := openRoster(cfg.RedisAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx := cmd.Context()

	fmt.Println("Creating sample characters...")
	for _, character := range []*genshin.Character{
		{Name: "Amber", Element: "pyro", WeaponType: "bow", Rarity: 4, Role: "Bow DPS"},
		{Name: "Xiangling", Element: "pyro", WeaponType: "polearm", Rarity: 4, Role: "Off-field DPS"},
	} {
		if _, err := catalogRepo.UpsertCharacter(ctx, catalogrepo.UpsertCharacterInput{Character: character}); err != nil {
			return fmt.Errorf("failed to seed character %s: %w", character.Name, err)
		}
	}

	for _, weapon := range []*genshin.Weapon{
		{Name: "Skyward Harp", WeaponType: "bow", Rarity: 5},
		{Name: "Favonius Lance", WeaponType: "polearm", Rarity: 4},
	} {
		if _, err := catalogRepo.UpsertWeapon(ctx, catalogrepo.UpsertWeaponInput{Weapon: weapon}); err != nil {
			return fmt.Errorf("failed to seed weapon %s: %w", weapon.Name, err)
		}
	}

	for _, set := range []*genshin.ArtifactSet{
		{
			Name:           "Crimson Witch of Flames",
			TwoPieceBonus:  "+15% Pyro DMG Bonus",
			FourPieceBonus: "Pyro DMG bonus increases after using Elemental Skill",
		},
		{
			Name:           "Emblem of Severed Fate",
			TwoPieceBonus:  "+20% Energy Recharge",
			FourPieceBonus: "Burst DMG increases with Energy Recharge",
		},
	} {
		if _, err := catalogRepo.UpsertArtifactSet(ctx, catalogrepo.UpsertArtifactSetInput{ArtifactSet: set}); err != nil {
			return fmt.Errorf("failed to seed artifact set %s: %w", set.Name, err)
		}
	}

	fmt.Println("Creating materials...")
	for _, material := range []*genshin.Material{
		{Name: "Agnidus Agate Chunk", Type: "character", Rarity: 4, Source: "Pyro Regisvine"},
		{Name: "Firm Arrowhead", Type: "talent", Rarity: 2, Source: "Hilichurls"},
		{Name: "Everflame Seed", Type: "character", Rarity: 4, Source: "Pyro Regisvine"},
	} {
		if _, err := catalogRepo.UpsertMaterial(ctx, catalogrepo.UpsertMaterialInput{Material: material}); err != nil {
			return fmt.Errorf("failed to seed material %s: %w", material.Name, err)
		}
	}

	for _, requirement := range []*genshin.MaterialRequirement{
		{CharacterName: "Amber", Category: genshin.RequirementCategoryAscension, MaterialName: "Agnidus Agate Chunk", Quantity: 9},
		{CharacterName: "Amber", Category: genshin.RequirementCategoryTalent, MaterialName: "Firm Arrowhead", Quantity: 36},
		{CharacterName: "Xiangling", Category: genshin.RequirementCategoryAscension, MaterialName: "Everflame Seed", Quantity: 6},
	} {
		if _, err := rosterRepo.SetRequirement(ctx, rosterrepo.SetRequirementInput{Requirement: requirement}); err != nil {
			return fmt.Errorf("failed to seed requirement for %s: %w", requirement.CharacterName, err)
		}
	}

	talents := map[string][]*genshin.Talent{
		"Amber": {
			{Name: "Normal Attack: Sharpshooter", Priority: 3},
			{Name: "Explosive Puppet", Priority: 2},
			{Name: "Fiery Rain", Priority: 1},
		},
		"Xiangling": {
			{Name: "Dough-Fu", Priority: 2},
			{Name: "Guoba Attack", Priority: 3},
			{Name: "Pyronado", Priority: 1},
		},
	}
	for characterName, list := range talents {
		for _, talent := range list {
			if _, err := catalogRepo.UpsertTalent(ctx, catalogrepo.UpsertTalentInput{
				CharacterName: characterName,
				Talent:        talent,
			}); err != nil {
				return fmt.Errorf("failed to seed talent %s: %w", talent.Name, err)
			}
		}
	}

	for _, link := range []struct {
		character string
		weapon    string
		ranking   int
	}{
		{"Amber", "Skyward Harp", 1},
		{"Xiangling", "Favonius Lance", 2},
	} {
		if _, err := catalogRepo.UpsertWeaponRecommendation(ctx, catalogrepo.UpsertWeaponRecommendationInput{
			CharacterName:  link.character,
			Recommendation: &genshin.Recommendation{Name: link.weapon, Ranking: link.ranking},
		}); err != nil {
			return fmt.Errorf("failed to seed weapon recommendation for %s: %w", link.character, err)
		}
	}

	for _, link := range []struct {
		character string
		set       string
		ranking   int
	}{
		{"Amber", "Crimson Witch of Flames", 1},
		{"Xiangling", "Emblem of Severed Fate", 1},
	} {
		if _, err := catalogRepo.UpsertArtifactRecommendation(ctx, catalogrepo.UpsertArtifactRecommendationInput{
			CharacterName:  link.character,
			Recommendation: &genshin.Recommendation{Name: link.set, Ranking: link.ranking},
		}); err != nil {
			return fmt.Errorf("failed to seed artifact recommendation for %s: %w", link.character, err)
		}
	}

	fmt.Println("Sample data loaded.")
	return nil
}
