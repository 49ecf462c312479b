package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/clock"
	"github.com/DylanBreuer/GenshinTools/internal/repositories/roster"
	"github.com/DylanBreuer/GenshinTools/internal/testutils"
)

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    roster.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := roster.NewRedis(&roster.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: testTime},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSetOwnedCharacter() {
	owned := &genshin.OwnedCharacter{
		CharacterName:  "Amber",
		Level:          40,
		AscensionLevel: 2,
		Constellations: 1,
		ChosenWeapon:   "The Stringless",
	}

	out, err := s.repo.SetOwnedCharacter(s.ctx, roster.SetOwnedCharacterInput{OwnedCharacter: owned})
	s.Require().NoError(err)
	s.Equal(testTime.Unix(), out.OwnedCharacter.UpdatedAt)

	// the caller's copy is not mutated
	s.Zero(owned.UpdatedAt)

	got, err := s.repo.GetOwnedCharacter(s.ctx, roster.GetOwnedCharacterInput{CharacterName: "Amber"})
	s.Require().NoError(err)
	s.Equal(40, got.OwnedCharacter.Level)
	s.Equal("The Stringless", got.OwnedCharacter.ChosenWeapon)
	s.Equal(testTime.Unix(), got.OwnedCharacter.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestSetOwnedCharacterReplaces() {
	_, err := s.repo.SetOwnedCharacter(s.ctx, roster.SetOwnedCharacterInput{
		OwnedCharacter: &genshin.OwnedCharacter{CharacterName: "Amber", Level: 40},
	})
	s.Require().NoError(err)

	_, err = s.repo.SetOwnedCharacter(s.ctx, roster.SetOwnedCharacterInput{
		OwnedCharacter: &genshin.OwnedCharacter{CharacterName: "Amber", Level: 50},
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListOwnedCharacters(s.ctx, roster.ListOwnedCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.OwnedCharacters, 1)
	s.Equal(50, listed.OwnedCharacters[0].Level)
}

func (s *RedisRepositoryTestSuite) TestGetOwnedCharacterNotFound() {
	_, err := s.repo.GetOwnedCharacter(s.ctx, roster.GetOwnedCharacterInput{CharacterName: "Nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListOwnedCharactersSorted() {
	for _, name := range []string{"Xiangling", "Amber", "Lisa"} {
		_, err := s.repo.SetOwnedCharacter(s.ctx, roster.SetOwnedCharacterInput{
			OwnedCharacter: &genshin.OwnedCharacter{CharacterName: name, Level: 1},
		})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListOwnedCharacters(s.ctx, roster.ListOwnedCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.OwnedCharacters, 3)
	s.Equal("Amber", listed.OwnedCharacters[0].CharacterName)
	s.Equal("Lisa", listed.OwnedCharacters[1].CharacterName)
	s.Equal("Xiangling", listed.OwnedCharacters[2].CharacterName)
}

func (s *RedisRepositoryTestSuite) TestMaterialStockRoundTrip() {
	out, err := s.repo.SetMaterialStock(s.ctx, roster.SetMaterialStockInput{
		Stock: &genshin.MaterialStock{MaterialName: "Everflame Seed", QuantityOwned: 12},
	})
	s.Require().NoError(err)
	s.Equal(testTime.Unix(), out.Stock.UpdatedAt)

	got, err := s.repo.GetMaterialStock(s.ctx, roster.GetMaterialStockInput{MaterialName: "Everflame Seed"})
	s.Require().NoError(err)
	s.Equal(12, got.Stock.QuantityOwned)

	// overwrite with a new count
	_, err = s.repo.SetMaterialStock(s.ctx, roster.SetMaterialStockInput{
		Stock: &genshin.MaterialStock{MaterialName: "Everflame Seed", QuantityOwned: 3},
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListMaterialStock(s.ctx, roster.ListMaterialStockInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Stocks, 1)
	s.Equal(3, listed.Stocks[0].QuantityOwned)
}

func (s *RedisRepositoryTestSuite) TestRequirementsScopedByCharacter() {
	requirements := []*genshin.MaterialRequirement{
		{CharacterName: "Amber", Category: genshin.RequirementCategoryAscension, MaterialName: "Everflame Seed", Quantity: 46},
		{CharacterName: "Amber", Category: genshin.RequirementCategoryTalent, MaterialName: "Teachings of Freedom", Quantity: 9},
		{CharacterName: "Xiangling", Category: genshin.RequirementCategoryAscension, MaterialName: "Everflame Seed", Quantity: 20},
	}
	for _, req := range requirements {
		_, err := s.repo.SetRequirement(s.ctx, roster.SetRequirementInput{Requirement: req})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListRequirements(s.ctx, roster.ListRequirementsInput{CharacterName: "Amber"})
	s.Require().NoError(err)
	s.Require().Len(listed.Requirements, 2)
	s.Equal("Everflame Seed", listed.Requirements[0].MaterialName)
	s.Equal(46, listed.Requirements[0].Quantity)
	s.Equal("Teachings of Freedom", listed.Requirements[1].MaterialName)
}

func (s *RedisRepositoryTestSuite) TestSetRequirementReplacesByKey() {
	req := &genshin.MaterialRequirement{
		CharacterName: "Amber",
		Category:      genshin.RequirementCategoryAscension,
		MaterialName:  "Everflame Seed",
		Quantity:      46,
	}
	_, err := s.repo.SetRequirement(s.ctx, roster.SetRequirementInput{Requirement: req})
	s.Require().NoError(err)

	req.Quantity = 30
	_, err = s.repo.SetRequirement(s.ctx, roster.SetRequirementInput{Requirement: req})
	s.Require().NoError(err)

	listed, err := s.repo.ListRequirements(s.ctx, roster.ListRequirementsInput{CharacterName: "Amber"})
	s.Require().NoError(err)
	s.Require().Len(listed.Requirements, 1)
	s.Equal(30, listed.Requirements[0].Quantity)

	// same material under another category is a separate requirement
	_, err = s.repo.SetRequirement(s.ctx, roster.SetRequirementInput{
		Requirement: &genshin.MaterialRequirement{
			CharacterName: "Amber",
			Category:      genshin.RequirementCategoryTalent,
			MaterialName:  "Everflame Seed",
			Quantity:      6,
		},
	})
	s.Require().NoError(err)

	listed, err = s.repo.ListRequirements(s.ctx, roster.ListRequirementsInput{CharacterName: "Amber"})
	s.Require().NoError(err)
	s.Len(listed.Requirements, 2)
}

func (s *RedisRepositoryTestSuite) TestTalentProgress() {
	progresses := []*genshin.TalentProgress{
		{CharacterName: "Amber", TalentName: "Sharpshooter", CurrentLevel: 4, TargetLevel: 8},
		{CharacterName: "Amber", TalentName: "Fiery Rain", CurrentLevel: 6, TargetLevel: 10},
		{CharacterName: "Amber", TalentName: "Explosive Puppet", Skip: true},
	}
	for _, p := range progresses {
		_, err := s.repo.SetTalentProgress(s.ctx, roster.SetTalentProgressInput{Progress: p})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListTalentProgress(s.ctx, roster.ListTalentProgressInput{CharacterName: "Amber"})
	s.Require().NoError(err)
	s.Require().Len(listed.Progresses, 3)
	s.Equal("Explosive Puppet", listed.Progresses[0].TalentName)
	s.True(listed.Progresses[0].Skip)
	s.Equal("Fiery Rain", listed.Progresses[1].TalentName)
	s.Equal("Sharpshooter", listed.Progresses[2].TalentName)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.SetOwnedCharacter(s.ctx, roster.SetOwnedCharacterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SetMaterialStock(s.ctx, roster.SetMaterialStockInput{
		Stock: &genshin.MaterialStock{QuantityOwned: 5},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SetRequirement(s.ctx, roster.SetRequirementInput{
		Requirement: &genshin.MaterialRequirement{CharacterName: "Amber", MaterialName: "Everflame Seed"},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SetTalentProgress(s.ctx, roster.SetTalentProgressInput{
		Progress: &genshin.TalentProgress{CharacterName: "Amber"},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListRequirements(s.ctx, roster.ListRequirementsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := roster.NewRedis(&roster.RedisConfig{})
	require.Error(t, err)
	require.True(t, errors.IsInvalidArgument(err))
}
