package ingest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/DylanBreuer/GenshinTools/internal/clients/genshinblue"
	genshinbluemock "github.com/DylanBreuer/GenshinTools/internal/clients/genshinblue/mock"
	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
	ingestorc "github.com/DylanBreuer/GenshinTools/internal/orchestrators/ingest"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/clock"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/idgen"
	catalogrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog"
	catalogmock "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog/mock"
	"github.com/DylanBreuer/GenshinTools/internal/services/ingest"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockClient      *genshinbluemock.MockClient
	mockCatalogRepo *catalogmock.MockRepository
	orchestrator    *ingestorc.Orchestrator
	ctx             context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = genshinbluemock.NewMockClient(s.ctrl)
	s.mockCatalogRepo = catalogmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := ingestorc.New(&ingestorc.Config{
		Client:      s.mockClient,
		CatalogRepo: s.mockCatalogRepo,
		IDGenerator: idgen.NewSequential("run"),
		Clock:       &clock.Fixed{T: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestRun_Success() {
	amber := &genshin.Character{Name: "Amber", Element: "pyro", WeaponType: "bow", Rarity: 4}
	lisa := &genshin.Character{Name: "Lisa", Element: "electro", WeaponType: "catalyst", Rarity: 4}
	sharpshooter := &genshin.Talent{Name: "Sharpshooter", Priority: 1}
	plume := &genshin.Material{Name: "Dvalin's Plume", Type: "boss", Rarity: 4, Source: "Stormterror"}
	stringless := &genshin.Weapon{Name: "The Stringless", WeaponType: "bow", Rarity: 4, Source: "gacha"}
	troupe := &genshin.ArtifactSet{Name: "Wanderer's Troupe", TwoPieceBonus: "ATK +18%"}

	// Amber and Lisa both recommend a weapon the upstream weapon list
	// never defines, under different casings.
	payloads := []*genshin.CharacterPayload{
		{
			Character:               amber,
			Talents:                 []*genshin.Talent{sharpshooter},
			WeaponRecommendations:   []*genshin.Recommendation{{Name: "the stringless", Ranking: 1}, {Name: "Foobar Blade", Ranking: 2}},
			ArtifactRecommendations: []*genshin.Recommendation{{Name: "wanderer's troupe", Ranking: 1}},
		},
		{
			Character:             lisa,
			WeaponRecommendations: []*genshin.Recommendation{{Name: "foobar blade", Ranking: 1}},
		},
	}

	s.mockClient.EXPECT().FetchCharacters(s.ctx).Return(payloads, nil)
	s.mockClient.EXPECT().FetchMaterials(s.ctx).Return([]*genshin.Material{plume}, nil)
	s.mockClient.EXPECT().FetchWeapons(s.ctx).Return([]*genshin.Weapon{stringless}, nil)
	s.mockClient.EXPECT().FetchArtifactSets(s.ctx).Return([]*genshin.ArtifactSet{troupe}, nil)

	s.mockCatalogRepo.EXPECT().
		UpsertCharacter(s.ctx, catalogrepo.UpsertCharacterInput{Character: amber}).
		Return(&catalogrepo.UpsertCharacterOutput{Character: amber, Created: true}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertCharacter(s.ctx, catalogrepo.UpsertCharacterInput{Character: lisa}).
		Return(&catalogrepo.UpsertCharacterOutput{Character: lisa, Created: false}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertMaterial(s.ctx, catalogrepo.UpsertMaterialInput{Material: plume}).
		Return(&catalogrepo.UpsertMaterialOutput{Material: plume, Created: true}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertWeapon(s.ctx, catalogrepo.UpsertWeaponInput{Weapon: stringless}).
		Return(&catalogrepo.UpsertWeaponOutput{Weapon: stringless, Created: false}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertArtifactSet(s.ctx, catalogrepo.UpsertArtifactSetInput{ArtifactSet: troupe}).
		Return(&catalogrepo.UpsertArtifactSetOutput{ArtifactSet: troupe, Created: true}, nil)

	s.mockCatalogRepo.EXPECT().
		UpsertTalent(s.ctx, catalogrepo.UpsertTalentInput{CharacterName: "Amber", Talent: sharpshooter}).
		Return(&catalogrepo.UpsertTalentOutput{Talent: sharpshooter, Created: true}, nil)

	// The unmatched name becomes one placeholder, typed after the first
	// character that recommended it, and is reused for Lisa's link.
	placeholder := &genshin.Weapon{Name: "Foobar Blade", WeaponType: "bow", Rarity: genshin.DefaultWeaponRarity}
	s.mockCatalogRepo.EXPECT().
		UpsertWeapon(s.ctx, catalogrepo.UpsertWeaponInput{Weapon: placeholder}).
		Return(&catalogrepo.UpsertWeaponOutput{Weapon: placeholder, Created: true}, nil).
		Times(1)

	s.mockCatalogRepo.EXPECT().
		UpsertWeaponRecommendation(s.ctx, catalogrepo.UpsertWeaponRecommendationInput{
			CharacterName:  "Amber",
			Recommendation: &genshin.Recommendation{Name: "The Stringless", Ranking: 1},
		}).
		Return(&catalogrepo.UpsertWeaponRecommendationOutput{Created: true}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertWeaponRecommendation(s.ctx, catalogrepo.UpsertWeaponRecommendationInput{
			CharacterName:  "Amber",
			Recommendation: &genshin.Recommendation{Name: "Foobar Blade", Ranking: 2},
		}).
		Return(&catalogrepo.UpsertWeaponRecommendationOutput{Created: true}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertWeaponRecommendation(s.ctx, catalogrepo.UpsertWeaponRecommendationInput{
			CharacterName:  "Lisa",
			Recommendation: &genshin.Recommendation{Name: "Foobar Blade", Ranking: 1},
		}).
		Return(&catalogrepo.UpsertWeaponRecommendationOutput{Created: true}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertArtifactRecommendation(s.ctx, catalogrepo.UpsertArtifactRecommendationInput{
			CharacterName:  "Amber",
			Recommendation: &genshin.Recommendation{Name: "Wanderer's Troupe", Ranking: 1},
		}).
		Return(&catalogrepo.UpsertArtifactRecommendationOutput{Created: true}, nil)

	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Require().NotNil(output.Summary)

	summary := output.Summary
	s.Equal("run_1", summary.RunID)
	s.Equal(ingest.StageCount{Fetched: 2, Created: 1}, summary.Characters)
	s.Equal(ingest.StageCount{Fetched: 1, Created: 1}, summary.Materials)
	s.Equal(ingest.StageCount{Fetched: 1, Created: 0}, summary.Weapons)
	s.Equal(ingest.StageCount{Fetched: 1, Created: 1}, summary.ArtifactSets)
	s.Equal(1, summary.PlaceholderWeapons)
	s.Equal(0, summary.PlaceholderArtifactSets)
}

func (s *OrchestratorTestSuite) TestRun_PlaceholderArtifactSet() {
	amber := &genshin.Character{Name: "Amber", Element: "pyro", WeaponType: "bow", Rarity: 4}
	payloads := []*genshin.CharacterPayload{
		{
			Character:               amber,
			ArtifactRecommendations: []*genshin.Recommendation{{Name: "Mystery Set", Ranking: 1}},
		},
	}

	s.mockClient.EXPECT().FetchCharacters(s.ctx).Return(payloads, nil)
	s.mockClient.EXPECT().FetchMaterials(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchWeapons(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchArtifactSets(s.ctx).Return(nil, nil)

	s.mockCatalogRepo.EXPECT().
		UpsertCharacter(s.ctx, gomock.Any()).
		Return(&catalogrepo.UpsertCharacterOutput{Character: amber, Created: true}, nil)

	// Placeholder sets carry no bonuses, only the recommended name.
	placeholder := &genshin.ArtifactSet{Name: "Mystery Set"}
	s.mockCatalogRepo.EXPECT().
		UpsertArtifactSet(s.ctx, catalogrepo.UpsertArtifactSetInput{ArtifactSet: placeholder}).
		Return(&catalogrepo.UpsertArtifactSetOutput{ArtifactSet: placeholder, Created: true}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertArtifactRecommendation(s.ctx, catalogrepo.UpsertArtifactRecommendationInput{
			CharacterName:  "Amber",
			Recommendation: &genshin.Recommendation{Name: "Mystery Set", Ranking: 1},
		}).
		Return(&catalogrepo.UpsertArtifactRecommendationOutput{Created: true}, nil)

	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{})

	s.NoError(err)
	s.Equal(1, output.Summary.PlaceholderArtifactSets)
	s.Equal(0, output.Summary.PlaceholderWeapons)
}

func (s *OrchestratorTestSuite) TestRun_LegacyMaterials() {
	mora := &genshin.Material{Name: "Mora", Type: "currency", Rarity: 1}

	s.mockClient.EXPECT().FetchCharacters(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchAllMaterials(s.ctx).Return([]*genshin.Material{mora}, nil)
	s.mockClient.EXPECT().FetchWeapons(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchArtifactSets(s.ctx).Return(nil, nil)

	s.mockCatalogRepo.EXPECT().
		UpsertMaterial(s.ctx, catalogrepo.UpsertMaterialInput{Material: mora}).
		Return(&catalogrepo.UpsertMaterialOutput{Material: mora, Created: true}, nil)

	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{LegacyMaterials: true})

	s.NoError(err)
	s.Equal(ingest.StageCount{Fetched: 1, Created: 1}, output.Summary.Materials)
}

func (s *OrchestratorTestSuite) TestRun_NilInput() {
	output, err := s.orchestrator.Run(s.ctx, nil)

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRun_EmptyCatalog() {
	s.mockClient.EXPECT().FetchCharacters(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchMaterials(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchWeapons(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchArtifactSets(s.ctx).Return(nil, nil)

	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("run_1", output.Summary.RunID)
	s.Equal(ingest.StageCount{}, output.Summary.Characters)
	s.Equal(time.Duration(0), output.Summary.Duration)
}

func (s *OrchestratorTestSuite) TestRun_FetchCharactersError() {
	s.mockClient.EXPECT().
		FetchCharacters(s.ctx).
		Return(nil, &genshinblue.FetchError{Endpoint: "/characters", StatusCode: 502})

	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{})

	s.Error(err)
	s.Nil(output)
	s.Contains(err.Error(), "failed to fetch characters")

	var fetchErr *genshinblue.FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.Equal(502, fetchErr.StatusCode)
}

func (s *OrchestratorTestSuite) TestRun_FetchWeaponsErrorAbortsRun() {
	s.mockClient.EXPECT().FetchCharacters(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().FetchMaterials(s.ctx).Return(nil, nil)
	s.mockClient.EXPECT().
		FetchWeapons(s.ctx).
		Return(nil, errors.Unavailable("connection refused"))

	// No FetchArtifactSets expectation: the run must stop here.
	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{})

	s.Error(err)
	s.Nil(output)
	s.Contains(err.Error(), "failed to fetch weapons")
}

func (s *OrchestratorTestSuite) TestRun_SaveCharacterError() {
	amber := &genshin.Character{Name: "Amber", Element: "pyro", WeaponType: "bow", Rarity: 4}

	s.mockClient.EXPECT().
		FetchCharacters(s.ctx).
		Return([]*genshin.CharacterPayload{{Character: amber}}, nil)
	s.mockCatalogRepo.EXPECT().
		UpsertCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis write failed"))

	output, err := s.orchestrator.Run(s.ctx, &ingest.RunInput{})

	s.Error(err)
	s.Nil(output)
	s.Contains(err.Error(), "failed to save character Amber")
	s.True(errors.IsInternal(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewValidation(t *testing.T) {
	t.Run("missing client", func(t *testing.T) {
		_, err := ingestorc.New(&ingestorc.Config{
			CatalogRepo: catalogmock.NewMockRepository(gomock.NewController(t)),
		})
		if err == nil {
			t.Fatal("expected error for missing client")
		}
	})

	t.Run("missing catalog repo", func(t *testing.T) {
		_, err := ingestorc.New(&ingestorc.Config{
			Client: genshinbluemock.NewMockClient(gomock.NewController(t)),
		})
		if err == nil {
			t.Fatal("expected error for missing catalog repo")
		}
	})

	t.Run("defaults id generator and clock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orchestrator, err := ingestorc.New(&ingestorc.Config{
			Client:      genshinbluemock.NewMockClient(ctrl),
			CatalogRepo: catalogmock.NewMockRepository(ctrl),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orchestrator == nil {
			t.Fatal("expected orchestrator")
		}
	})
}
