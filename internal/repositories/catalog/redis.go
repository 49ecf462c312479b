package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
	redisclient "github.com/DylanBreuer/GenshinTools/internal/redis"
)

const (
	characterKeyPrefix   = "catalog:character:"
	materialKeyPrefix    = "catalog:material:"
	weaponKeyPrefix      = "catalog:weapon:"
	artifactKeyPrefix    = "catalog:artifact:"
	talentKeyPrefix      = "catalog:talent:"
	weaponRecKeyPrefix   = "catalog:weapon-rec:"
	artifactRecKeyPrefix = "catalog:artifact-rec:"

	characterIndexKey = "catalog:characters"
	materialIndexKey  = "catalog:materials"
	weaponIndexKey    = "catalog:weapons"
	artifactIndexKey  = "catalog:artifacts"

	talentIndexPrefix      = "catalog:talents:"
	weaponRecIndexPrefix   = "catalog:weapon-recs:"
	artifactRecIndexPrefix = "catalog:artifact-recs:"

	// Error messages
	errCharacterNil       = "character cannot be nil"
	errMaterialNil        = "material cannot be nil"
	errWeaponNil          = "weapon cannot be nil"
	errArtifactSetNil     = "artifact set cannot be nil"
	errTalentNil          = "talent cannot be nil"
	errRecommendationNil  = "recommendation cannot be nil"
	errNameEmpty          = "name cannot be empty"
	errCharacterNameEmpty = "character name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// upsert writes one JSON record and registers its name in the index
// set, reporting whether the record key existed before the write
func (r *redisRepository) upsert(ctx context.Context, key, indexKey, member string, record any) (bool, error) {
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to check existence of %s", key)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return false, errors.Wrapf(err, "failed to marshal record for %s", key)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // catalog records never expire
	pipe.SAdd(ctx, indexKey, member)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errors.Wrapf(err, "failed to write %s", key)
	}

	return exists == 0, nil
}

// getJSON reads one JSON record into out, reporting false when the key
// does not exist
func (r *redisRepository) getJSON(ctx context.Context, key string, out any) (bool, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to get %s", key)
	}

	if err := json.Unmarshal([]byte(result), out); err != nil {
		return false, errors.Wrapf(err, "failed to unmarshal record at %s", key)
	}
	return true, nil
}

// sortedMembers returns the index set's members in lexical order, so
// listings are deterministic
func (r *redisRepository) sortedMembers(ctx context.Context, indexKey string) ([]string, error) {
	members, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}
	sort.Strings(members)
	return members, nil
}

func (r *redisRepository) UpsertCharacter(ctx context.Context, input UpsertCharacterInput) (*UpsertCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	created, err := r.upsert(ctx,
		characterKeyPrefix+input.Character.Name, characterIndexKey, input.Character.Name, input.Character)
	if err != nil {
		return nil, err
	}

	return &UpsertCharacterOutput{Character: input.Character, Created: created}, nil
}

func (r *redisRepository) GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var character genshin.Character
	found, err := r.getJSON(ctx, characterKeyPrefix+input.Name, &character)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("character %s not found", input.Name)
	}

	return &GetCharacterOutput{Character: &character}, nil
}

func (r *redisRepository) ListCharacters(ctx context.Context, _ ListCharactersInput) (*ListCharactersOutput, error) {
	names, err := r.sortedMembers(ctx, characterIndexKey)
	if err != nil {
		return nil, err
	}

	characters := make([]*genshin.Character, 0, len(names))
	for _, name := range names {
		out, err := r.GetCharacter(ctx, GetCharacterInput{Name: name})
		if err != nil {
			if errors.IsNotFound(err) {
				// record vanished, clean up the index
				r.client.SRem(ctx, characterIndexKey, name)
				continue
			}
			return nil, err
		}
		characters = append(characters, out.Character)
	}

	return &ListCharactersOutput{Characters: characters}, nil
}

func (r *redisRepository) UpsertMaterial(ctx context.Context, input UpsertMaterialInput) (*UpsertMaterialOutput, error) {
	if input.Material == nil {
		return nil, errors.InvalidArgument(errMaterialNil)
	}
	if input.Material.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	created, err := r.upsert(ctx,
		materialKeyPrefix+input.Material.Name, materialIndexKey, input.Material.Name, input.Material)
	if err != nil {
		return nil, err
	}

	return &UpsertMaterialOutput{Material: input.Material, Created: created}, nil
}

func (r *redisRepository) GetMaterial(ctx context.Context, input GetMaterialInput) (*GetMaterialOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var material genshin.Material
	found, err := r.getJSON(ctx, materialKeyPrefix+input.Name, &material)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("material %s not found", input.Name)
	}

	return &GetMaterialOutput{Material: &material}, nil
}

func (r *redisRepository) ListMaterials(ctx context.Context, input ListMaterialsInput) (*ListMaterialsOutput, error) {
	names, err := r.sortedMembers(ctx, materialIndexKey)
	if err != nil {
		return nil, err
	}

	materials := make([]*genshin.Material, 0, len(names))
	for _, name := range names {
		out, err := r.GetMaterial(ctx, GetMaterialInput{Name: name})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, materialIndexKey, name)
				continue
			}
			return nil, err
		}
		if input.Type != "" && !strings.EqualFold(out.Material.Type, input.Type) {
			continue
		}
		materials = append(materials, out.Material)
	}

	return &ListMaterialsOutput{Materials: materials}, nil
}

func (r *redisRepository) UpsertWeapon(ctx context.Context, input UpsertWeaponInput) (*UpsertWeaponOutput, error) {
	if input.Weapon == nil {
		return nil, errors.InvalidArgument(errWeaponNil)
	}
	if input.Weapon.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	created, err := r.upsert(ctx,
		weaponKeyPrefix+input.Weapon.Name, weaponIndexKey, input.Weapon.Name, input.Weapon)
	if err != nil {
		return nil, err
	}

	return &UpsertWeaponOutput{Weapon: input.Weapon, Created: created}, nil
}

func (r *redisRepository) GetWeapon(ctx context.Context, input GetWeaponInput) (*GetWeaponOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var weapon genshin.Weapon
	found, err := r.getJSON(ctx, weaponKeyPrefix+input.Name, &weapon)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("weapon %s not found", input.Name)
	}

	return &GetWeaponOutput{Weapon: &weapon}, nil
}

func (r *redisRepository) ListWeapons(ctx context.Context, _ ListWeaponsInput) (*ListWeaponsOutput, error) {
	names, err := r.sortedMembers(ctx, weaponIndexKey)
	if err != nil {
		return nil, err
	}

	weapons := make([]*genshin.Weapon, 0, len(names))
	for _, name := range names {
		out, err := r.GetWeapon(ctx, GetWeaponInput{Name: name})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, weaponIndexKey, name)
				continue
			}
			return nil, err
		}
		weapons = append(weapons, out.Weapon)
	}

	return &ListWeaponsOutput{Weapons: weapons}, nil
}

func (r *redisRepository) UpsertArtifactSet(ctx context.Context, input UpsertArtifactSetInput) (*UpsertArtifactSetOutput, error) {
	if input.ArtifactSet == nil {
		return nil, errors.InvalidArgument(errArtifactSetNil)
	}
	if input.ArtifactSet.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	created, err := r.upsert(ctx,
		artifactKeyPrefix+input.ArtifactSet.Name, artifactIndexKey, input.ArtifactSet.Name, input.ArtifactSet)
	if err != nil {
		return nil, err
	}

	return &UpsertArtifactSetOutput{ArtifactSet: input.ArtifactSet, Created: created}, nil
}

func (r *redisRepository) GetArtifactSet(ctx context.Context, input GetArtifactSetInput) (*GetArtifactSetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var set genshin.ArtifactSet
	found, err := r.getJSON(ctx, artifactKeyPrefix+input.Name, &set)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("artifact set %s not found", input.Name)
	}

	return &GetArtifactSetOutput{ArtifactSet: &set}, nil
}

func (r *redisRepository) ListArtifactSets(ctx context.Context, _ ListArtifactSetsInput) (*ListArtifactSetsOutput, error) {
	names, err := r.sortedMembers(ctx, artifactIndexKey)
	if err != nil {
		return nil, err
	}

	sets := make([]*genshin.ArtifactSet, 0, len(names))
	for _, name := range names {
		out, err := r.GetArtifactSet(ctx, GetArtifactSetInput{Name: name})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, artifactIndexKey, name)
				continue
			}
			return nil, err
		}
		sets = append(sets, out.ArtifactSet)
	}

	return &ListArtifactSetsOutput{ArtifactSets: sets}, nil
}

func (r *redisRepository) UpsertTalent(ctx context.Context, input UpsertTalentInput) (*UpsertTalentOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}
	if input.Talent == nil {
		return nil, errors.InvalidArgument(errTalentNil)
	}
	if input.Talent.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	key := talentKeyPrefix + input.CharacterName + ":" + input.Talent.Name
	indexKey := talentIndexPrefix + input.CharacterName
	created, err := r.upsert(ctx, key, indexKey, input.Talent.Name, input.Talent)
	if err != nil {
		return nil, err
	}

	return &UpsertTalentOutput{Talent: input.Talent, Created: created}, nil
}

func (r *redisRepository) ListTalents(ctx context.Context, input ListTalentsInput) (*ListTalentsOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	indexKey := talentIndexPrefix + input.CharacterName
	names, err := r.sortedMembers(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	talents := make([]*genshin.Talent, 0, len(names))
	for _, name := range names {
		var talent genshin.Talent
		found, err := r.getJSON(ctx, talentKeyPrefix+input.CharacterName+":"+name, &talent)
		if err != nil {
			return nil, err
		}
		if !found {
			r.client.SRem(ctx, indexKey, name)
			continue
		}
		talents = append(talents, &talent)
	}

	return &ListTalentsOutput{Talents: talents}, nil
}

func (r *redisRepository) UpsertWeaponRecommendation(ctx context.Context, input UpsertWeaponRecommendationInput) (*UpsertWeaponRecommendationOutput, error) {
	created, err := r.upsertRecommendation(ctx, weaponRecKeyPrefix, weaponRecIndexPrefix, input.CharacterName, input.Recommendation)
	if err != nil {
		return nil, err
	}
	return &UpsertWeaponRecommendationOutput{Recommendation: input.Recommendation, Created: created}, nil
}

func (r *redisRepository) ListWeaponRecommendations(ctx context.Context, input ListWeaponRecommendationsInput) (*ListWeaponRecommendationsOutput, error) {
	recs, err := r.listRecommendations(ctx, weaponRecKeyPrefix, weaponRecIndexPrefix, input.CharacterName)
	if err != nil {
		return nil, err
	}
	return &ListWeaponRecommendationsOutput{Recommendations: recs}, nil
}

func (r *redisRepository) UpsertArtifactRecommendation(ctx context.Context, input UpsertArtifactRecommendationInput) (*UpsertArtifactRecommendationOutput, error) {
	created, err := r.upsertRecommendation(ctx, artifactRecKeyPrefix, artifactRecIndexPrefix, input.CharacterName, input.Recommendation)
	if err != nil {
		return nil, err
	}
	return &UpsertArtifactRecommendationOutput{Recommendation: input.Recommendation, Created: created}, nil
}

func (r *redisRepository) ListArtifactRecommendations(ctx context.Context, input ListArtifactRecommendationsInput) (*ListArtifactRecommendationsOutput, error) {
	recs, err := r.listRecommendations(ctx, artifactRecKeyPrefix, artifactRecIndexPrefix, input.CharacterName)
	if err != nil {
		return nil, err
	}
	return &ListArtifactRecommendationsOutput{Recommendations: recs}, nil
}

func (r *redisRepository) upsertRecommendation(ctx context.Context, keyPrefix, indexPrefix, characterName string, rec *genshin.Recommendation) (bool, error) {
	if characterName == "" {
		return false, errors.InvalidArgument(errCharacterNameEmpty)
	}
	if rec == nil {
		return false, errors.InvalidArgument(errRecommendationNil)
	}
	if rec.Name == "" {
		return false, errors.InvalidArgument(errNameEmpty)
	}

	key := keyPrefix + characterName + ":" + rec.Name
	return r.upsert(ctx, key, indexPrefix+characterName, rec.Name, rec)
}

func (r *redisRepository) listRecommendations(ctx context.Context, keyPrefix, indexPrefix, characterName string) ([]*genshin.Recommendation, error) {
	if characterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	indexKey := indexPrefix + characterName
	names, err := r.sortedMembers(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	recs := make([]*genshin.Recommendation, 0, len(names))
	for _, name := range names {
		var rec genshin.Recommendation
		found, err := r.getJSON(ctx, keyPrefix+characterName+":"+name, &rec)
		if err != nil {
			return nil, err
		}
		if !found {
			r.client.SRem(ctx, indexKey, name)
			continue
		}
		recs = append(recs, &rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Ranking < recs[j].Ranking
	})
	return recs, nil
}
