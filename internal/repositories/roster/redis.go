package roster

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
	"github.com/DylanBreuer/GenshinTools/internal/pkg/clock"
	redisclient "github.com/DylanBreuer/GenshinTools/internal/redis"
)

const (
	ownedKeyPrefix = "roster:owned:"
	ownedIndexKey  = "roster:owned-characters"

	stockKeyPrefix = "roster:stock:"
	stockIndexKey  = "roster:stocks"

	// Key pattern: roster:requirement:{character}:{category}:{material}
	requirementKeyPrefix   = "roster:requirement:"
	requirementIndexPrefix = "roster:requirements:"

	// Key pattern: roster:talent:{character}:{talent}
	talentKeyPrefix   = "roster:talent:"
	talentIndexPrefix = "roster:talents:"

	// Error messages
	errOwnedNil           = "owned character cannot be nil"
	errStockNil           = "stock cannot be nil"
	errRequirementNil     = "requirement cannot be nil"
	errProgressNil        = "talent progress cannot be nil"
	errCharacterNameEmpty = "character name cannot be empty"
	errMaterialNameEmpty  = "material name cannot be empty"
	errTalentNameEmpty    = "talent name cannot be empty"
	errCategoryEmpty      = "category cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// set writes one JSON record and registers its member in the index set
func (r *redisRepository) set(ctx context.Context, key, indexKey, member string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal record for %s", key)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // roster records never expire
	pipe.SAdd(ctx, indexKey, member)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}
	return nil
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

// sortedMembers returns the index set's members in lexical order
func (r *redisRepository) sortedMembers(ctx context.Context, indexKey string) ([]string, error) {
	members, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}
	sort.Strings(members)
	return members, nil
}

func (r *redisRepository) SetOwnedCharacter(ctx context.Context, input SetOwnedCharacterInput) (*SetOwnedCharacterOutput, error) {
	if input.OwnedCharacter == nil {
		return nil, errors.InvalidArgument(errOwnedNil)
	}
	if input.OwnedCharacter.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	owned := *input.OwnedCharacter
	owned.UpdatedAt = r.clock.Now().Unix()

	key := ownedKeyPrefix + owned.CharacterName
	if err := r.set(ctx, key, ownedIndexKey, owned.CharacterName, &owned); err != nil {
		return nil, err
	}

	return &SetOwnedCharacterOutput{OwnedCharacter: &owned}, nil
}

func (r *redisRepository) GetOwnedCharacter(ctx context.Context, input GetOwnedCharacterInput) (*GetOwnedCharacterOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	var owned genshin.OwnedCharacter
	found, err := r.getJSON(ctx, ownedKeyPrefix+input.CharacterName, &owned)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("owned character %s not found", input.CharacterName)
	}

	return &GetOwnedCharacterOutput{OwnedCharacter: &owned}, nil
}

func (r *redisRepository) ListOwnedCharacters(ctx context.Context, _ ListOwnedCharactersInput) (*ListOwnedCharactersOutput, error) {
	names, err := r.sortedMembers(ctx, ownedIndexKey)
	if err != nil {
		return nil, err
	}

	owned := make([]*genshin.OwnedCharacter, 0, len(names))
	for _, name := range names {
		out, err := r.GetOwnedCharacter(ctx, GetOwnedCharacterInput{CharacterName: name})
		if err != nil {
			if errors.IsNotFound(err) {
				// record vanished, clean up the index
				r.client.SRem(ctx, ownedIndexKey, name)
				continue
			}
			return nil, err
		}
		owned = append(owned, out.OwnedCharacter)
	}

	return &ListOwnedCharactersOutput{OwnedCharacters: owned}, nil
}

func (r *redisRepository) SetMaterialStock(ctx context.Context, input SetMaterialStockInput) (*SetMaterialStockOutput, error) {
	if input.Stock == nil {
		return nil, errors.InvalidArgument(errStockNil)
	}
	if input.Stock.MaterialName == "" {
		return nil, errors.InvalidArgument(errMaterialNameEmpty)
	}

	stock := *input.Stock
	stock.UpdatedAt = r.clock.Now().Unix()

	key := stockKeyPrefix + stock.MaterialName
	if err := r.set(ctx, key, stockIndexKey, stock.MaterialName, &stock); err != nil {
		return nil, err
	}

	return &SetMaterialStockOutput{Stock: &stock}, nil
}

func (r *redisRepository) GetMaterialStock(ctx context.Context, input GetMaterialStockInput) (*GetMaterialStockOutput, error) {
	if input.MaterialName == "" {
		return nil, errors.InvalidArgument(errMaterialNameEmpty)
	}

	var stock genshin.MaterialStock
	found, err := r.getJSON(ctx, stockKeyPrefix+input.MaterialName, &stock)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundf("stock for material %s not found", input.MaterialName)
	}

	return &GetMaterialStockOutput{Stock: &stock}, nil
}

func (r *redisRepository) ListMaterialStock(ctx context.Context, _ ListMaterialStockInput) (*ListMaterialStockOutput, error) {
	names, err := r.sortedMembers(ctx, stockIndexKey)
	if err != nil {
		return nil, err
	}

	stocks := make([]*genshin.MaterialStock, 0, len(names))
	for _, name := range names {
		out, err := r.GetMaterialStock(ctx, GetMaterialStockInput{MaterialName: name})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, stockIndexKey, name)
				continue
			}
			return nil, err
		}
		stocks = append(stocks, out.Stock)
	}

	return &ListMaterialStockOutput{Stocks: stocks}, nil
}

func (r *redisRepository) SetRequirement(ctx context.Context, input SetRequirementInput) (*SetRequirementOutput, error) {
	req := input.Requirement
	if req == nil {
		return nil, errors.InvalidArgument(errRequirementNil)
	}
	if req.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}
	if req.Category == "" {
		return nil, errors.InvalidArgument(errCategoryEmpty)
	}
	if req.MaterialName == "" {
		return nil, errors.InvalidArgument(errMaterialNameEmpty)
	}

	member := req.Category + ":" + req.MaterialName
	key := requirementKeyPrefix + req.CharacterName + ":" + member
	indexKey := requirementIndexPrefix + req.CharacterName
	if err := r.set(ctx, key, indexKey, member, req); err != nil {
		return nil, err
	}

	return &SetRequirementOutput{Requirement: req}, nil
}

func (r *redisRepository) ListRequirements(ctx context.Context, input ListRequirementsInput) (*ListRequirementsOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	indexKey := requirementIndexPrefix + input.CharacterName
	slog.DebugContext(ctx, "listing requirements by character index",
		"character", input.CharacterName,
		"index_key", indexKey)

	members, err := r.sortedMembers(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list requirements by character index",
			"character", input.CharacterName,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	requirements := make([]*genshin.MaterialRequirement, 0, len(members))
	for _, member := range members {
		var req genshin.MaterialRequirement
		found, err := r.getJSON(ctx, requirementKeyPrefix+input.CharacterName+":"+member, &req)
		if err != nil {
			return nil, err
		}
		if !found {
			r.client.SRem(ctx, indexKey, member)
			continue
		}
		requirements = append(requirements, &req)
	}

	slog.DebugContext(ctx, "successfully listed requirements",
		"character", input.CharacterName,
		"count", len(requirements))

	return &ListRequirementsOutput{Requirements: requirements}, nil
}

func (r *redisRepository) SetTalentProgress(ctx context.Context, input SetTalentProgressInput) (*SetTalentProgressOutput, error) {
	progress := input.Progress
	if progress == nil {
		return nil, errors.InvalidArgument(errProgressNil)
	}
	if progress.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}
	if progress.TalentName == "" {
		return nil, errors.InvalidArgument(errTalentNameEmpty)
	}

	key := talentKeyPrefix + progress.CharacterName + ":" + progress.TalentName
	indexKey := talentIndexPrefix + progress.CharacterName
	if err := r.set(ctx, key, indexKey, progress.TalentName, progress); err != nil {
		return nil, err
	}

	return &SetTalentProgressOutput{Progress: progress}, nil
}

func (r *redisRepository) ListTalentProgress(ctx context.Context, input ListTalentProgressInput) (*ListTalentProgressOutput, error) {
	if input.CharacterName == "" {
		return nil, errors.InvalidArgument(errCharacterNameEmpty)
	}

	indexKey := talentIndexPrefix + input.CharacterName
	slog.DebugContext(ctx, "listing talent progress by character index",
		"character", input.CharacterName,
		"index_key", indexKey)

	names, err := r.sortedMembers(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list talent progress by character index",
			"character", input.CharacterName,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	progresses := make([]*genshin.TalentProgress, 0, len(names))
	for _, name := range names {
		var progress genshin.TalentProgress
		found, err := r.getJSON(ctx, talentKeyPrefix+input.CharacterName+":"+name, &progress)
		if err != nil {
			return nil, err
		}
		if !found {
			r.client.SRem(ctx, indexKey, name)
			continue
		}
		progresses = append(progresses, &progress)
	}

	slog.DebugContext(ctx, "successfully listed talent progress",
		"character", input.CharacterName,
		"count", len(progresses))

	return &ListTalentProgressOutput{Progresses: progresses}, nil
}
