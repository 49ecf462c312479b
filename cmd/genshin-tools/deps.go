package main

import (
	"github.com/DylanBreuer/GenshinTools/internal/config"
	"github.com/DylanBreuer/GenshinTools/internal/redis"
	catalogrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog"
	rosterrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/roster"
)

// loadConfig reads the environment configuration and lets the command
// apply its flag overrides before validation.
func loadConfig(override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openCatalog dials Redis and builds the catalog repository. The caller
// closes the returned client when done.
func openCatalog(addr string) (catalogrepo.Repository, redis.Client, error) {
	client, err := redis.NewClient(addr, nil)
	if err != nil {
		return nil, nil, err
	}

	repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, nil, err
	}

	return repo, client, nil
}

// openRoster builds both repositories on one connection. The caller
// closes the returned client when done.
func openRoster(addr string) (catalogrepo.Repository, rosterrepo.Repository, redis.Client, error) {
	catalogRepo, client, err := openCatalog(addr)
	if err != nil {
		return nil, nil, nil, err
	}

	rosterRepo, err := rosterrepo.NewRedis(&rosterrepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, nil, nil, err
	}

	return catalogRepo, rosterRepo, client, nil
}
