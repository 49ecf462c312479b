// Package roster provides the subcommands for recording owned
// characters, material stock, upgrade requirements and talent progress
package roster

import (
	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/config"
	rosterorc "github.com/DylanBreuer/GenshinTools/internal/orchestrators/roster"
	"github.com/DylanBreuer/GenshinTools/internal/redis"
	catalogrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/catalog"
	rosterrepo "github.com/DylanBreuer/GenshinTools/internal/repositories/roster"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var redisAddr string

// RosterCmd is the root command for all roster subcommands
var RosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Record owned characters, material stock and upgrade progress",
	Long: `Roster commands record the player's side of the tracker: which
characters are owned, what gear they use, how much of each material is
stocked and how far each talent has come. Every write is checked
against the imported catalog first.`,
}

func init() {
	RosterCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address backing the catalog (defaults to localhost:6379)")

	RosterCmd.AddCommand(ownCmd)
	RosterCmd.AddCommand(stockCmd)
	RosterCmd.AddCommand(requireCmd)
	RosterCmd.AddCommand(talentCmd)
	RosterCmd.AddCommand(listCmd)
	RosterCmd.AddCommand(showCmd)
}

// newService builds the roster service and a cleanup that closes the
// Redis connection behind it
func newService() (rostersvc.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	catalogRepo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	rosterRepo, err := rosterrepo.NewRedis(&rosterrepo.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	orchestrator, err := rosterorc.New(&rosterorc.Config{
		CatalogRepo: catalogRepo,
		RosterRepo:  rosterRepo,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return orchestrator, cleanup, nil
}
