package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/config"
	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	rosterorc "github.com/DylanBreuer/GenshinTools/internal/orchestrators/roster"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var (
	summaryCharacter string
	summaryRedisAddr string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show required materials against current stock",
	Long: `Summary tallies upgrade requirements against stocked quantities.
Without --character it aggregates across every owned character.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryCharacter, "character", "", "Limit the tally to one roster character")
	summaryCmd.Flags().StringVar(&summaryRedisAddr, "redis", "", "Redis address backing the catalog (defaults to localhost:6379)")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if summaryRedisAddr != "" {
			c.RedisAddr = summaryRedisAddr
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

	orchestrator, err := rosterorc.New(&rosterorc.Config{
		CatalogRepo: catalogRepo,
		RosterRepo:  rosterRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create roster orchestrator: %w", err)
	}

	ctx := cmd.Context()

	var summaries []*genshin.MaterialSummary
	if summaryCharacter != "" {
		output, err := orchestrator.RequiredMaterials(ctx, &rostersvc.RequiredMaterialsInput{
			CharacterName: summaryCharacter,
		})
		if err != nil {
			return fmt.Errorf("failed to tally materials for %s: %w", summaryCharacter, err)
		}
		summaries = output.Summaries
	} else {
		output, err := orchestrator.SummarizeMaterials(ctx, &rostersvc.SummarizeMaterialsInput{})
		if err != nil {
			return fmt.Errorf("failed to tally materials: %w", err)
		}
		summaries = output.Summaries
	}

	if len(summaries) == 0 {
		fmt.Println("No material requirements recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tREQUIRED\tOWNED\tMISSING")
	for _, summary := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", summary.MaterialName, summary.Required, summary.Owned, summary.Missing)
	}
	return w.Flush()
}
