package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/clients/genshinblue"
	"github.com/DylanBreuer/GenshinTools/internal/config"
	ingestorc "github.com/DylanBreuer/GenshinTools/internal/orchestrators/ingest"
	"github.com/DylanBreuer/GenshinTools/internal/services/ingest"
)

var (
	importBaseURL    string
	importLanguage   string
	importVocabulary string
	importRedisAddr  string
	importLegacy     bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import characters, materials, weapons and build data from genshin.blue",
	Long: `Import fetches the full catalog from genshin.blue (genshin.jmp.blue),
normalizes it and saves it to Redis. Recommendation names that match no
fetched record become placeholder entries. Running it again refreshes
records in place.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importBaseURL, "base-url", "", "Override the genshin.blue base URL (defaults to https://genshin.jmp.blue)")
	importCmd.Flags().StringVar(&importLanguage, "lang", "", "Request localized fields where the API supports it")
	importCmd.Flags().StringVar(&importVocabulary, "vocabulary", "", "Path to a YAML file overriding the built-in source vocabulary")
	importCmd.Flags().StringVar(&importRedisAddr, "redis", "", "Redis address backing the catalog (defaults to localhost:6379)")
	importCmd.Flags().BoolVar(&importLegacy, "legacy-materials", false, "Use the flat all-materials endpoint instead of per-category fetches")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if importBaseURL != "" {
			c.BaseURL = importBaseURL
		}
		if importLanguage != "" {
			c.Language = importLanguage
		}
		if importVocabulary != "" {
			c.VocabularyPath = importVocabulary
		}
		if importRedisAddr != "" {
			c.RedisAddr = importRedisAddr
		}
	})
	if err != nil {
		return err
	}

	vocabulary := genshinblue.DefaultVocabulary()
	if cfg.VocabularyPath != "" {
		vocabulary, err = genshinblue.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	client, err := genshinblue.New(&genshinblue.Config{
		BaseURL:     cfg.BaseURL,
		Language:    cfg.Language,
		HTTPTimeout: cfg.HTTPTimeout,
		Vocabulary:  vocabulary,
	})
	if err != nil {
		return fmt.Errorf("failed to create genshin.blue client: %w", err)
	}

	catalogRepo, redisClient, err := openCatalog(cfg.RedisAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	orchestrator, err := ingestorc.New(&ingestorc.Config{
		Client:      client,
		CatalogRepo: catalogRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create ingest orchestrator: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Importing from %s...\n", cfg.BaseURL)

	output, err := orchestrator.Run(ctx, &ingest.RunInput{LegacyMaterials: importLegacy})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	s := output.Summary
	fmt.Printf("Saved %d characters (%d new).\n", s.Characters.Fetched, s.Characters.Created)
	fmt.Printf("Saved %d materials (%d new). Base URL: %s\n", s.Materials.Fetched, s.Materials.Created, cfg.BaseURL)
	fmt.Printf("Saved %d weapons (%d new). Base URL: %s\n", s.Weapons.Fetched, s.Weapons.Created, cfg.BaseURL)
	fmt.Printf("Saved %d artifact sets (%d new). Base URL: %s\n", s.ArtifactSets.Fetched, s.ArtifactSets.Created, cfg.BaseURL)
	if s.PlaceholderWeapons > 0 || s.PlaceholderArtifactSets > 0 {
		fmt.Printf("Saved build data with %d placeholder weapons and %d placeholder artifact sets.\n",
			s.PlaceholderWeapons, s.PlaceholderArtifactSets)
	}
	fmt.Printf("Run %s finished in %s.\n", s.RunID, s.Duration.Round(time.Millisecond))

	return nil
}
