// Package main is the entry point for the genshin-tools CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/cmd/genshin-tools/roster"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "genshin-tools",
	Short: "Genshin roster and upgrade material tracker",
	Long: `genshin-tools tracks a player's character roster and upgrade materials.
It imports the game catalog from genshin.blue into Redis, then records
owned characters, material stock and upgrade requirements against it.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress while commands run")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(roster.RosterCmd)
}
