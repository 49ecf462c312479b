package roster

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var showCharacter string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one roster character's gear, requirements and talent progress",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showCharacter, "character", "", "Character name as it appears in the catalog (required)")
	_ = showCmd.MarkFlagRequired("character") // nolint:errcheck // safe to ignore in init
}

func runShow(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	listed, err := service.ListOwnedCharacters(ctx, &rostersvc.ListOwnedCharactersInput{})
	if err != nil {
		return fmt.Errorf("failed to list owned characters: %w", err)
	}

	var owned *genshin.OwnedCharacter
	for _, entry := range listed.OwnedCharacters {
		if strings.EqualFold(entry.CharacterName, showCharacter) {
			owned = entry
			break
		}
	}
	if owned == nil {
		return fmt.Errorf("%s is not in the roster", showCharacter)
	}

	fmt.Printf("%s (Lv.%d, ascension %d, C%d)\n", owned.CharacterName, owned.Level, owned.AscensionLevel, owned.Constellations)
	if owned.ChosenWeapon != "" {
		fmt.Printf("Weapon: %s\n", owned.ChosenWeapon)
	}
	if owned.ChosenArtifactSet != "" {
		fmt.Printf("Artifact set: %s\n", owned.ChosenArtifactSet)
	}
	if owned.Notes != "" {
		fmt.Printf("Notes: %s\n", owned.Notes)
	}

	summaries, err := service.RequiredMaterials(ctx, &rostersvc.RequiredMaterialsInput{
		CharacterName: owned.CharacterName,
	})
	if err != nil {
		return fmt.Errorf("failed to tally materials: %w", err)
	}
	if len(summaries.Summaries) > 0 {
		fmt.Println("\nMaterials:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  MATERIAL\tREQUIRED\tOWNED\tMISSING")
		for _, summary := range summaries.Summaries {
			fmt.Fprintf(w, "  %s\t%d\t%d\t%d\n", summary.MaterialName, summary.Required, summary.Owned, summary.Missing)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	progress, err := service.ListTalentProgress(ctx, &rostersvc.ListTalentProgressInput{
		CharacterName: owned.CharacterName,
	})
	if err != nil {
		return fmt.Errorf("failed to list talent progress: %w", err)
	}
	if len(progress.Progresses) > 0 {
		fmt.Println("\nTalents:")
		for _, talent := range progress.Progresses {
			if talent.Skip {
				fmt.Printf("  %s: skipped\n", talent.TalentName)
				continue
			}
			fmt.Printf("  %s: level %d, aiming for %d\n", talent.TalentName, talent.CurrentLevel, talent.TargetLevel)
		}
	}

	return nil
}
