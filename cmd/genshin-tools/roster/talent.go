package roster

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var (
	talentCharacter string
	talentName      string
	talentCurrent   int
	talentTarget    int
	talentSkip      bool
)

var talentCmd = &cobra.Command{
	Use:   "talent",
	Short: "Record progress on one of a character's talents",
	Long: `Talent records current and target levels for one talent of an owned
character. The talent must exist in the imported catalog; names match
case-insensitively and are stored with the catalog's spelling.`,
	RunE: runTalent,
}

func init() {
	talentCmd.Flags().StringVar(&talentCharacter, "character", "", "Character name as it appears in the catalog (required)")
	talentCmd.Flags().StringVar(&talentName, "talent", "", "Talent name (required)")
	talentCmd.Flags().IntVar(&talentCurrent, "current", 1, "Current talent level")
	talentCmd.Flags().IntVar(&talentTarget, "target", 10, "Target talent level")
	talentCmd.Flags().BoolVar(&talentSkip, "skip", false, "Mark the talent as not worth upgrading")
	_ = talentCmd.MarkFlagRequired("character") // nolint:errcheck // safe to ignore in init
	_ = talentCmd.MarkFlagRequired("talent")    // nolint:errcheck // safe to ignore in init
}

func runTalent(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := service.SetTalentProgress(cmd.Context(), &rostersvc.SetTalentProgressInput{
		Progress: &genshin.TalentProgress{
			CharacterName: talentCharacter,
			TalentName:    talentName,
			CurrentLevel:  talentCurrent,
			TargetLevel:   talentTarget,
			Skip:          talentSkip,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save talent progress: %w", err)
	}

	progress := output.Progress
	if progress.Skip {
		fmt.Printf("%s - %s: skipped.\n", progress.CharacterName, progress.TalentName)
		return nil
	}
	fmt.Printf("%s - %s: level %d, aiming for %d.\n",
		progress.CharacterName, progress.TalentName, progress.CurrentLevel, progress.TargetLevel)
	return nil
}
