package roster

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var (
	ownCharacter      string
	ownLevel          int
	ownAscension      int
	ownConstellations int
	ownWeapon         string
	ownArtifactSet    string
	ownNotes          string
)

var ownCmd = &cobra.Command{
	Use:   "own",
	Short: "Record a character you own",
	Long: `Own records or updates a roster entry. The character, and any chosen
weapon or artifact set, must already exist in the catalog.`,
	RunE: runOwn,
}

func init() {
	ownCmd.Flags().StringVar(&ownCharacter, "character", "", "Character name as it appears in the catalog (required)")
	ownCmd.Flags().IntVar(&ownLevel, "level", 1, "Current character level")
	ownCmd.Flags().IntVar(&ownAscension, "ascension", 0, "Current ascension level")
	ownCmd.Flags().IntVar(&ownConstellations, "constellations", 0, "Constellations unlocked")
	ownCmd.Flags().StringVar(&ownWeapon, "weapon", "", "Chosen weapon from the catalog")
	ownCmd.Flags().StringVar(&ownArtifactSet, "artifact-set", "", "Chosen artifact set from the catalog")
	ownCmd.Flags().StringVar(&ownNotes, "notes", "", "Free-form priority notes")
	_ = ownCmd.MarkFlagRequired("character") // nolint:errcheck // safe to ignore in init
}

func runOwn(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := service.SetOwnedCharacter(cmd.Context(), &rostersvc.SetOwnedCharacterInput{
		OwnedCharacter: &genshin.OwnedCharacter{
			CharacterName:     ownCharacter,
			Level:             ownLevel,
			AscensionLevel:    ownAscension,
			Constellations:    ownConstellations,
			ChosenWeapon:      ownWeapon,
			ChosenArtifactSet: ownArtifactSet,
			Notes:             ownNotes,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save owned character: %w", err)
	}

	owned := output.OwnedCharacter
	fmt.Printf("Saved %s (Lv.%d).\n", owned.CharacterName, owned.Level)
	if owned.ChosenWeapon != "" {
		fmt.Printf("Weapon: %s\n", owned.ChosenWeapon)
	}
	if owned.ChosenArtifactSet != "" {
		fmt.Printf("Artifact set: %s\n", owned.ChosenArtifactSet)
	}
	return nil
}
