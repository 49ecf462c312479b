package roster

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every owned character",
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := service.ListOwnedCharacters(cmd.Context(), &rostersvc.ListOwnedCharactersInput{})
	if err != nil {
		return fmt.Errorf("failed to list owned characters: %w", err)
	}

	if len(output.OwnedCharacters) == 0 {
		fmt.Println("No owned characters recorded. Use 'genshin-tools roster own' to add one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHARACTER\tLEVEL\tASC\tCONST\tWEAPON\tARTIFACT SET")
	for _, owned := range output.OwnedCharacters {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
			owned.CharacterName, owned.Level, owned.AscensionLevel, owned.Constellations,
			owned.ChosenWeapon, owned.ChosenArtifactSet)
	}
	return w.Flush()
}
