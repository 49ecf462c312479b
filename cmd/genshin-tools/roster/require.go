package roster

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var (
	requireCharacter string
	requireCategory  string
	requireMaterial  string
	requireQuantity  int
	requireNotes     string
)

var requireCmd = &cobra.Command{
	Use:   "require",
	Short: "Record how much of a material a character still needs",
	Long: `Require records or updates one character's need for a material in one
upgrade category. Recording the same character, category and material
again replaces the quantity.`,
	RunE: runRequire,
}

func init() {
	requireCmd.Flags().StringVar(&requireCharacter, "character", "", "Character name as it appears in the catalog (required)")
	requireCmd.Flags().StringVar(&requireCategory, "category", genshin.RequirementCategoryAscension,
		fmt.Sprintf("Upgrade category (%s)", strings.Join(genshin.RequirementCategories, ", ")))
	requireCmd.Flags().StringVar(&requireMaterial, "material", "", "Material name as it appears in the catalog (required)")
	requireCmd.Flags().IntVar(&requireQuantity, "quantity", 0, "Quantity needed")
	requireCmd.Flags().StringVar(&requireNotes, "notes", "", "Free-form notes")
	_ = requireCmd.MarkFlagRequired("character") // nolint:errcheck // safe to ignore in init
	_ = requireCmd.MarkFlagRequired("material")  // nolint:errcheck // safe to ignore in init
}

func runRequire(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := service.SetRequirement(cmd.Context(), &rostersvc.SetRequirementInput{
		Requirement: &genshin.MaterialRequirement{
			CharacterName: requireCharacter,
			Category:      requireCategory,
			MaterialName:  requireMaterial,
			Quantity:      requireQuantity,
			Notes:         requireNotes,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save requirement: %w", err)
	}

	req := output.Requirement
	fmt.Printf("%s needs %d x %s (%s).\n", req.CharacterName, req.Quantity, req.MaterialName, req.Category)
	return nil
}
