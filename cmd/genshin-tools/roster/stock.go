package roster

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	rostersvc "github.com/DylanBreuer/GenshinTools/internal/services/roster"
)

var (
	stockMaterial string
	stockQuantity int
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Record how many of a material you hold",
	RunE:  runStock,
}

func init() {
	stockCmd.Flags().StringVar(&stockMaterial, "material", "", "Material name as it appears in the catalog (required)")
	stockCmd.Flags().IntVar(&stockQuantity, "quantity", 0, "Quantity currently stocked")
	_ = stockCmd.MarkFlagRequired("material") // nolint:errcheck // safe to ignore in init
}

func runStock(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := service.SetMaterialStock(cmd.Context(), &rostersvc.SetMaterialStockInput{
		Stock: &genshin.MaterialStock{
			MaterialName:  stockMaterial,
			QuantityOwned: stockQuantity,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save stock: %w", err)
	}

	fmt.Printf("%s: %d\n", output.Stock.MaterialName, output.Stock.QuantityOwned)
	return nil
}
