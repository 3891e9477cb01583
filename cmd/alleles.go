package cmd

import (
	"github.com/recinall/mhci-binding-predictor/internal/mhci"
	"github.com/spf13/cobra"
)

// allelesCmd lists the alleles with known anchor positions.
var allelesCmd = &cobra.Command{
	Use:                        "alleles",
	Short:                      "List alleles with known anchor positions",
	Run:                        mhci.AllelesCmd,
	SuggestionsMinimumDistance: 2,
	Long: `List the MHC class I alleles whose anchor positions are built in.
Scoring against any other allele falls back to the default mask
(first, second and C-terminal residue).`,
	Aliases: []string{"allele", "ls"},
}

func init() {
	rootCmd.AddCommand(allelesCmd)
}
