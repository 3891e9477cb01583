package cmd

import (
	"github.com/recinall/mhci-binding-predictor/internal/mhci"
	"github.com/spf13/cobra"
)

// scoreCmd computes immunogenicity scores for a list of peptides.
var scoreCmd = &cobra.Command{
	Use:                        "score [peptides]",
	Short:                      "Score peptide immunogenicity",
	Run:                        mhci.ScoreCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  mhci score SIINFEKL -a HLA-A*02:01",
	Long: `Score the immunogenicity of peptides passed as arguments or read from
a file (one peptide per line).

Anchor positions are masked out of the score. They come from the allele's
anchor table entry when --allele names a known allele, else from --mask,
else default to the first, second and C-terminal residue. When both flags
are given and the allele is known, the allele's anchors win.

Peptides with residues outside the 20-letter amino-acid alphabet, or with
lengths outside the configured 8-15 bounds, are skipped with a message;
they never stop the rest of the batch.`,
}

// set flags
func init() {
	scoreCmd.Flags().StringP("in", "i", "", "input file with one peptide per line")
	scoreCmd.Flags().StringP("out", "o", "", "output CSV file name (stdout table if unset)")
	scoreCmd.Flags().StringP("allele", "a", "", "MHC-I allele whose anchor positions are masked, e.g. HLA-A*02:01")
	scoreCmd.Flags().StringP("mask", "m", "", "comma separated 1-based positions to mask, e.g. 1,2,9")

	rootCmd.AddCommand(scoreCmd)
}
