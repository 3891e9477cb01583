package cmd

import (
	"github.com/recinall/mhci-binding-predictor/internal/mhci"
	"github.com/spf13/cobra"
)

// rankCmd ranks binding-prediction records by composite score.
var rankCmd = &cobra.Command{
	Use:                        "rank",
	Short:                      "Rank binding-prediction records by composite score",
	Run:                        mhci.RankCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  mhci rank -i predictions.csv -o ranked.csv",
	Long: `Rank the records of a binding-prediction CSV export.

Records without an immunogenicity column get one computed from their own
allele. Records with non-positive immunogenicity, or with missing binding
score or percentile rank, are dropped. The rest are scored with

  composite = immunogenicity*0.5 + (1 - percentile_rank/100)*0.3 + score*0.2

assigned a category (Excellent, Good, Worth considering, Not prioritized)
and written sorted by composite score descending.`,
}

// set flags
func init() {
	rankCmd.Flags().StringP("in", "i", "", "input CSV with binding-prediction records")
	rankCmd.Flags().StringP("out", "o", "", "output CSV file name (stdout table if unset)")
	rankCmd.Flags().StringP("allele", "a", "", "allele for records without an allele column")
	rankCmd.Flags().Bool("rescore", false, "recompute immunogenicity even when the input carries it")
	rankCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(rankCmd)
}
