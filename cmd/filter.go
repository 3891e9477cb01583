package cmd

import (
	"github.com/recinall/mhci-binding-predictor/internal/mhci"
	"github.com/spf13/cobra"
)

// filterCmd keeps the records passing every supplied threshold.
var filterCmd = &cobra.Command{
	Use:                        "filter",
	Short:                      "Filter binding-prediction records by thresholds",
	Run:                        mhci.FilterCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  mhci filter -i predictions.csv --max-rank 0.5 --min-immunogenicity 0",
	Long: `Filter the records of a binding-prediction CSV export, keeping those
passing every supplied threshold (all bounds inclusive). At least one
threshold must be set. Records missing a field a threshold refers to are
dropped, not defaulted.`,
}

// set flags
func init() {
	filterCmd.Flags().StringP("in", "i", "", "input CSV with binding-prediction records")
	filterCmd.Flags().StringP("out", "o", "", "output CSV file name (stdout if unset)")
	filterCmd.Flags().Float64("min-score", 0, "minimum binding score")
	filterCmd.Flags().Float64("max-rank", 0, "maximum percentile rank")
	filterCmd.Flags().Float64("max-ic50", 0, "maximum IC50 (nM)")
	filterCmd.Flags().Float64("min-immunogenicity", 0, "minimum immunogenicity score")
	filterCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(filterCmd)
}
