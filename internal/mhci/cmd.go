package mhci

import (
	"io"

	"github.com/recinall/mhci-binding-predictor/config"
	"github.com/spf13/cobra"
)

// ScoreCmd validates and scores peptides passed as arguments or read
// from the "in" file, then writes a CSV (with "out") or logs an aligned
// table to stdout.
func ScoreCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	allele, _ := cmd.Flags().GetString("allele")
	mask, _ := cmd.Flags().GetString("mask")

	peptides := args
	if in != "" {
		fromFile, err := ReadPeptidesFile(in)
		if err != nil {
			stderr.Fatalln(err)
		}
		peptides = append(fromFile, peptides...)
	}
	if len(peptides) == 0 {
		cmd.Help()
		stderr.Fatalln("\nno peptides passed.")
	}

	scorer := NewScorer(weightMode(conf))
	results, errs := scorer.ScoreAll(peptides, allele, mask, conf.MinLength, conf.MaxLength)
	for _, err := range errs {
		stderr.Printf("skipping: %v", err)
	}
	if len(results) == 0 {
		stderr.Fatalln("no valid peptides to score")
	}

	if out != "" {
		if err := writeFile(out, func(w io.Writer) error { return WriteScores(w, results) }); err != nil {
			stderr.Fatalln(err)
		}
		return
	}
	printScores(results)
}

// RankCmd reads a binding-prediction CSV, attaches immunogenicity
// scores to records missing one, and writes the ranked records.
func RankCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	allele, _ := cmd.Flags().GetString("allele")
	rescore, _ := cmd.Flags().GetBool("rescore")

	records, err := ReadRecordsFile(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	// records without their own allele column fall back to the flag
	for i := range records {
		if records[i].Allele == "" {
			records[i].Allele = allele
		}
	}

	scorer := NewScorer(weightMode(conf))
	scorer.Annotate(records, rescore)

	ranked := Rank(records)
	if len(ranked) == 0 {
		stderr.Fatalln("no records to rank: every row had non-positive immunogenicity or missing metrics")
	}

	if out != "" {
		if err := writeFile(out, func(w io.Writer) error { return WriteRanked(w, ranked) }); err != nil {
			stderr.Fatalln(err)
		}
		return
	}
	printRanked(ranked)
}

// FilterCmd reads records and keeps those passing every threshold flag.
// At least one threshold is required.
func FilterCmd(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")

	threshold := func(flag string) *float64 {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		v, _ := cmd.Flags().GetFloat64(flag)
		return &v
	}

	thresholds := Thresholds{
		MinScore:          threshold("min-score"),
		MaxPercentileRank: threshold("max-rank"),
		MaxIC50:           threshold("max-ic50"),
		MinImmunogenicity: threshold("min-immunogenicity"),
	}
	if thresholds.Empty() {
		cmd.Help()
		stderr.Fatalln("\nno thresholds passed: set at least one of min-score, max-rank, max-ic50, min-immunogenicity")
	}

	records, err := ReadRecordsFile(in)
	if err != nil {
		stderr.Fatalln(err)
	}

	kept := Filter(records, thresholds)
	stderr.Printf("filtered %d records to %d", len(records), len(kept))

	if err := writeFile(out, func(w io.Writer) error { return WriteRecords(w, kept) }); err != nil {
		stderr.Fatalln(err)
	}
}

// AllelesCmd logs the supported alleles and their anchor positions.
func AllelesCmd(cmd *cobra.Command, args []string) {
	printAlleles()
}

// weightMode resolves the configured weight mode, dying on a bad value.
func weightMode(conf *config.Config) WeightMode {
	mode, err := ParseWeightMode(conf.WeightMode)
	if err != nil {
		stderr.Fatalln(err)
	}
	return mode
}
