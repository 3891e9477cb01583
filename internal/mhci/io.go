package mhci

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// columnSynonyms maps the header names the upstream prediction tools
// emit to the canonical field names. Matching is case-insensitive.
var columnSynonyms = map[string]string{
	"seq":                  "peptide",
	"sequence":             "peptide",
	"epitope":              "peptide",
	"peptide_seq":          "peptide",
	"mhc":                  "allele",
	"hla":                  "allele",
	"mhc_allele":           "allele",
	"hla_allele":           "allele",
	"el_score":             "score",
	"ba_score":             "score",
	"rank":                 "percentile_rank",
	"el_rank":              "percentile_rank",
	"ba_ic50":              "ic50",
	"immunogenicity_score": "immunogenicity",
}

// canonicalColumn lowercases a header cell and resolves synonyms.
func canonicalColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := columnSynonyms[name]; ok {
		return canonical
	}
	return name
}

// ReadRecords parses a binding-prediction CSV export. The header row is
// required and column order is free; a peptide column (or a recognized
// synonym) must be present. Metric cells that are empty or non-numeric
// become NaN so a single bad row degrades instead of failing the load.
func ReadRecords(r io.Reader) ([]Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("no header row in input")
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[canonicalColumn(name)] = i
	}
	if _, ok := columns["peptide"]; !ok {
		return nil, fmt.Errorf("no peptide column in input header: %v", rows[0])
	}

	cell := func(row []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Peptide:        strings.ToUpper(cell(row, "peptide")),
			Allele:         cell(row, "allele"),
			Score:          parseMetric(cell(row, "score")),
			PercentileRank: parseMetric(cell(row, "percentile_rank")),
			IC50:           parseMetric(cell(row, "ic50")),
			Immunogenicity: parseMetric(cell(row, "immunogenicity")),
		})
	}

	return records, nil
}

// ReadRecordsFile is ReadRecords over a file path.
func ReadRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// ReadPeptidesFile reads raw peptides from a file, one per line,
// skipping blank lines.
func ReadPeptidesFile(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var peptides []string
	for _, line := range strings.Split(string(contents), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			peptides = append(peptides, line)
		}
	}
	return peptides, nil
}

// parseMetric converts a metric cell to a float, NaN when absent or
// malformed.
func parseMetric(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// formatMetric renders a float for CSV output, empty for NaN.
func formatMetric(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteRecords writes records as CSV.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"peptide", "allele", "score", "percentile_rank", "ic50", "immunogenicity"})
	for _, r := range records {
		cw.Write([]string{
			r.Peptide,
			r.Allele,
			formatMetric(r.Score),
			formatMetric(r.PercentileRank),
			formatMetric(r.IC50),
			formatMetric(r.Immunogenicity),
		})
	}
	cw.Flush()
	return cw.Error()
}

// WriteRanked writes ranked records as CSV, same column order as the
// upstream ranked exports.
func WriteRanked(w io.Writer, ranked []RankedRecord) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"peptide", "allele", "composite_score", "category", "immunogenicity", "percentile_rank", "score"})
	for _, r := range ranked {
		cw.Write([]string{
			r.Peptide,
			r.Allele,
			formatMetric(r.CompositeScore),
			r.Category,
			formatMetric(r.Immunogenicity),
			formatMetric(r.PercentileRank),
			formatMetric(r.Score),
		})
	}
	cw.Flush()
	return cw.Error()
}

// WriteScores writes scorer results as CSV.
func WriteScores(w io.Writer, results []ScoreResult) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"peptide", "length", "score"})
	for _, r := range results {
		cw.Write([]string{string(r.Peptide), strconv.Itoa(r.Length), formatMetric(r.Score)})
	}
	cw.Flush()
	return cw.Error()
}

// writeFile writes with one of the Write* functions above, to stdout
// when path is empty.
func writeFile(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return write(f)
}

// printScores logs scorer results to stdout in aligned columns.
func printScores(results []ScoreResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "peptide\tlength\tscore\t\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.5f\t\n", r.Peptide, r.Length, r.Score)
	}
	w.Flush()
}

// printAlleles logs the anchor table to stdout in aligned columns.
func printAlleles() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "allele\tanchor positions\t\n")
	for _, allele := range Alleles() {
		fmt.Fprintf(w, "%s\t%s\t\n", allele, AlleleAnchors[allele])
	}
	w.Flush()
}

// printRanked logs ranked records to stdout in aligned columns.
func printRanked(ranked []RankedRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "peptide\tallele\tcomposite\tcategory\timmunogenicity\trank\tscore\t\n")
	for _, r := range ranked {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%s\t%.5f\t%s\t%s\t\n",
			r.Peptide, r.Allele, r.CompositeScore, r.Category,
			r.Immunogenicity, formatMetric(r.PercentileRank), formatMetric(r.Score))
	}
	w.Flush()
}
