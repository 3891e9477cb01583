package mhci

import (
	"math"
	"sort"

	log "github.com/sirupsen/logrus"
)

// ScoreResult pairs a peptide with its immunogenicity score.
type ScoreResult struct {
	Peptide Peptide
	Length  int
	Score   float64
}

// ScoreAll validates and scores a batch of raw peptides against one
// allele/mask. Results come back sorted by score descending (stable, so
// equal scores keep input order). Rejected peptides are reported in the
// returned error list, one per peptide, without aborting the batch.
func (s *Scorer) ScoreAll(raws []string, allele, customMask string, minLength, maxLength int) ([]ScoreResult, []error) {
	results := []ScoreResult{}
	var errs []error

	for _, raw := range raws {
		peptide, err := Validate(raw, minLength, maxLength)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		results = append(results, ScoreResult{
			Peptide: peptide,
			Length:  len(peptide),
			Score:   s.Score(peptide, allele, customMask),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	log.WithFields(log.Fields{
		"scored":  len(results),
		"skipped": len(errs),
	}).Info("scored peptide batch")

	return results, errs
}

// Annotate fills in each record's missing (NaN) immunogenicity score
// using the record's own allele. With overwrite, scores the input
// already carried are recomputed too.
func (s *Scorer) Annotate(records []Record, overwrite bool) {
	for i := range records {
		if !overwrite && !math.IsNaN(records[i].Immunogenicity) {
			continue
		}
		records[i].Immunogenicity = s.Score(Peptide(records[i].Peptide), records[i].Allele, "")
	}
}

// GroupByAllele partitions records by allele, keeping record order
// within each group and returning the alleles in first-seen order.
// Callers use the groups to amortize one external binding-prediction
// request per allele.
func GroupByAllele(records []Record) ([]string, map[string][]Record) {
	var alleles []string
	groups := make(map[string][]Record)

	for _, r := range records {
		if _, seen := groups[r.Allele]; !seen {
			alleles = append(alleles, r.Allele)
		}
		groups[r.Allele] = append(groups[r.Allele], r)
	}

	return alleles, groups
}
