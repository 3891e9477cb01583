package mhci

import (
	"math"
	"sort"
)

// Categories assigned by Rank, best first.
const (
	CategoryExcellent      = "Excellent"
	CategoryGood           = "Good"
	CategoryConsider       = "Worth considering"
	CategoryNotPrioritized = "Not prioritized"
)

// Record is one row of an external binding-prediction export, plus the
// locally computed immunogenicity score. Metrics that were missing or
// non-numeric in the source are NaN.
type Record struct {
	Peptide string
	Allele  string

	// Score is the predicted binding (elution) score, higher is better.
	Score float64

	// PercentileRank is the binding percentile, lower is a stronger binder.
	PercentileRank float64

	// IC50 is the predicted half-maximal inhibitory concentration in nM.
	IC50 float64

	Immunogenicity float64
}

// RankedRecord is a Record with its composite score and category.
type RankedRecord struct {
	Record

	// CompositeScore blends immunogenicity, percentile rank and binding
	// score: imm*0.5 + (1 - rank/100)*0.3 + binding*0.2.
	CompositeScore float64

	Category string
}

// Rank drops records with non-positive immunogenicity or missing
// binding metrics, computes each survivor's composite score and
// category, and returns them sorted by composite score descending.
// The sort is stable: ties keep their input order.
func Rank(records []Record) []RankedRecord {
	ranked := []RankedRecord{}
	for _, r := range records {
		if !(r.Immunogenicity > 0) {
			continue
		}
		if math.IsNaN(r.Score) || math.IsNaN(r.PercentileRank) {
			continue
		}

		ranked = append(ranked, RankedRecord{
			Record:         r,
			CompositeScore: compositeScore(r),
			Category:       categorize(r),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	return ranked
}

func compositeScore(r Record) float64 {
	composite := r.Immunogenicity*0.5 + (1-r.PercentileRank/100)*0.3 + r.Score*0.2
	return round(composite, 4)
}

// categorize walks the decision ladder top down and returns the first
// category whose thresholds the record clears.
func categorize(r Record) string {
	switch {
	case r.Immunogenicity > 0.3 && r.PercentileRank < 0.1 && r.Score > 0.95:
		return CategoryExcellent
	case r.Immunogenicity > 0 && r.PercentileRank < 0.5 && r.Score > 0.9:
		return CategoryGood
	case r.Immunogenicity > 0 && r.PercentileRank < 1.0 && r.Score > 0.8:
		return CategoryConsider
	}
	return CategoryNotPrioritized
}
