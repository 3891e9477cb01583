package mhci

// Thresholds are the optional filter cutoffs. A nil field is inactive;
// all active cutoffs must pass for a record to survive. Bounds are
// inclusive.
type Thresholds struct {
	// MinScore is the binding score lower bound.
	MinScore *float64

	// MaxPercentileRank is the percentile rank upper bound.
	MaxPercentileRank *float64

	// MaxIC50 is the IC50 upper bound in nM.
	MaxIC50 *float64

	// MinImmunogenicity is the immunogenicity lower bound.
	MinImmunogenicity *float64
}

// Empty reports whether no cutoff is active.
func (t Thresholds) Empty() bool {
	return t.MinScore == nil && t.MaxPercentileRank == nil && t.MaxIC50 == nil && t.MinImmunogenicity == nil
}

// Filter returns the subsequence of records passing every active
// threshold. A record whose referenced metric is NaN fails that
// threshold (the comparison is false for NaN), so rows missing a field
// an active cutoff needs are excluded rather than defaulted. With no
// active thresholds the input is returned unchanged.
func Filter(records []Record, t Thresholds) []Record {
	if t.Empty() {
		return records
	}

	kept := []Record{}
	for _, r := range records {
		if t.MinScore != nil && !(r.Score >= *t.MinScore) {
			continue
		}
		if t.MaxPercentileRank != nil && !(r.PercentileRank <= *t.MaxPercentileRank) {
			continue
		}
		if t.MaxIC50 != nil && !(r.IC50 <= *t.MaxIC50) {
			continue
		}
		if t.MinImmunogenicity != nil && !(r.Immunogenicity >= *t.MinImmunogenicity) {
			continue
		}
		kept = append(kept, r)
	}

	return kept
}
