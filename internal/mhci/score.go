package mhci

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// WeightMode selects how positions past the end of the weight vector
// are handled. The upstream prediction scripts disagree on this for
// peptides shorter than nine residues, so both behaviors are kept.
type WeightMode int

const (
	// WeightClamp reuses the last weight for out-of-range positions.
	WeightClamp WeightMode = iota

	// WeightTruncate cuts the weight vector down to the peptide length;
	// positions past its end contribute nothing.
	WeightTruncate
)

// ParseWeightMode converts a settings value to a WeightMode.
func ParseWeightMode(mode string) (WeightMode, error) {
	switch strings.ToLower(mode) {
	case "", "clamp":
		return WeightClamp, nil
	case "truncate":
		return WeightTruncate, nil
	}
	return WeightClamp, fmt.Errorf("unknown weight mode %q: want clamp or truncate", mode)
}

// Scorer computes position-weighted immunogenicity scores. The tables
// are injected so tests can substitute their own; NewScorer wires in
// the package defaults. A Scorer is read-only after construction and
// safe for concurrent use.
type Scorer struct {
	// Scale is the per-residue immunogenicity coefficient table.
	Scale map[byte]float64

	// Weights is the base per-position weight vector of a 9-mer.
	Weights []float64

	// Anchors maps normalized allele names to 1-based anchor positions.
	Anchors map[string]string

	// Mode picks the short-peptide weight indexing behavior.
	Mode WeightMode
}

// NewScorer returns a Scorer over the built-in tables.
func NewScorer(mode WeightMode) *Scorer {
	return &Scorer{
		Scale:   Immunoscale,
		Weights: Immunoweight,
		Anchors: AlleleAnchors,
		Mode:    mode,
	}
}

// Score computes the immunogenicity of a peptide, rounded to 5 decimal
// places. Anchor positions are resolved from the allele's table entry
// when the allele is known, else from customMask ("3,5,9" style 1-based
// positions), else default to the first, second and C-terminal residue.
// When both an allele and a custom mask are supplied and the allele
// resolves, the allele wins; that precedence matches the upstream tools
// even though it silently overrides an explicit mask.
//
// A residue outside the scale degrades the whole score to 0.0 instead
// of failing, so one bad entry cannot halt a batch. Callers that need
// strict rejection should Validate first.
func (s *Scorer) Score(peptide Peptide, allele, customMask string) float64 {
	seq := strings.ToUpper(string(peptide))
	if seq == "" {
		return 0.0
	}

	mask := s.resolveMask(len(seq), allele, customMask)
	weights := s.weightsFor(len(seq))

	score := 0.0
	for i := 0; i < len(seq); i++ {
		coeff, ok := s.Scale[seq[i]]
		if !ok {
			log.WithFields(log.Fields{
				"peptide": seq,
				"residue": string(seq[i]),
			}).Warn("residue outside the amino-acid alphabet, scoring 0")
			return 0.0
		}

		if mask[i] {
			continue
		}

		switch {
		case i < len(weights):
			score += weights[i] * coeff
		case s.Mode == WeightClamp:
			score += weights[len(weights)-1] * coeff
		}
	}

	return round(score, 5)
}

// resolveMask returns the set of 0-based positions excluded from
// scoring, by precedence: allele table, custom mask, default.
func (s *Scorer) resolveMask(length int, allele, customMask string) map[int]bool {
	if allele != "" {
		if anchors, ok := s.Anchors[NormalizeAllele(allele)]; ok {
			if customMask != "" {
				log.WithFields(log.Fields{
					"allele":  allele,
					"anchors": anchors,
				}).Warn("allele anchor positions take precedence over the custom mask")
			}
			if mask, err := ParseMask(anchors); err == nil {
				return mask
			}
		} else {
			log.WithField("allele", allele).Warn("allele not in the anchor table, using the default mask")
		}
	}

	if customMask != "" {
		mask, err := ParseMask(customMask)
		if err == nil {
			return mask
		}
		log.WithField("mask", customMask).Warnf("ignoring custom mask: %v", err)
	}

	return map[int]bool{0: true, 1: true, length - 1: true}
}

// ParseMask converts comma-separated 1-based positions ("1,2,9") to a
// set of 0-based indices.
func ParseMask(mask string) (map[int]bool, error) {
	positions := make(map[int]bool)
	for _, field := range strings.Split(mask, ",") {
		pos, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("mask position %q is not a number", field)
		}
		if pos < 1 {
			return nil, fmt.Errorf("mask position %d is not positive", pos)
		}
		positions[pos-1] = true
	}
	return positions, nil
}

// weightsFor builds the effective weight vector for a peptide length.
// Longer than the base vector: keep the first five weights, insert one
// infill weight per extra residue, then append the rest. Shorter: cut
// the vector to the peptide length in truncate mode, keep it whole in
// clamp mode.
func (s *Scorer) weightsFor(length int) []float64 {
	base := s.Weights
	if length > len(base) {
		weights := make([]float64, 0, length)
		weights = append(weights, base[:5]...)
		for i := 0; i < length-len(base); i++ {
			weights = append(weights, infillWeight)
		}
		return append(weights, base[5:]...)
	}

	if s.Mode == WeightTruncate {
		return base[:length]
	}
	return base
}

// round keeps places decimal digits.
func round(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
