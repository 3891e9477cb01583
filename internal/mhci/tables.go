// Package mhci scores, ranks and filters candidate MHC class I epitopes.
package mhci

import (
	"sort"
	"strings"
)

// Alphabet is the set of residues the immunogenicity model is defined over.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// Immunoscale maps each residue to its immunogenicity contribution
// (Calis et al. 2013). Read-only for the process lifetime.
var Immunoscale = map[byte]float64{
	'A': 0.127, 'C': -0.175, 'D': 0.072, 'E': 0.325, 'F': 0.380,
	'G': 0.110, 'H': 0.105, 'I': 0.432, 'K': -0.700, 'L': -0.036,
	'M': -0.570, 'N': -0.021, 'P': -0.036, 'Q': -0.376, 'R': 0.168,
	'S': -0.537, 'T': 0.126, 'V': 0.134, 'W': 0.719, 'Y': -0.012,
}

// Immunoweight holds the per-position weights of a canonical 9-mer.
// Peptides longer than 9 residues get copies of infillWeight inserted
// after the first five entries, one per extra residue.
var Immunoweight = []float64{0.00, 0.00, 0.10, 0.31, 0.30, 0.29, 0.26, 0.18, 0.00}

// infillWeight is the weight of the inserted middle positions.
const infillWeight = 0.30

// AlleleAnchors maps normalized MHC-I allele names to their 1-based
// anchor positions. Anchor residues bind the MHC groove rather than the
// T-cell receptor and are masked out of scoring.
var AlleleAnchors = map[string]string{
	"H-2-Db": "2,5,9", "H-2-Dd": "2,3,5", "H-2-Kb": "2,3,9",
	"H-2-Kd": "2,5,9", "H-2-Kk": "2,8,9", "H-2-Ld": "2,5,9",
	"HLA-A0101": "2,3,9", "HLA-A0201": "1,2,9", "HLA-A0202": "1,2,9",
	"HLA-A0203": "1,2,9", "HLA-A0206": "1,2,9", "HLA-A0211": "1,2,9",
	"HLA-A0301": "1,2,9", "HLA-A1101": "1,2,9", "HLA-A2301": "2,7,9",
	"HLA-A2402": "2,7,9", "HLA-A2601": "1,2,9", "HLA-A2902": "2,7,9",
	"HLA-A3001": "1,3,9", "HLA-A3002": "2,7,9", "HLA-A3101": "1,2,9",
	"HLA-A3201": "1,2,9", "HLA-A3301": "1,2,9", "HLA-A6801": "1,2,9",
	"HLA-A6802": "1,2,9", "HLA-A6901": "1,2,9", "HLA-B0702": "1,2,9",
	"HLA-B0801": "2,5,9", "HLA-B1501": "1,2,9", "HLA-B1502": "1,2,9",
	"HLA-B1801": "1,2,9", "HLA-B2705": "2,3,9", "HLA-B3501": "1,2,9",
	"HLA-B3901": "1,2,9", "HLA-B4001": "1,2,9", "HLA-B4002": "1,2,9",
	"HLA-B4402": "2,3,9", "HLA-B4403": "2,3,9", "HLA-B4501": "1,2,9",
	"HLA-B4601": "1,2,9", "HLA-B5101": "1,2,9", "HLA-B5301": "1,2,9",
	"HLA-B5401": "1,2,9", "HLA-B5701": "1,2,9", "HLA-B5801": "1,2,9",
}

// NormalizeAllele strips the '*' and ':' separators from an allele name
// so the display form "HLA-A*02:01" and the key form "HLA-A0201" hit
// the same AlleleAnchors entry.
func NormalizeAllele(allele string) string {
	allele = strings.ReplaceAll(allele, "*", "")
	return strings.ReplaceAll(allele, ":", "")
}

// Alleles returns the sorted list of alleles with known anchor positions.
func Alleles() []string {
	names := make([]string, 0, len(AlleleAnchors))
	for name := range AlleleAnchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
