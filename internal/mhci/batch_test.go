package mhci

import (
	"math"
	"reflect"
	"testing"
)

func Test_Scorer_ScoreAll(t *testing.T) {
	s := NewScorer(WeightClamp)

	results, errs := s.ScoreAll(
		[]string{"SIINFEKLM", "bad1pep", "SIINFEKL", "ACDEFGHK"},
		"", "", 8, 15)

	// one invalid-character rejection, the other three are valid
	if len(errs) != 1 {
		t.Fatalf("ScoreAll() errors = %v, want 1", errs)
	}
	if len(results) != 3 {
		t.Fatalf("ScoreAll() = %d results, want 3", len(results))
	}

	// sorted by score descending
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results out of order: %v before %v", results[i-1], results[i])
		}
	}

	for _, r := range results {
		if r.Length != len(r.Peptide) {
			t.Errorf("Length = %d for %s", r.Length, r.Peptide)
		}
	}
}

func Test_Scorer_Annotate(t *testing.T) {
	s := NewScorer(WeightClamp)

	records := []Record{
		{Peptide: "SIINFEKLM", Allele: "", Immunogenicity: math.NaN()},
		{Peptide: "SIINFEKLM", Allele: "", Immunogenicity: 0.42},
	}

	s.Annotate(records, false)
	if records[0].Immunogenicity != 0.05646 {
		t.Errorf("Annotate() filled %v, want 0.05646", records[0].Immunogenicity)
	}
	// an existing score is kept without overwrite
	if records[1].Immunogenicity != 0.42 {
		t.Errorf("Annotate() overwrote %v, want 0.42 kept", records[1].Immunogenicity)
	}

	s.Annotate(records, true)
	if records[1].Immunogenicity != 0.05646 {
		t.Errorf("Annotate(overwrite) = %v, want 0.05646", records[1].Immunogenicity)
	}
}

func Test_GroupByAllele(t *testing.T) {
	records := []Record{
		{Peptide: "AAAAAAAAA", Allele: "HLA-A*02:01"},
		{Peptide: "CCCCCCCCC", Allele: "HLA-B*07:02"},
		{Peptide: "DDDDDDDDD", Allele: "HLA-A*02:01"},
	}

	alleles, groups := GroupByAllele(records)
	if !reflect.DeepEqual(alleles, []string{"HLA-A*02:01", "HLA-B*07:02"}) {
		t.Errorf("alleles = %v, want first-seen order", alleles)
	}
	if len(groups["HLA-A*02:01"]) != 2 || len(groups["HLA-B*07:02"]) != 1 {
		t.Errorf("groups = %v, want 2 and 1 records", groups)
	}
	if groups["HLA-A*02:01"][1].Peptide != "DDDDDDDDD" {
		t.Errorf("group order = %v, want input order kept", groups["HLA-A*02:01"])
	}
}
