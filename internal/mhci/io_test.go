package mhci

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func Test_ReadRecords(t *testing.T) {
	// headers as the external prediction services emit them
	in := strings.NewReader(
		"seq,hla,el_score,rank,ba_ic50,immunogenicity_score\n" +
			"siinfekl,HLA-A*02:01,0.97,0.12,44.5,0.2\n" +
			"RAKFKQLLM,HLA-B*07:02,0.81,not-a-number,,\n")

	records, err := ReadRecords(in)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadRecords() = %d records, want 2", len(records))
	}

	first := records[0]
	if first.Peptide != "SIINFEKL" {
		t.Errorf("Peptide = %q, want SIINFEKL (uppercased)", first.Peptide)
	}
	if first.Allele != "HLA-A*02:01" {
		t.Errorf("Allele = %q, want HLA-A*02:01", first.Allele)
	}
	if first.Score != 0.97 || first.PercentileRank != 0.12 || first.IC50 != 44.5 || first.Immunogenicity != 0.2 {
		t.Errorf("metrics = %v %v %v %v, want 0.97 0.12 44.5 0.2",
			first.Score, first.PercentileRank, first.IC50, first.Immunogenicity)
	}

	// malformed and missing cells degrade to NaN, not an error
	second := records[1]
	if !math.IsNaN(second.PercentileRank) || !math.IsNaN(second.IC50) || !math.IsNaN(second.Immunogenicity) {
		t.Errorf("missing metrics = %v %v %v, want NaN",
			second.PercentileRank, second.IC50, second.Immunogenicity)
	}
	if second.Score != 0.81 {
		t.Errorf("Score = %v, want 0.81", second.Score)
	}
}

func Test_ReadRecords_requiresAPeptideColumn(t *testing.T) {
	in := strings.NewReader("allele,score\nHLA-A*02:01,0.9\n")
	if _, err := ReadRecords(in); err == nil {
		t.Error("ReadRecords() expected an error for a header without a peptide column")
	}
}

func Test_WriteRanked(t *testing.T) {
	ranked := []RankedRecord{
		{
			Record: Record{
				Peptide:        "SIINFEKLM",
				Allele:         "HLA-A*02:01",
				Score:          0.9,
				PercentileRank: 0.25,
				Immunogenicity: 0.05646,
			},
			CompositeScore: 0.4117,
			Category:       CategoryGood,
		},
	}

	var buf bytes.Buffer
	if err := WriteRanked(&buf, ranked); err != nil {
		t.Fatalf("WriteRanked() error = %v", err)
	}

	want := "peptide,allele,composite_score,category,immunogenicity,percentile_rank,score\n" +
		"SIINFEKLM,HLA-A*02:01,0.4117,Good,0.05646,0.25,0.9\n"
	if buf.String() != want {
		t.Errorf("WriteRanked() = %q, want %q", buf.String(), want)
	}
}

func Test_canonicalColumn(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Epitope", "peptide"},
		{"MHC", "allele"},
		{"el_score", "score"},
		{"EL_Rank", "percentile_rank"},
		{"ba_ic50", "ic50"},
		{"percentile_rank", "percentile_rank"},
		{"peptide", "peptide"},
	}
	for _, tt := range tests {
		if got := canonicalColumn(tt.header); got != tt.want {
			t.Errorf("canonicalColumn(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
