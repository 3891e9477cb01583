package mhci

import (
	"math"
	"reflect"
	"testing"
)

func float(v float64) *float64 { return &v }

func Test_Filter(t *testing.T) {
	records := []Record{
		{Peptide: "AAAAAAAAA", Score: 0.99, PercentileRank: 0.1, IC50: 40, Immunogenicity: 0.1},
		{Peptide: "CCCCCCCCC", Score: 0.90, PercentileRank: 0.5, IC50: 300, Immunogenicity: 0.2},
		{Peptide: "DDDDDDDDD", Score: 0.70, PercentileRank: 2.0, IC50: 900, Immunogenicity: 0.3},
	}

	tests := []struct {
		name       string
		thresholds Thresholds
		want       []string
	}{
		{
			"minimum immunogenicity is inclusive",
			Thresholds{MinImmunogenicity: float(0.2)},
			[]string{"CCCCCCCCC", "DDDDDDDDD"},
		},
		{
			"minimum binding score",
			Thresholds{MinScore: float(0.9)},
			[]string{"AAAAAAAAA", "CCCCCCCCC"},
		},
		{
			"maximum rank and ic50 combined",
			Thresholds{MaxPercentileRank: float(0.5), MaxIC50: float(100)},
			[]string{"AAAAAAAAA"},
		},
		{
			"all thresholds active",
			Thresholds{
				MinScore:          float(0.9),
				MaxPercentileRank: float(0.5),
				MaxIC50:           float(500),
				MinImmunogenicity: float(0.2),
			},
			[]string{"CCCCCCCCC"},
		},
		{
			"nothing passes",
			Thresholds{MinScore: float(1.5)},
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, r := range Filter(records, tt.thresholds) {
				got = append(got, r.Peptide)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() kept %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Filter_noThresholdsIsANoop(t *testing.T) {
	records := []Record{
		{Peptide: "AAAAAAAAA"},
		{Peptide: "CCCCCCCCC"},
	}

	got := Filter(records, Thresholds{})
	if !reflect.DeepEqual(got, records) {
		t.Errorf("Filter() with no thresholds = %v, want the input unchanged", got)
	}
}

func Test_Filter_missingFieldFailsTheThreshold(t *testing.T) {
	records := []Record{
		{Peptide: "AAAAAAAAA", IC50: math.NaN(), Immunogenicity: 0.5},
		{Peptide: "CCCCCCCCC", IC50: 100, Immunogenicity: 0.5},
	}

	got := Filter(records, Thresholds{MaxIC50: float(500)})
	if len(got) != 1 || got[0].Peptide != "CCCCCCCCC" {
		t.Errorf("Filter() = %v, want just CCCCCCCCC", got)
	}
}
