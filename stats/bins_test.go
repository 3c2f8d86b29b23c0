package stats

import (
	"math"
	"testing"
)

func TestMakeBinsSturges(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}
	bins := MakeBins(data, Binning{Strategy: BinSturges})
	// ceil(log2 100) + 1 = 8.
	if len(bins) != 8 {
		t.Fatalf("len = %d, want 8", len(bins))
	}
	sum := 0
	for _, b := range bins {
		sum += b.Count
	}
	if sum != 100 {
		t.Errorf("counts sum to %d, want 100", sum)
	}
	if bins[0].Start != 0 || bins[len(bins)-1].End != 99 {
		t.Errorf("range [%v, %v], want [0, 99]", bins[0].Start, bins[len(bins)-1].End)
	}
}

func TestMakeBinsContiguous(t *testing.T) {
	data := []float64{0, 1, 2.5, 7, 9.1, 10}
	bins := MakeBins(data, Binning{Strategy: BinCount, Param: 5})
	for i := 1; i < len(bins); i++ {
		if math.Abs(bins[i].Start-bins[i-1].End) > 1e-12 {
			t.Fatalf("gap between bin %d end %v and bin %d start %v",
				i-1, bins[i-1].End, i, bins[i].Start)
		}
	}
}

func TestMakeBinsEmpty(t *testing.T) {
	bins := MakeBins(nil, Binning{Strategy: BinSturges})
	if len(bins) != 1 {
		t.Fatalf("len = %d, want 1", len(bins))
	}
	if bins[0].Start != 0 || bins[0].End != 1 || bins[0].Count != 0 {
		t.Errorf("empty bin = %+v, want [0,1) count 0", bins[0])
	}
}

func TestMakeBinsConstant(t *testing.T) {
	bins := MakeBins([]float64{5, 5, 5}, Binning{Strategy: BinCount, Param: 1})
	if len(bins) != 1 {
		t.Fatalf("len = %d, want 1", len(bins))
	}
	if bins[0].Start != 4.5 || bins[0].End != 5.5 {
		t.Errorf("constant range = [%v, %v], want [4.5, 5.5]", bins[0].Start, bins[0].End)
	}
	if bins[0].Count != 3 {
		t.Errorf("count = %d, want 3", bins[0].Count)
	}
}

func TestMakeBinsMaxIsCounted(t *testing.T) {
	// The maximum value lands in the right-closed last bin, not past it.
	bins := MakeBins([]float64{0, 10}, Binning{Strategy: BinCount, Param: 4})
	if bins[len(bins)-1].Count != 1 {
		t.Errorf("last bin count = %d, want 1", bins[len(bins)-1].Count)
	}
}

func TestNumBins(t *testing.T) {
	uniform := make([]float64, 64)
	for i := range uniform {
		uniform[i] = float64(i)
	}
	tests := []struct {
		name    string
		binning Binning
		values  []float64
		rng     float64
		want    int
	}{
		{"count", Binning{Strategy: BinCount, Param: 12}, uniform, 63, 12},
		{"count clamped high", Binning{Strategy: BinCount, Param: 1000}, uniform, 63, 100},
		{"count clamped low", Binning{Strategy: BinCount}, uniform, 63, 1},
		{"width", Binning{Strategy: BinWidth, Param: 25}, uniform, 99, 4},
		{"width zero param", Binning{Strategy: BinWidth}, uniform, 99, 1},
		{"sturges 64", Binning{Strategy: BinSturges}, uniform, 63, 7},
		{"sturges empty", Binning{Strategy: BinSturges}, nil, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binning.NumBins(tt.values, tt.rng); got != tt.want {
				t.Errorf("NumBins = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNumBinsScottAndFD(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i) * 1.5
	}
	rng := values[len(values)-1] - values[0]
	for _, s := range []BinStrategy{BinScott, BinFreedmanDiaconis} {
		k := Binning{Strategy: s}.NumBins(values, rng)
		if k < 1 || k > 100 {
			t.Errorf("strategy %v: k = %d outside [1,100]", s, k)
		}
	}
	// Zero spread degrades to a single bin.
	flat := []float64{2, 2, 2, 2}
	for _, s := range []BinStrategy{BinScott, BinFreedmanDiaconis} {
		if k := (Binning{Strategy: s}).NumBins(flat, 0); k != 1 {
			t.Errorf("strategy %v on flat data: k = %d, want 1", s, k)
		}
	}
}
