package stats

import (
	"math"
	"testing"
)

func TestShannonEntropy(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"constant", make([]byte, 4096), 0},
		{"two symbols", []byte("aabb"), 0.125},
		{"uniform over all bytes", allBytes, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ShannonEntropy(tt.data)
			if !ok {
				t.Fatal("ShannonEntropy not ok")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ShannonEntropy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShannonEntropyEmpty(t *testing.T) {
	if _, ok := ShannonEntropy(nil); ok {
		t.Error("empty input should not be ok")
	}
}

func TestShannonEntropyBounds(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	got, ok := ShannonEntropy(data)
	if !ok {
		t.Fatal("ShannonEntropy not ok")
	}
	if got <= 0 || got >= 1 {
		t.Errorf("mixed text entropy = %v, want strictly inside (0,1)", got)
	}
}
