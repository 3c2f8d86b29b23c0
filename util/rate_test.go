package util

import (
	"testing"
	"time"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name string
		prev uint64
		curr uint64
		dt   time.Duration
		want float64
	}{
		{"steady", 1000, 3000, 2 * time.Second, 1000},
		{"sub-second", 0, 500, 500 * time.Millisecond, 1000},
		{"no growth", 100, 100, time.Second, 0},
		{"counter wrap", 5000, 100, time.Second, 0},
		{"zero interval", 0, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.prev, tt.curr, tt.dt); got != tt.want {
				t.Errorf("Rate(%d, %d, %v) = %v, want %v", tt.prev, tt.curr, tt.dt, got, tt.want)
			}
		})
	}
}

func TestDelta(t *testing.T) {
	if got := Delta(100, 250); got != 150 {
		t.Errorf("Delta = %d, want 150", got)
	}
	if got := Delta(250, 100); got != 0 {
		t.Errorf("wrapped Delta = %d, want 0", got)
	}
}

func TestPct(t *testing.T) {
	tests := []struct {
		part  float64
		whole float64
		want  float64
	}{
		{50, 200, 25},
		{200, 100, 100},
		{-5, 100, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := Pct(tt.part, tt.whole); got != tt.want {
			t.Errorf("Pct(%v, %v) = %v, want %v", tt.part, tt.whole, got, tt.want)
		}
	}
}
