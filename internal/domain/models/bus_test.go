package models

import (
	"slices"
	"testing"
)

func TestSeatLabelsRowMajor(t *testing.T) {
	got := SeatLabels(8, 4)
	want := []string{"1A", "1B", "1C", "1D", "2A", "2B", "2C", "2D"}
	if !slices.Equal(got, want) {
		t.Fatalf("SeatLabels(8,4) = %v, want %v", got, want)
	}
}

func TestSeatLabelsDropsRemainder(t *testing.T) {
	// 10 seats at 4 per row yields 2 full rows; the trailing 2 are not labeled.
	got := SeatLabels(10, 4)
	if len(got) != 8 {
		t.Fatalf("expected 8 labels, got %d: %v", len(got), got)
	}
	if got[len(got)-1] != "2D" {
		t.Fatalf("last label = %s, want 2D", got[len(got)-1])
	}
}

func TestSeatLabelsUniqueAndValid(t *testing.T) {
	labels := SeatLabels(40, 4)
	seen := map[string]struct{}{}
	for _, l := range labels {
		if !ValidSeatNumber(l) {
			t.Errorf("generated label %q does not match the seat format", l)
		}
		if _, dup := seen[l]; dup {
			t.Errorf("duplicate label %q", l)
		}
		seen[l] = struct{}{}
	}
	if len(labels) != 40 {
		t.Fatalf("expected 40 labels, got %d", len(labels))
	}
}

func TestSeatLabelsCapsColumnsAtAlphabet(t *testing.T) {
	labels := SeatLabels(30, 30)
	if len(labels) != 26 {
		t.Fatalf("expected 26 labels for an oversized row, got %d", len(labels))
	}
	if labels[25] != "1Z" {
		t.Fatalf("last column = %s, want 1Z", labels[25])
	}
}

func TestSeatLabelsDegenerateInputs(t *testing.T) {
	for _, tc := range [][2]int{{0, 4}, {40, 0}, {-8, 4}, {8, -4}} {
		if got := SeatLabels(tc[0], tc[1]); len(got) != 0 {
			t.Errorf("SeatLabels(%d,%d) = %v, want empty", tc[0], tc[1], got)
		}
	}
}
