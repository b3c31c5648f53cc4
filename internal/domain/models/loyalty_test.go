package models

import "testing"

func TestApplyPointsBelowThreshold(t *testing.T) {
	l := Loyalty{Points: 60}
	l.ApplyPoints(30)
	if l.Points != 90 || l.FreeTripEligible {
		t.Fatalf("got points=%d eligible=%t, want 90/false", l.Points, l.FreeTripEligible)
	}
}

func TestApplyPointsCrossesThreshold(t *testing.T) {
	l := Loyalty{Points: 60}
	l.ApplyPoints(50)
	if l.Points != 10 {
		t.Fatalf("points = %d, want 10 after conversion", l.Points)
	}
	if !l.FreeTripEligible {
		t.Fatal("expected free_trip_eligible after crossing 100")
	}
}

func TestApplyPointsSingleConversionPerCall(t *testing.T) {
	// Crossing the threshold twice in one credit still converts only once.
	l := Loyalty{}
	l.ApplyPoints(250)
	if l.Points != 150 || !l.FreeTripEligible {
		t.Fatalf("got points=%d eligible=%t, want 150/true", l.Points, l.FreeTripEligible)
	}
}

func TestRedeemFreeTrip(t *testing.T) {
	l := Loyalty{FreeTripEligible: true}
	if !l.RedeemFreeTrip() {
		t.Fatal("expected redemption to succeed")
	}
	if l.FreeTripEligible {
		t.Fatal("eligibility should be consumed")
	}
	if l.RedeemFreeTrip() {
		t.Fatal("second redemption should fail")
	}
}
