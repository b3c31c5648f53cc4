package models

import "testing"

func TestValidSeatNumber(t *testing.T) {
	valid := []string{"1A", "9Z", "12B", "99D"}
	for _, s := range valid {
		if !ValidSeatNumber(s) {
			t.Errorf("ValidSeatNumber(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "A1", "123A", "1a", "1", "1AB", " 1A"}
	for _, s := range invalid {
		if ValidSeatNumber(s) {
			t.Errorf("ValidSeatNumber(%q) = true, want false", s)
		}
	}
}

func TestCalculateLoyaltyPoints(t *testing.T) {
	b := Booking{Status: StatusBooked}
	b.CalculateLoyaltyPoints()
	if b.LoyaltyPoints != 5 {
		t.Fatalf("BOOKED booking earned %d points, want 5", b.LoyaltyPoints)
	}

	for _, status := range []BookingStatus{StatusPaid, StatusCanceled, StatusRescheduled, StatusFree} {
		b := Booking{Status: status, LoyaltyPoints: 99}
		b.CalculateLoyaltyPoints()
		if b.LoyaltyPoints != 0 {
			t.Errorf("%s booking earned %d points, want 0", status, b.LoyaltyPoints)
		}
	}
}

func TestPromoteToFree(t *testing.T) {
	cases := []struct {
		booked, free int
		want         bool
	}{
		{0, 0, false},
		{3, 0, false},
		{4, 0, true},
		{4, 1, false},
		{7, 1, false},
		{8, 1, true},
		{12, 2, true},
	}
	for _, tc := range cases {
		b := Booking{Status: StatusBooked}
		b.CalculateLoyaltyPoints()
		got := b.PromoteToFree(tc.booked, tc.free)
		if got != tc.want {
			t.Errorf("PromoteToFree(booked=%d, free=%d) = %t, want %t", tc.booked, tc.free, got, tc.want)
			continue
		}
		if got {
			if b.Status != StatusFree {
				t.Errorf("promoted booking status = %s, want FREE", b.Status)
			}
			if b.LoyaltyPoints != 0 {
				t.Errorf("promoted booking kept %d points, want 0", b.LoyaltyPoints)
			}
		} else if b.Status != StatusBooked {
			t.Errorf("unpromoted booking status = %s, want BOOKED", b.Status)
		}
	}
}

func TestCancelAndRescheduleSourceStates(t *testing.T) {
	allowed := map[BookingStatus]bool{
		StatusBooked:      true,
		StatusPaid:        true,
		StatusRescheduled: true,
		StatusCanceled:    false,
		StatusFree:        false,
	}
	for status, want := range allowed {
		b := Booking{Status: status}
		if b.CanCancel() != want {
			t.Errorf("CanCancel from %s = %t, want %t", status, b.CanCancel(), want)
		}
		if b.CanReschedule() != want {
			t.Errorf("CanReschedule from %s = %t, want %t", status, b.CanReschedule(), want)
		}
	}
}

func TestReceiptPrice(t *testing.T) {
	if got := (Booking{Status: StatusFree}).ReceiptPrice(1500); got != 0 {
		t.Fatalf("FREE booking receipt price = %.2f, want 0", got)
	}
	if got := (Booking{Status: StatusPaid}).ReceiptPrice(1500); got != 1500 {
		t.Fatalf("PAID booking receipt price = %.2f, want 1500", got)
	}
}
