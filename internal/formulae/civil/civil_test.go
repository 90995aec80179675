package civil

import (
	"testing"

	"github.com/zapponejosh/daycount/internal/formulae/gregorian"
)

func TestAgreesWithGregorian(t *testing.T) {
	for y := int32(1); y <= 2500; y++ {
		if IsLeapYear(y) != gregorian.IsLeapYear(y) {
			t.Fatalf("IsLeapYear(%d) disagrees", y)
		}
		if got, want := GetStartOfYear(y), gregorian.GetStartOfYear(y); got != want {
			t.Fatalf("GetStartOfYear(%d) = %d, want %d", y, got, want)
		}
		for m := int32(1); m <= 12; m++ {
			if got, want := CountDaysInMonth(y, m), gregorian.CountDaysInMonth(y, m); got != want {
				t.Fatalf("CountDaysInMonth(%d, %d) = %d, want %d", y, m, got, want)
			}
			for _, d := range []int32{1, 15, CountDaysInMonth(y, m)} {
				days := CountDaysSinceEpoch(y, m, d)
				if want := gregorian.CountDaysSinceEpoch(y, m, d); days != want {
					t.Fatalf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", y, m, d, days, want)
				}
				gy, gm, gd := GetDateParts(days)
				if gy != y || gm != m || gd != d {
					t.Fatalf("GetDateParts(%d) = (%d, %d, %d), want (%d, %d, %d)", days, gy, gm, gd, y, m, d)
				}
			}
		}
	}
}

func TestGetOrdinalParts(t *testing.T) {
	tests := []struct {
		days   int64
		y, doy int64
	}{
		{0, 1, 1},
		{364, 1, 365},
		{365, 2, 1},
		{730_119, 2000, 1},
		{730_484, 2000, 366},
		{730_485, 2001, 1},
		{3_652_058, 9999, 365},
	}

	for _, tt := range tests {
		y, doy := GetOrdinalParts(tt.days)
		if y != tt.y || doy != tt.doy {
			t.Errorf("GetOrdinalParts(%d) = (%d, %d), want (%d, %d)", tt.days, y, doy, tt.y, tt.doy)
		}
	}
}
