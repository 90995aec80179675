package gregorian

import "testing"

func TestCountDaysSinceEpoch_Known(t *testing.T) {
	tests := []struct {
		y, m, d int32
		want    int32
	}{
		{1, 1, 1, 0},
		{1, 3, 1, 59},
		{1, 12, 31, 364},
		{2, 1, 1, 365},
		{1945, 11, 12, 710_346},
		{2000, 1, 1, 730_119},
		{2000, 3, 1, 730_179},
		{0, 12, 31, -1},
		{0, 1, 1, -366},
	}

	for _, tt := range tests {
		if got := CountDaysSinceEpoch(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
		y, m, d := GetDateParts(tt.want)
		if y != tt.y || m != tt.m || d != tt.d {
			t.Errorf("GetDateParts(%d) = (%d, %d, %d), want (%d, %d, %d)", tt.want, y, m, d, tt.y, tt.m, tt.d)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		y    int64
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{0, true},
		{-100, false},
		{-400, true},
		{-4, true},
		{-1, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.y); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.y, got, tt.want)
		}
		wantDays := int64(365)
		if tt.want {
			wantDays = 366
		}
		if got := CountDaysInYear(tt.y); got != wantDays {
			t.Errorf("CountDaysInYear(%d) = %d, want %d", tt.y, got, wantDays)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for y := int32(-1200); y <= 2800; y++ {
		start := GetStartOfYear(y)
		if got := CountDaysSinceEpoch(y, 1, 1); got != start {
			t.Fatalf("CountDaysSinceEpoch(%d, 1, 1) = %d, GetStartOfYear = %d", y, got, start)
		}
		if next := GetStartOfYear(y + 1); next-start != CountDaysInYear(y) {
			t.Fatalf("year %d: start of next year - start = %d, want %d", y, next-start, CountDaysInYear(y))
		}

		doy := int32(0)
		for m := int32(1); m <= 12; m++ {
			if got := CountDaysInYearBeforeMonth(y, m); got != doy {
				t.Fatalf("CountDaysInYearBeforeMonth(%d, %d) = %d, want %d", y, m, got, doy)
			}
			for d := int32(1); d <= CountDaysInMonth(y, m); d++ {
				doy++
				days := CountDaysSinceEpoch(y, m, d)
				if days != start+doy-1 {
					t.Fatalf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", y, m, d, days, start+doy-1)
				}
				gy, gm, gd := GetDateParts(days)
				if gy != y || gm != m || gd != d {
					t.Fatalf("GetDateParts(%d) = (%d, %d, %d), want (%d, %d, %d)", days, gy, gm, gd, y, m, d)
				}
				oy, odoy := GetOrdinalParts(days)
				if oy != y || odoy != doy {
					t.Fatalf("GetOrdinalParts(%d) = (%d, %d), want (%d, %d)", days, oy, odoy, y, doy)
				}
			}
		}
	}
}

func TestWidthsAgree(t *testing.T) {
	for days := int32(-800_000); days <= 800_000; days += 97 {
		y32, m32, d32 := GetDateParts(days)
		y64, m64, d64 := GetDateParts(int64(days))
		if int64(y32) != y64 || int64(m32) != m64 || int64(d32) != d64 {
			t.Fatalf("GetDateParts(%d): int32 (%d, %d, %d) != int64 (%d, %d, %d)", days, y32, m32, d32, y64, m64, d64)
		}
		if int64(GetYear(days)) != GetYear(int64(days)) {
			t.Fatalf("GetYear(%d) differs between widths", days)
		}
		if int64(CountDaysSinceEpoch(y32, m32, d32)) != CountDaysSinceEpoch(y64, m64, d64) {
			t.Fatalf("CountDaysSinceEpoch(%d, %d, %d) differs between widths", y32, m32, d32)
		}
	}
}

func TestExtremeYears(t *testing.T) {
	// Both ends of the range a 32-bit schema supports.
	for _, y := range []int32{-999_998, -999_997, 999_998, 999_999} {
		for _, md := range [][2]int32{{1, 1}, {2, 28}, {12, 31}} {
			days := CountDaysSinceEpoch(y, md[0], md[1])
			gy, gm, gd := GetDateParts(days)
			if gy != y || gm != md[0] || gd != md[1] {
				t.Errorf("round trip %d-%d-%d via %d gave %d-%d-%d", y, md[0], md[1], days, gy, gm, gd)
			}
			if got := GetYear(days); got != y {
				t.Errorf("GetYear(%d) = %d, want %d", days, got, y)
			}
		}
	}
}
