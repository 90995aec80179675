package schemas

import (
	"errors"
	"testing"
)

var allSchemas = []struct {
	name   string
	schema Schema
}{
	{"gregorian", GregorianSchema{}},
	{"julian", JulianSchema{}},
	{"egyptian12", Egyptian12Schema{}},
	{"egyptian13", Egyptian13Schema{}},
	{"coptic12", Coptic12Schema{}},
	{"coptic13", Coptic13Schema{}},
	{"french-republican12", FrenchRepublican12Schema{}},
	{"french-republican13", FrenchRepublican13Schema{}},
	{"persian2820", Persian2820Schema{}},
	{"tabular-islamic", TabularIslamicSchema{}},
	{"tropicalia", TropicaliaSchema{}},
	{"tropicalia3031", Tropicalia3031Schema{}},
	{"tropicalia3130", Tropicalia3130Schema{}},
}

// checkYear walks every day of year y and checks that all conversions agree.
func checkYear(t *testing.T, s Schema, y int32) {
	t.Helper()

	start := s.GetStartOfYear(y)
	daysInYear := s.CountDaysInYear(y)
	if next := s.GetStartOfYear(y + 1); next-start != daysInYear {
		t.Fatalf("year %d: start of next year - start = %d, CountDaysInYear = %d", y, next-start, daysInYear)
	}
	if end := s.GetEndOfYear(y); end != start+daysInYear-1 {
		t.Fatalf("GetEndOfYear(%d) = %d, want %d", y, end, start+daysInYear-1)
	}

	intercalary := 0
	doy := int32(0)
	monthsInYear := s.CountMonthsInYear(y)
	for m := int32(1); m <= monthsInYear; m++ {
		if got := s.CountDaysInYearBeforeMonth(y, m); got != doy {
			t.Fatalf("CountDaysInYearBeforeMonth(%d, %d) = %d, want %d", y, m, got, doy)
		}
		for d := int32(1); d <= s.CountDaysInMonth(y, m); d++ {
			doy++
			want := start + doy - 1
			if got := s.CountDaysSinceEpoch(y, m, d); got != want {
				t.Fatalf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", y, m, d, got, want)
			}
			if got := s.CountDaysSinceEpochOrdinal(y, doy); got != want {
				t.Fatalf("CountDaysSinceEpochOrdinal(%d, %d) = %d, want %d", y, doy, got, want)
			}
			gy, gm, gd := s.GetDateParts(want)
			if gy != y || gm != m || gd != d {
				t.Fatalf("GetDateParts(%d) = (%d, %d, %d), want (%d, %d, %d)", want, gy, gm, gd, y, m, d)
			}
			oy, odoy := s.GetYear(want)
			if oy != y || odoy != doy {
				t.Fatalf("GetYear(%d) = (%d, %d), want (%d, %d)", want, oy, odoy, y, doy)
			}
			if mm, dd := s.GetMonth(y, doy); mm != m || dd != d {
				t.Fatalf("GetMonth(%d, %d) = (%d, %d), want (%d, %d)", y, doy, mm, dd, m, d)
			}
			if s.IsIntercalaryDay(y, m, d) {
				intercalary++
			}
		}
	}
	if doy != daysInYear {
		t.Fatalf("year %d: months add up to %d days, want %d", y, doy, daysInYear)
	}

	wantIntercalary := 0
	if s.IsLeapYear(y) {
		wantIntercalary = 1
	}
	if intercalary != wantIntercalary {
		t.Fatalf("year %d: %d intercalary days, want %d", y, intercalary, wantIntercalary)
	}

	m, d := s.GetDatePartsAtEndOfYear(y)
	if m != monthsInYear || d != s.CountDaysInMonth(y, m) {
		t.Fatalf("GetDatePartsAtEndOfYear(%d) = (%d, %d)", y, m, d)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range allSchemas {
		t.Run(tt.name, func(t *testing.T) {
			for y := int32(-500); y <= 500; y++ {
				checkYear(t, tt.schema, y)
			}
			for _, y := range []int32{1900, 1945, 2000, 2024, 3294, 4000, 4001, -4000} {
				checkYear(t, tt.schema, y)
			}
		})
	}
}

func TestSupportedYearsEndpoints(t *testing.T) {
	for _, tt := range allSchemas {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.schema.SupportedYears().Endpoints()
			for _, y := range []int32{lo, lo + 1, hi - 1, hi} {
				for _, days := range []int32{tt.schema.GetStartOfYear(y), tt.schema.GetEndOfYear(y)} {
					gy, gm, gd := tt.schema.GetDateParts(days)
					if gy != y {
						t.Fatalf("GetDateParts(%d) year = %d, want %d", days, gy, y)
					}
					if got := tt.schema.CountDaysSinceEpoch(gy, gm, gd); got != days {
						t.Fatalf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", gy, gm, gd, got, days)
					}
				}
			}

			days := SupportedDays(tt.schema)
			if days.Min() != tt.schema.GetStartOfYear(lo) || days.Max() != tt.schema.GetEndOfYear(hi) {
				t.Errorf("SupportedDays = %v", days)
			}
		})
	}
}

func TestCycleLengths(t *testing.T) {
	tests := []struct {
		name       string
		schema     Schema
		years      int32
		days       int32
		leapYears  int32
		startYears []int32
	}{
		{"gregorian", GregorianSchema{}, 400, 146_097, 97, []int32{1, -399, 1601}},
		{"julian", JulianSchema{}, 4, 1461, 1, []int32{1, -3, 2001}},
		{"egyptian", Egyptian12Schema{}, 1, 365, 0, []int32{1, -1}},
		{"coptic", Coptic13Schema{}, 4, 1461, 1, []int32{1, -3, 1741}},
		{"french-republican", FrenchRepublican12Schema{}, 4000, 1_460_969, 969, []int32{1, -3999}},
		{"persian", Persian2820Schema{}, 2820, 1_029_983, 683, []int32{1, 475, -2345}},
		{"tabular-islamic", TabularIslamicSchema{}, 30, 10_631, 11, []int32{1, -29, 1441}},
		{"tropicalia", TropicaliaSchema{}, 128, 46_751, 31, []int32{1, -127, 1921}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, y0 := range tt.startYears {
				got := tt.schema.GetStartOfYear(y0+tt.years) - tt.schema.GetStartOfYear(y0)
				if got != tt.days {
					t.Errorf("%d years from %d span %d days, want %d", tt.years, y0, got, tt.days)
				}
				var leaps int32
				for y := y0; y < y0+tt.years; y++ {
					if tt.schema.IsLeapYear(y) {
						leaps++
					}
				}
				if leaps != tt.leapYears {
					t.Errorf("%d years from %d have %d leap years, want %d", tt.years, y0, leaps, tt.leapYears)
				}
			}
		})
	}
}

func TestKnownDates(t *testing.T) {
	// Gregorian 12 November 1945 in each calendar, as a count of days
	// since that calendar's own epoch.
	tests := []struct {
		name    string
		schema  Schema
		y, m, d int32
		days    int32
	}{
		{"gregorian", GregorianSchema{}, 1945, 11, 12, 710_346},
		{"julian", JulianSchema{}, 1945, 10, 30, 710_348},
		{"egyptian", Egyptian12Schema{}, 2694, 7, 10, 983_134},
		{"coptic", Coptic12Schema{}, 1662, 3, 3, 606_742},
		{"french-republican", FrenchRepublican12Schema{}, 154, 2, 21, 55_932},
		{"persian", Persian2820Schema{}, 1324, 8, 21, 483_451},
		{"tabular-islamic", TabularIslamicSchema{}, 1364, 12, 6, 483_332},
		{"tropicalia", TropicaliaSchema{}, 1945, 11, 12, 710_346},
		{"tropicalia3031", Tropicalia3031Schema{}, 1945, 11, 11, 710_346},
		{"tropicalia3130", Tropicalia3130Schema{}, 1945, 11, 11, 710_346},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.CountDaysSinceEpoch(tt.y, tt.m, tt.d); got != tt.days {
				t.Errorf("CountDaysSinceEpoch(%d, %d, %d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.days)
			}
			y, m, d := tt.schema.GetDateParts(tt.days)
			if y != tt.y || m != tt.m || d != tt.d {
				t.Errorf("GetDateParts(%d) = (%d, %d, %d), want (%d, %d, %d)", tt.days, y, m, d, tt.y, tt.m, tt.d)
			}
		})
	}
}

func TestEpochIsDayZero(t *testing.T) {
	for _, tt := range allSchemas {
		if got := tt.schema.CountDaysSinceEpoch(1, 1, 1); got != 0 {
			t.Errorf("%s: CountDaysSinceEpoch(1, 1, 1) = %d, want 0", tt.name, got)
		}
		if got := tt.schema.GetStartOfYear(1); got != 0 {
			t.Errorf("%s: GetStartOfYear(1) = %d, want 0", tt.name, got)
		}
	}
}

func TestMonthsSinceEpoch(t *testing.T) {
	for _, tt := range allSchemas {
		t.Run(tt.name, func(t *testing.T) {
			n, _ := tt.schema.IsRegular()
			if got := tt.schema.CountMonthsSinceEpoch(1, 1); got != 0 {
				t.Errorf("CountMonthsSinceEpoch(1, 1) = %d, want 0", got)
			}
			if got := tt.schema.CountMonthsSinceEpoch(0, n); got != -1 {
				t.Errorf("CountMonthsSinceEpoch(0, %d) = %d, want -1", n, got)
			}
			for count := int32(-100); count <= 100; count++ {
				y, m := tt.schema.GetMonthParts(count)
				if m < 1 || m > n {
					t.Fatalf("GetMonthParts(%d) month = %d", count, m)
				}
				if got := tt.schema.CountMonthsSinceEpoch(y, m); got != count {
					t.Fatalf("CountMonthsSinceEpoch(%d, %d) = %d, want %d", y, m, got, count)
				}
			}
		})
	}
}

func TestDaysInMonthDistribution(t *testing.T) {
	for _, tt := range allSchemas {
		t.Run(tt.name, func(t *testing.T) {
			for _, leap := range []bool{false, true} {
				dist := tt.schema.DaysInMonthDistribution(leap)
				n, _ := tt.schema.IsRegular()
				if int32(len(dist)) != n {
					t.Fatalf("len = %d, want %d", len(dist), n)
				}
				var sum int32
				for _, v := range dist {
					sum += int32(v)
				}
				want := tt.schema.MinDaysInYear()
				if leap {
					want++
				}
				if tt.schema.Family() == FamilyAnnusVagus && leap {
					// No year is leap, but the leap distribution still
					// describes a sixth epagomenal day.
					want = 366
				}
				if sum != want {
					t.Errorf("leap=%v: sum = %d, want %d", leap, sum, want)
				}
				dist[0] = 0
				if again := tt.schema.DaysInMonthDistribution(leap); again[0] == 0 {
					t.Error("distribution shares storage with the schema")
				}
			}
		})
	}
}

func TestMinDaysInMonth(t *testing.T) {
	for _, tt := range allSchemas {
		minDays := tt.schema.MinDaysInMonth()
		for _, leap := range []bool{false, true} {
			for _, v := range tt.schema.DaysInMonthDistribution(leap) {
				if int32(v) < minDays {
					t.Errorf("%s: month of %d days, MinDaysInMonth = %d", tt.name, v, minDays)
				}
			}
		}
	}
}

func TestEgyptianForms(t *testing.T) {
	pairs := []struct {
		name   string
		twelve EpagomenalSchema
		thirt  EpagomenalSchema
	}{
		{"egyptian", Egyptian12Schema{}, Egyptian13Schema{}},
		{"coptic", Coptic12Schema{}, Coptic13Schema{}},
		{"french-republican", FrenchRepublican12Schema{}, FrenchRepublican13Schema{}},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for days := int32(-3000); days <= 3000; days++ {
				y12, m12, d12 := p.twelve.GetDateParts(days)
				y13, m13, d13 := p.thirt.GetDateParts(days)
				if y12 != y13 {
					t.Fatalf("GetDateParts(%d): years differ, %d and %d", days, y12, y13)
				}

				n12, ok12 := p.twelve.IsEpagomenalDay(y12, m12, d12)
				n13, ok13 := p.thirt.IsEpagomenalDay(y13, m13, d13)
				if ok12 != ok13 || n12 != n13 {
					t.Fatalf("day %d: epagomenal (%d, %v) vs (%d, %v)", days, n12, ok12, n13, ok13)
				}
				if ok12 {
					if m12 != 12 || d12 != 30+n12 || m13 != 13 || d13 != n13 {
						t.Fatalf("day %d: %d-%d vs %d-%d", days, m12, d12, m13, d13)
					}
					if !p.twelve.IsSupplementaryDay(y12, m12, d12) {
						t.Fatalf("day %d: not supplementary", days)
					}
					continue
				}
				if m12 != m13 || d12 != d13 {
					t.Fatalf("day %d: %d-%d vs %d-%d", days, m12, d12, m13, d13)
				}
			}
		})
	}
}

func TestCopticLeapYears(t *testing.T) {
	s := Coptic12Schema{}
	for _, y := range []int32{3, 7, 1739, -1} {
		if !s.IsLeapYear(y) {
			t.Errorf("IsLeapYear(%d) = false, want true", y)
		}
		if !s.IsIntercalaryDay(y, 12, 36) {
			t.Errorf("IsIntercalaryDay(%d, 12, 36) = false", y)
		}
	}
	for _, y := range []int32{1, 2, 4, 1740} {
		if s.IsLeapYear(y) {
			t.Errorf("IsLeapYear(%d) = true, want false", y)
		}
	}
}

func TestFrenchRepublicanLeapYears(t *testing.T) {
	s := FrenchRepublican13Schema{}
	tests := []struct {
		y    int32
		want bool
	}{
		{4, true},
		{100, false},
		{400, true},
		{4000, false},
		{8000, false},
		{1200, true},
		{0, false},
		{-400, true},
	}

	for _, tt := range tests {
		if got := s.IsLeapYear(tt.y); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestPersianEndOfCycle(t *testing.T) {
	s := Persian2820Schema{}
	// 474 and 3294 close a 2820-year cycle and are leap years.
	for _, y := range []int32{474, 3294, -2346} {
		if !s.IsLeapYear(y) {
			t.Errorf("IsLeapYear(%d) = false, want true", y)
		}
		end := s.GetEndOfYear(y)
		gy, gm, gd := s.GetDateParts(end)
		if gy != y || gm != 12 || gd != 30 {
			t.Errorf("GetDateParts(%d) = (%d, %d, %d), want (%d, 12, 30)", end, gy, gm, gd, y)
		}
		if ny, doy := s.GetYear(end + 1); ny != y+1 || doy != 1 {
			t.Errorf("GetYear(%d) = (%d, %d), want (%d, 1)", end+1, ny, doy, y+1)
		}
	}
}

func TestTabularIslamicLeapYears(t *testing.T) {
	s := TabularIslamicSchema{}
	leap := map[int32]bool{2: true, 5: true, 7: true, 10: true, 13: true, 16: true, 18: true, 21: true, 24: true, 26: true, 29: true}
	for y := int32(1); y <= 30; y++ {
		if got := s.IsLeapYear(y); got != leap[y] {
			t.Errorf("IsLeapYear(%d) = %v, want %v", y, got, leap[y])
		}
		want := int32(354)
		if leap[y] {
			want = 355
		}
		if got := s.CountDaysInYear(y); got != want {
			t.Errorf("CountDaysInYear(%d) = %d, want %d", y, got, want)
		}
		// The cycle repeats.
		if s.IsLeapYear(y) != s.IsLeapYear(y+30) || s.IsLeapYear(y) != s.IsLeapYear(y-300) {
			t.Errorf("leap pattern of year %d does not repeat", y)
		}
	}
}

func TestTropicaliaLeapYears(t *testing.T) {
	s := TropicaliaSchema{}
	tests := []struct {
		y    int32
		want bool
	}{
		{4, true},
		{100, true},
		{128, false},
		{256, false},
		{0, false},
		{-4, true},
		{2000, true},
		{2048, false},
	}

	for _, tt := range tests {
		if got := s.IsLeapYear(tt.y); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestFamily(t *testing.T) {
	tests := []struct {
		schema Schema
		want   Family
	}{
		{GregorianSchema{}, FamilySolar},
		{TabularIslamicSchema{}, FamilyLunar},
		{Egyptian13Schema{}, FamilyAnnusVagus},
		{Persian2820Schema{}, FamilySolar},
	}

	for _, tt := range tests {
		if got := tt.schema.Family(); got != tt.want {
			t.Errorf("%T.Family() = %v, want %v", tt.schema, got, tt.want)
		}
	}
	if got := FamilyLunar.String(); got != "lunar" {
		t.Errorf("FamilyLunar.String() = %q", got)
	}
}

func TestLookup(t *testing.T) {
	for _, tt := range allSchemas {
		got, err := Lookup(tt.name)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.schema {
			t.Errorf("Lookup(%q) = %T, want %T", tt.name, got, tt.schema)
		}
	}

	if got, err := Lookup("  Coptic13 "); err != nil || got != (Coptic13Schema{}) {
		t.Errorf("Lookup is not case-insensitive: %T, %v", got, err)
	}
	if _, err := Lookup("mayan"); !errors.Is(err, ErrUnknownSchema) {
		t.Errorf("Lookup(mayan) error = %v, want ErrUnknownSchema", err)
	}
	if n := len(Names()); n != len(allSchemas) {
		t.Errorf("len(Names()) = %d, want %d", n, len(allSchemas))
	}
}
