package schemas

import "slices"

// julianMonths is the month layout shared by the Gregorian and Julian
// calendars: 31, 28 or 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31.
type julianMonths struct{}

var (
	julianCommonMonths = []byte{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	julianLeapMonths   = []byte{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

func (julianMonths) monthsInYear() int32   { return 12 }
func (julianMonths) minDaysInMonth() int32 { return 28 }

func (julianMonths) daysInMonth(leap bool, m int32) int32 {
	if m == 2 {
		return 28 + leapDays(leap)
	}
	return 30 + ((m + (m >> 3)) & 1)
}

func (julianMonths) daysBeforeMonth(leap bool, m int32) int32 {
	if m < 3 {
		return 31 * (m - 1)
	}
	return 59 + leapDays(leap) + (153*m-457)/5
}

func (l julianMonths) monthOf(leap bool, doy int32) (int32, int32) {
	d0y := doy - 1
	// Pretend February has 30 days so that months follow a 367-day pattern.
	if corr := leapDays(leap); d0y >= 59+corr {
		d0y += 2 - corr
	}
	m := (12*d0y + 373) / 367
	return m, doy - l.daysBeforeMonth(leap, m)
}

func (julianMonths) lastMonthDay(bool) (int32, int32) { return 12, 31 }

func (julianMonths) intercalaryDay(m, d int32) bool { return m == 2 && d == 29 }

func (julianMonths) supplementaryNumber(int32, int32) int32 { return 0 }

func (julianMonths) distribution(leap bool) []byte {
	if leap {
		return slices.Clone(julianLeapMonths)
	}
	return slices.Clone(julianCommonMonths)
}

// ptolemaic12Months has twelve months of 30 days, the last one extended by
// the five or six epagomenal days.
type ptolemaic12Months struct{}

func (ptolemaic12Months) monthsInYear() int32   { return 12 }
func (ptolemaic12Months) minDaysInMonth() int32 { return 30 }

func (ptolemaic12Months) daysInMonth(leap bool, m int32) int32 {
	if m == 12 {
		return 35 + leapDays(leap)
	}
	return 30
}

func (ptolemaic12Months) daysBeforeMonth(_ bool, m int32) int32 { return 30 * (m - 1) }

func (ptolemaic12Months) monthOf(_ bool, doy int32) (int32, int32) {
	d0y := doy - 1
	if d0y >= 330 {
		return 12, doy - 330
	}
	return d0y/30 + 1, d0y%30 + 1
}

func (ptolemaic12Months) lastMonthDay(leap bool) (int32, int32) {
	return 12, 35 + leapDays(leap)
}

func (ptolemaic12Months) intercalaryDay(m, d int32) bool { return m == 12 && d == 36 }

func (ptolemaic12Months) supplementaryNumber(m, d int32) int32 {
	if m == 12 && d > 30 {
		return d - 30
	}
	return 0
}

func (ptolemaic12Months) distribution(leap bool) []byte {
	out := []byte{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 35}
	out[11] += byte(leapDays(leap))
	return out
}

// ptolemaic13Months has twelve months of 30 days followed by a short
// thirteenth month holding the epagomenal days.
type ptolemaic13Months struct{}

func (ptolemaic13Months) monthsInYear() int32   { return 13 }
func (ptolemaic13Months) minDaysInMonth() int32 { return 5 }

func (ptolemaic13Months) daysInMonth(leap bool, m int32) int32 {
	if m == 13 {
		return 5 + leapDays(leap)
	}
	return 30
}

func (ptolemaic13Months) daysBeforeMonth(_ bool, m int32) int32 { return 30 * (m - 1) }

func (ptolemaic13Months) monthOf(_ bool, doy int32) (int32, int32) {
	d0y := doy - 1
	return d0y/30 + 1, d0y%30 + 1
}

func (ptolemaic13Months) lastMonthDay(leap bool) (int32, int32) {
	return 13, 5 + leapDays(leap)
}

func (ptolemaic13Months) intercalaryDay(m, d int32) bool { return m == 13 && d == 6 }

func (ptolemaic13Months) supplementaryNumber(m, d int32) int32 {
	if m == 13 {
		return d
	}
	return 0
}

func (ptolemaic13Months) distribution(leap bool) []byte {
	out := []byte{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 5}
	out[12] += byte(leapDays(leap))
	return out
}

// persianMonths: six months of 31 days, five of 30, then 29 or 30.
type persianMonths struct{}

func (persianMonths) monthsInYear() int32   { return 12 }
func (persianMonths) minDaysInMonth() int32 { return 29 }

func (persianMonths) daysInMonth(leap bool, m int32) int32 {
	switch {
	case m < 7:
		return 31
	case m < 12:
		return 30
	default:
		return 29 + leapDays(leap)
	}
}

func (persianMonths) daysBeforeMonth(_ bool, m int32) int32 {
	if m < 8 {
		return 31 * (m - 1)
	}
	return 30*(m-1) + 6
}

func (l persianMonths) monthOf(leap bool, doy int32) (int32, int32) {
	d0y := doy - 1
	var m int32
	if d0y < 186 {
		m = d0y/31 + 1
	} else {
		m = (d0y-6)/30 + 1
	}
	return m, doy - l.daysBeforeMonth(leap, m)
}

func (persianMonths) lastMonthDay(leap bool) (int32, int32) {
	return 12, 29 + leapDays(leap)
}

func (persianMonths) intercalaryDay(m, d int32) bool { return m == 12 && d == 30 }

func (persianMonths) supplementaryNumber(int32, int32) int32 { return 0 }

func (persianMonths) distribution(leap bool) []byte {
	out := []byte{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
	out[11] += byte(leapDays(leap))
	return out
}

// lunarMonths alternates months of 30 and 29 days; the last month gains a
// day in leap years.
type lunarMonths struct{}

func (lunarMonths) monthsInYear() int32   { return 12 }
func (lunarMonths) minDaysInMonth() int32 { return 29 }

func (lunarMonths) daysInMonth(leap bool, m int32) int32 {
	if m == 12 {
		return 29 + leapDays(leap)
	}
	return 29 + (m & 1)
}

func (lunarMonths) daysBeforeMonth(_ bool, m int32) int32 { return 29*(m-1) + (m >> 1) }

func (l lunarMonths) monthOf(leap bool, doy int32) (int32, int32) {
	m := (11*(doy-1) + 330) / 325
	return m, doy - l.daysBeforeMonth(leap, m)
}

func (lunarMonths) lastMonthDay(leap bool) (int32, int32) {
	return 12, 29 + leapDays(leap)
}

func (lunarMonths) intercalaryDay(m, d int32) bool { return m == 12 && d == 30 }

func (lunarMonths) supplementaryNumber(int32, int32) int32 { return 0 }

func (lunarMonths) distribution(leap bool) []byte {
	out := []byte{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29}
	out[11] += byte(leapDays(leap))
	return out
}

// months3031 alternates months of 30 and 31 days; the twelfth month has
// 30 days, or 31 in leap years.
type months3031 struct{}

func (months3031) monthsInYear() int32   { return 12 }
func (months3031) minDaysInMonth() int32 { return 30 }

func (months3031) daysInMonth(leap bool, m int32) int32 {
	if m == 12 {
		return 30 + leapDays(leap)
	}
	return 30 + ((m + 1) & 1)
}

func (months3031) daysBeforeMonth(_ bool, m int32) int32 { return 30*(m-1) + ((m - 1) >> 1) }

func (months3031) monthOf(_ bool, doy int32) (int32, int32) {
	// Each pair of months spans 61 days.
	p, r := (doy-1)/61, (doy-1)%61
	if r < 30 {
		return 2*p + 1, r + 1
	}
	return 2*p + 2, r - 29
}

func (months3031) lastMonthDay(leap bool) (int32, int32) {
	return 12, 30 + leapDays(leap)
}

func (months3031) intercalaryDay(m, d int32) bool { return m == 12 && d == 31 }

func (months3031) supplementaryNumber(int32, int32) int32 { return 0 }

func (months3031) distribution(leap bool) []byte {
	out := []byte{30, 31, 30, 31, 30, 31, 30, 31, 30, 31, 30, 30}
	out[11] += byte(leapDays(leap))
	return out
}

// months3130 alternates months of 31 and 30 days; the twelfth month has
// 29 days, or 30 in leap years.
type months3130 struct{}

func (months3130) monthsInYear() int32   { return 12 }
func (months3130) minDaysInMonth() int32 { return 29 }

func (months3130) daysInMonth(leap bool, m int32) int32 {
	if m == 12 {
		return 29 + leapDays(leap)
	}
	return 30 + (m & 1)
}

func (months3130) daysBeforeMonth(_ bool, m int32) int32 { return 30*(m-1) + (m >> 1) }

func (months3130) monthOf(_ bool, doy int32) (int32, int32) {
	p, r := (doy-1)/61, (doy-1)%61
	if r < 31 {
		return 2*p + 1, r + 1
	}
	return 2*p + 2, r - 30
}

func (months3130) lastMonthDay(leap bool) (int32, int32) {
	return 12, 29 + leapDays(leap)
}

func (months3130) intercalaryDay(m, d int32) bool { return m == 12 && d == 30 }

func (months3130) supplementaryNumber(int32, int32) int32 { return 0 }

func (months3130) distribution(leap bool) []byte {
	out := []byte{31, 30, 31, 30, 31, 30, 31, 30, 31, 30, 31, 29}
	out[11] += byte(leapDays(leap))
	return out
}
