package intervals

import "testing"

func TestRange_Contains(t *testing.T) {
	r := New[int32](-199_999, 200_000)

	tests := []struct {
		v    int32
		want bool
	}{
		{-200_000, false},
		{-199_999, true},
		{0, true},
		{200_000, true},
		{200_001, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("%v.Contains(%d) = %v, want %v", r, tt.v, got, tt.want)
		}
	}
}

func TestRange_SetOperations(t *testing.T) {
	a := New(1, 10)
	b := New(5, 20)
	c := New(30, 40)

	got, ok := a.Intersect(b)
	if !ok || got != New(5, 10) {
		t.Errorf("Intersect = %v, %v; want [5, 10], true", got, ok)
	}
	if _, ok := a.Intersect(c); ok {
		t.Error("Intersect of disjoint ranges reported overlap")
	}
	if span := a.Span(c); span != New(1, 40) {
		t.Errorf("Span = %v, want [1, 40]", span)
	}
	if !New(2, 3).IsSubsetOf(a) {
		t.Error("[2, 3] should be a subset of [1, 10]")
	}
	if b.IsSubsetOf(a) {
		t.Error("[5, 20] should not be a subset of [1, 10]")
	}
}

func TestRange_Misc(t *testing.T) {
	s := Singleton[int64](7)
	if !s.IsSingleton() || s.Min() != 7 || s.Max() != 7 {
		t.Errorf("Singleton(7) = %v", s)
	}
	if n := Count(New[int32](-999_998, 999_999)); n != 1_999_998 {
		t.Errorf("Count = %d, want 1999998", n)
	}
	if got := New(1, 2).String(); got != "[1, 2]" {
		t.Errorf("String() = %q", got)
	}
}

func TestNew_PanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(2, 1) did not panic")
		}
	}()
	New(2, 1)
}
