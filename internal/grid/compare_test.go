package grid

import (
	"testing"
	"time"
)

func TestCompareNumbers(t *testing.T) {
	if Compare(1, 2) != -1 || Compare(2, 1) != 1 || Compare(2, 2) != 0 {
		t.Fatalf("int ordering broken")
	}
	if Compare(int64(10), 9.5) != 1 {
		t.Fatalf("mixed numeric kinds must compare numerically")
	}
	if Compare(10, "9") >= 0 {
		// falls back to string comparison: "10" < "9"
		t.Fatalf("number vs string falls back to string order")
	}
}

func TestCompareStringsCaseInsensitive(t *testing.T) {
	if Compare("Apple", "apple") != 0 {
		t.Fatalf("case must not matter")
	}
	if Compare("apple", "Banana") != -1 {
		t.Fatalf("expected apple < Banana")
	}
}

func TestCompareNilAlwaysLast(t *testing.T) {
	if Compare(nil, "z") != 1 {
		t.Fatalf("nil must sort after values")
	}
	if Compare("z", nil) != -1 {
		t.Fatalf("values must sort before nil")
	}
	if Compare(nil, nil) != 0 {
		t.Fatalf("nil ties with nil")
	}
}

func TestCompareTimes(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(time.Hour)
	if Compare(a, b) != -1 || Compare(b, a) != 1 || Compare(a, a) != 0 {
		t.Fatalf("time ordering broken")
	}
}

func TestStringifyDeterministic(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{42, "42"},
		{int64(7), "7"},
		{3.5, "3.5"},
		{2.0, "2"},
		{true, "true"},
		{time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), "2024-06-01T12:00:00Z"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestColumnValueRecoversPanic(t *testing.T) {
	c := FieldColumn("boom", "Boom", func(r item) any {
		panic("accessor exploded")
	})
	v, err := c.Value(item{id: "a"})
	if err == nil {
		t.Fatalf("expected error from panicking accessor")
	}
	if v != nil {
		t.Fatalf("errored cell must extract as nil, got %v", v)
	}
}
