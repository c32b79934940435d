package domain

import (
	"errors"
	"testing"
)

func earthCounter(t *testing.T) LapCounter {
	t.Helper()
	ref, err := Reference(DefaultBodies())
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	c, err := NewLapCounter(ref)
	if err != nil {
		t.Fatalf("NewLapCounter: %v", err)
	}
	return c
}

func TestNewLapCounter_InvalidPeriod(t *testing.T) {
	_, err := NewLapCounter(OrbitalBody{Name: "Nil", PeriodDays: 0})
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("NewLapCounter() error = %v, want ErrInvalidPeriod", err)
	}
}

func TestLaps_ZeroAtStart(t *testing.T) {
	c := earthCounter(t)
	for _, b := range DefaultBodies() {
		if got := c.Laps(b, 0); got != 0 {
			t.Errorf("Laps(%s, 0) = %d, want 0", b.Name, got)
		}
	}
}

func TestLaps_Monotonic(t *testing.T) {
	c := earthCounter(t)
	for _, b := range DefaultBodies() {
		prev := 0
		for days := 0; days <= 40000; days += 13 {
			got := c.Laps(b, days)
			if got < prev {
				t.Fatalf("Laps(%s, %d) = %d decreased from %d", b.Name, days, got, prev)
			}
			prev = got
		}
	}
}

func TestLaps_EqualPeriods(t *testing.T) {
	c := earthCounter(t)
	twin := OrbitalBody{Name: "Twin", PeriodDays: 365.256, Role: RoleOuter}
	for _, days := range []int{0, 1, 365, 100000} {
		if got := c.Laps(twin, days); got != 0 {
			t.Errorf("Laps(Twin, %d) = %d, want 0", days, got)
		}
	}
}

func TestLaps_HalfPeriodCadence(t *testing.T) {
	// A body with half the reference period gains exactly one relative lap
	// per reference period: |1/(P/2) - 1/P| = 1/P.
	ref := OrbitalBody{Name: "Ref", PeriodDays: 400, Role: RoleReference}
	c, err := NewLapCounter(ref)
	if err != nil {
		t.Fatalf("NewLapCounter: %v", err)
	}
	half := OrbitalBody{Name: "Half", PeriodDays: 200, Role: RoleInner}
	for k := 0; k <= 10; k++ {
		if got := c.Laps(half, k*400); got != k {
			t.Errorf("Laps(Half, %d) = %d, want %d", k*400, got, k)
		}
		if k > 0 {
			if got := c.Laps(half, k*400-1); got != k-1 {
				t.Errorf("Laps(Half, %d) = %d, want %d", k*400-1, got, k-1)
			}
		}
	}
}

func TestLaps_MercurySynodic(t *testing.T) {
	// Mercury's synodic period relative to Earth is about 115.88 days, so a
	// year holds three complete laps.
	c := earthCounter(t)
	mercury := DefaultBodies()[0]
	if got := c.Laps(mercury, 366); got != 3 {
		t.Errorf("Laps(Mercury, 366) = %d, want 3", got)
	}
	if got := c.Laps(mercury, 115); got != 0 {
		t.Errorf("Laps(Mercury, 115) = %d, want 0", got)
	}
}

func TestCount_PartitionsByRole(t *testing.T) {
	c := earthCounter(t)
	inner, outer := c.Count(DefaultBodies(), 730)

	if len(inner) != 2 || inner[0].Body != "Mercury" || inner[1].Body != "Venus" {
		t.Fatalf("inner = %+v, want Mercury then Venus", inner)
	}
	if len(outer) != 6 || outer[0].Body != "Mars" || outer[5].Body != "Pluto" {
		t.Fatalf("outer = %+v, want Mars..Pluto in order", outer)
	}
	for _, lc := range inner {
		if lc.Laps <= 0 {
			t.Errorf("inner body %s has %d laps after two years, want > 0", lc.Body, lc.Laps)
		}
	}
}
