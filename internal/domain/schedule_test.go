package domain

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSchedule_InvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		step  int
	}{
		{"inverted range", date(2020, 1, 2), date(2020, 1, 1), 1},
		{"zero step", date(2020, 1, 1), date(2020, 1, 2), 0},
		{"negative step", date(2020, 1, 1), date(2020, 1, 2), -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchedule(tt.start, tt.end, tt.step, false)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("NewSchedule() error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestSchedule_SingleDate(t *testing.T) {
	s, err := NewSchedule(date(1879, 3, 14), date(1879, 3, 14), 7, true)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if !s.At(0).Equal(date(1879, 3, 14)) {
		t.Errorf("At(0) = %v, want start date", s.At(0))
	}
	if s.ElapsedDays(0) != 0 {
		t.Errorf("ElapsedDays(0) = %d, want 0", s.ElapsedDays(0))
	}
}

func TestSchedule_StepLaw(t *testing.T) {
	// Every element is start + k*step, strictly increasing, last <= end.
	start, end := date(1879, 3, 14), date(1881, 3, 13)
	s, err := NewSchedule(start, end, 365, false)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	prev := start.AddDate(0, 0, -1)
	for i := 0; i < s.Len(); i++ {
		d := s.At(i)
		if !d.After(prev) {
			t.Errorf("At(%d) = %v not after At(%d)", i, d, i-1)
		}
		if got, want := s.ElapsedDays(i), i*365; got != want {
			t.Errorf("ElapsedDays(%d) = %d, want %d", i, got, want)
		}
		if d.After(end) {
			t.Errorf("At(%d) = %v exceeds end %v", i, d, end)
		}
		prev = d
	}
}

func TestSchedule_ExactMultipleEndsOnEnd(t *testing.T) {
	s, err := NewSchedule(date(2020, 1, 1), date(2020, 1, 13), 3, true)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	// Span of 12 days is an exact multiple of 3: no extra trailing date.
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	if !s.At(4).Equal(date(2020, 1, 13)) {
		t.Errorf("At(4) = %v, want end date", s.At(4))
	}
}

func TestSchedule_IncludeEndAppendsFinalDate(t *testing.T) {
	start, end := date(2020, 1, 1), date(2020, 1, 11)

	with, err := NewSchedule(start, end, 3, true)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	// Stepped dates land on days 0, 3, 6, 9; the extra frame lands on day 10.
	if with.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", with.Len())
	}
	if !with.At(4).Equal(end) {
		t.Errorf("At(4) = %v, want end %v", with.At(4), end)
	}
	if with.ElapsedDays(4) != 10 {
		t.Errorf("ElapsedDays(4) = %d, want 10", with.ElapsedDays(4))
	}

	without, err := NewSchedule(start, end, 3, false)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	if without.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", without.Len())
	}
	if last := without.At(3); last.After(end) {
		t.Errorf("last date %v exceeds end %v", last, end)
	}
}

func TestSchedule_MultiCenturySpan(t *testing.T) {
	// 1600-01-01 to 2000-01-01 is exactly 146097 days, a full Gregorian
	// cycle. Spans this long exceed what a time.Duration can represent.
	start, end := date(1600, 1, 1), date(2000, 1, 1)
	s, err := NewSchedule(start, end, 1, true)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	if s.Len() != 146098 {
		t.Fatalf("Len() = %d, want 146098", s.Len())
	}
	if got := s.ElapsedDays(s.Len() - 1); got != 146097 {
		t.Errorf("ElapsedDays(last) = %d, want 146097", got)
	}
	if !s.At(s.Len() - 1).Equal(end) {
		t.Errorf("At(last) = %v, want end %v", s.At(s.Len()-1), end)
	}
}

func TestSchedule_Restartable(t *testing.T) {
	s, err := NewSchedule(date(2020, 1, 1), date(2020, 2, 1), 7, true)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	// Indexing is stateless: re-reading the same index yields the same date.
	for i := 0; i < s.Len(); i++ {
		if !s.At(i).Equal(s.At(i)) {
			t.Fatalf("At(%d) not stable", i)
		}
	}
}
