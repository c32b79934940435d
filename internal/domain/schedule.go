package domain

import "time"

// Schedule is the ordered, finite date sequence of a run: start,
// start+step, ..., with the last element at or before end. It is a value
// type addressable by index, so the sequence is lazy, restartable and safe
// to consume from concurrent workers.
type Schedule struct {
	start      time.Time
	end        time.Time
	stepDays   int
	includeEnd bool

	steps int // stepped dates after start, excluding a trailing end date
	extra bool
}

// NewSchedule validates the range and builds a schedule. When includeEnd is
// set and the last stepped date falls strictly before end, one extra final
// date equal to end is appended. Returns ErrInvalidRange if end precedes
// start or stepDays < 1.
func NewSchedule(start, end time.Time, stepDays int, includeEnd bool) (Schedule, error) {
	if end.Before(start) || stepDays < 1 {
		return Schedule{}, ErrInvalidRange
	}
	span := daysBetween(start, end)
	steps := span / stepDays
	extra := includeEnd && steps*stepDays < span
	return Schedule{
		start:      start,
		end:        end,
		stepDays:   stepDays,
		includeEnd: includeEnd,
		steps:      steps,
		extra:      extra,
	}, nil
}

// Len returns the number of scheduled dates. Always at least 1.
func (s Schedule) Len() int {
	n := s.steps + 1
	if s.extra {
		n++
	}
	return n
}

// At returns the i-th scheduled date, 0-based.
func (s Schedule) At(i int) time.Time {
	if s.extra && i == s.Len()-1 {
		return s.end
	}
	return s.start.AddDate(0, 0, i*s.stepDays)
}

// ElapsedDays returns the whole days elapsed from start to the i-th date.
func (s Schedule) ElapsedDays(i int) int {
	return daysBetween(s.start, s.At(i))
}

// daysBetween counts whole days from a to b. Counting in Unix seconds keeps
// the arithmetic exact for midnight dates over spans where a time.Duration
// difference would overflow.
func daysBetween(a, b time.Time) int {
	return int(b.Unix()/86400 - a.Unix()/86400)
}

// Start returns the first scheduled date.
func (s Schedule) Start() time.Time { return s.start }

// End returns the configured end of the range, which is not necessarily a
// scheduled date unless the span is an exact multiple of the step or
// includeEnd is set.
func (s Schedule) End() time.Time { return s.end }

// StepDays returns the configured step in days.
func (s Schedule) StepDays() int { return s.stepDays }
