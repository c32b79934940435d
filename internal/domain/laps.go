package domain

import "math"

// LapCounter computes completed relative revolutions of tracked bodies
// around the reference body. It is a pure function of elapsed time: counts
// are recomputed from scratch per frame, never accumulated, so they cannot
// drift and are non-decreasing by construction.
type LapCounter struct {
	ref OrbitalBody
}

// NewLapCounter creates a counter anchored on the given reference body.
// Returns ErrInvalidPeriod if the reference period is not positive.
func NewLapCounter(ref OrbitalBody) (LapCounter, error) {
	if ref.PeriodDays <= 0 {
		return LapCounter{}, ErrInvalidPeriod
	}
	return LapCounter{ref: ref}, nil
}

// Laps returns the number of complete relative revolutions between body and
// the reference over elapsedDays. The relative phase advances at
// ω = 2π·(1/P − 1/P_ref) per day; the count is floor(|ω·Δt| / 2π), the 2π
// cancelling. Equal periods yield a constant 0.
func (c LapCounter) Laps(body OrbitalBody, elapsedDays int) int {
	if body.PeriodDays <= 0 || elapsedDays <= 0 {
		return 0
	}
	rate := 1.0/body.PeriodDays - 1.0/c.ref.PeriodDays
	if rate == 0 {
		return 0
	}
	return int(math.Floor(math.Abs(float64(elapsedDays) * rate)))
}

// LapCount pairs a body name with its cumulative lap count at one frame.
type LapCount struct {
	Body string
	Laps int
}

// Count computes lap counts for every non-reference body in the set,
// partitioned by role and preserving the set's order.
func (c LapCounter) Count(bodies []OrbitalBody, elapsedDays int) (inner, outer []LapCount) {
	for _, b := range bodies {
		switch b.Role {
		case RoleInner:
			inner = append(inner, LapCount{Body: b.Name, Laps: c.Laps(b, elapsedDays)})
		case RoleOuter:
			outer = append(outer, LapCount{Body: b.Name, Laps: c.Laps(b, elapsedDays)})
		}
	}
	return inner, outer
}
