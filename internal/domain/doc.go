// Package domain contains the core domain entities and pure computations for
// orbitlapse.
//
// This package represents the innermost layer of the architecture. It has no
// dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only pure timeline logic.
//
// # Entities
//
//   - [OrbitalBody]: A tracked body with its sidereal period and role
//   - [Schedule]: The ordered, finite date sequence of a run
//   - [FrameInfo]: The computed metadata stamped onto a single frame
//   - [Manifest]: The persisted record of a completed run
//
// # Computations
//
//   - [LapCounter]: Relative orbital laps as a pure function of elapsed days
//   - [AgeBetween]: Calendar age in years, months and days
//
// Everything here is recomputed from elapsed time rather than accumulated
// across frames, so each frame's values are independently testable and the
// pipeline is free to process frames in any order.
package domain
