package domain

// Role describes how a tracked body relates to the reference body.
type Role string

const (
	// RoleReference marks the body whose age and laps anchor the run.
	RoleReference Role = "reference"

	// RoleInner marks bodies with shorter periods than the reference;
	// they lap the reference.
	RoleInner Role = "inner"

	// RoleOuter marks bodies with longer periods than the reference;
	// the reference laps them.
	RoleOuter Role = "outer"
)

// OrbitalBody is a tracked body with its sidereal orbital period.
type OrbitalBody struct {
	// Name is the display name of the body (e.g., "Mercury").
	Name string

	// PeriodDays is the sidereal orbital period in days. Must be positive.
	PeriodDays float64

	// Role places the body relative to the reference body.
	Role Role
}

// DefaultBodies returns the standard tracked set: the eight planets plus
// Pluto, with Earth as the reference. Periods are approximate sidereal
// periods in days.
func DefaultBodies() []OrbitalBody {
	return []OrbitalBody{
		{Name: "Mercury", PeriodDays: 87.969, Role: RoleInner},
		{Name: "Venus", PeriodDays: 224.701, Role: RoleInner},
		{Name: "Earth", PeriodDays: 365.256, Role: RoleReference},
		{Name: "Mars", PeriodDays: 686.980, Role: RoleOuter},
		{Name: "Jupiter", PeriodDays: 4332.59, Role: RoleOuter},
		{Name: "Saturn", PeriodDays: 10759.22, Role: RoleOuter},
		{Name: "Uranus", PeriodDays: 30685.4, Role: RoleOuter},
		{Name: "Neptune", PeriodDays: 60189.0, Role: RoleOuter},
		{Name: "Pluto", PeriodDays: 90560.0, Role: RoleOuter},
	}
}

// Reference returns the reference body from the given set.
// Returns ErrNoReference if the set has none.
func Reference(bodies []OrbitalBody) (OrbitalBody, error) {
	for _, b := range bodies {
		if b.Role == RoleReference {
			return b, nil
		}
	}
	return OrbitalBody{}, ErrNoReference
}
