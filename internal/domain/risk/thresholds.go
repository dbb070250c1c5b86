package risk

// ComponentType enumerates the serviceable building element categories
type ComponentType string

const (
	TypeHeating    ComponentType = "heating"
	TypeElectrical ComponentType = "electrical"
	TypeFireSafety ComponentType = "fire_safety"
	TypeElevator   ComponentType = "elevator"
	TypePlumbing   ComponentType = "plumbing"
	TypeChimney    ComponentType = "chimney"

	// TypeGeneric is the conservative fallback for unknown types
	TypeGeneric ComponentType = "generic"
)

// String returns the string representation of the component type
func (t ComponentType) String() string {
	return string(t)
}

// IsValid returns true if the component type is a known value
func (t ComponentType) IsValid() bool {
	switch t {
	case TypeHeating, TypeElectrical, TypeFireSafety, TypeElevator,
		TypePlumbing, TypeChimney, TypeGeneric:
		return true
	default:
		return false
	}
}

// NormalizeType maps a raw type string onto a known component type. Unknown
// types degrade to the conservative generic profile; the second return
// value tells the caller whether the input was recognized, so it can log
// the degradation.
func NormalizeType(raw string) (ComponentType, bool) {
	t := ComponentType(raw)
	if t.IsValid() {
		return t, true
	}
	return TypeGeneric, false
}

// Thresholds are inclusive lower bounds in days-overdue for the tier they
// name: a component sitting exactly on a threshold belongs to that tier.
// Invariant: Warning < Danger < Critical < Legal. Negative values are lead
// times, so a tier can start before the component is formally due.
type Thresholds struct {
	Warning  int `json:"warning"`
	Danger   int `json:"danger"`
	Critical int `json:"critical"`
	Legal    int `json:"legal"`
}

// Profile bundles the regulatory interval and the severity thresholds for
// one component type in one jurisdiction.
type Profile struct {
	IntervalDays int        `json:"interval_days"`
	Thresholds   Thresholds `json:"thresholds"`
}

type profileKey struct {
	componentType ComponentType
	jurisdiction  string
}

// Statutory intervals and severity ladders. Keyed by (type, jurisdiction);
// the empty jurisdiction is the applies-everywhere fallback. The Austrian
// rows follow the usual maintenance statutes: annual heating service and
// chimney sweep, fire extinguisher inspection every two years, annual
// elevator inspection, electrical certificate every five years.
var profiles = map[profileKey]Profile{
	{TypeHeating, "AT"}:    {IntervalDays: 365, Thresholds: Thresholds{Warning: 0, Danger: 30, Critical: 90, Legal: 180}},
	{TypeChimney, "AT"}:    {IntervalDays: 365, Thresholds: Thresholds{Warning: 0, Danger: 30, Critical: 60, Legal: 120}},
	{TypeFireSafety, "AT"}: {IntervalDays: 730, Thresholds: Thresholds{Warning: -30, Danger: -14, Critical: 0, Legal: 90}},
	{TypeElevator, "AT"}:   {IntervalDays: 365, Thresholds: Thresholds{Warning: -14, Danger: 0, Critical: 30, Legal: 90}},
	{TypeElectrical, "AT"}: {IntervalDays: 1825, Thresholds: Thresholds{Warning: 0, Danger: 60, Critical: 180, Legal: 365}},
	{TypePlumbing, "AT"}:   {IntervalDays: 365, Thresholds: Thresholds{Warning: 0, Danger: 90, Critical: 180, Legal: 365}},

	// Jurisdiction-agnostic fallbacks
	{TypeHeating, ""}:    {IntervalDays: 365, Thresholds: Thresholds{Warning: 0, Danger: 30, Critical: 90, Legal: 180}},
	{TypeChimney, ""}:    {IntervalDays: 365, Thresholds: Thresholds{Warning: 0, Danger: 30, Critical: 60, Legal: 120}},
	{TypeFireSafety, ""}: {IntervalDays: 730, Thresholds: Thresholds{Warning: -30, Danger: -14, Critical: 0, Legal: 90}},
	{TypeElevator, ""}:   {IntervalDays: 365, Thresholds: Thresholds{Warning: -14, Danger: 0, Critical: 30, Legal: 90}},
	{TypeElectrical, ""}: {IntervalDays: 1825, Thresholds: Thresholds{Warning: 0, Danger: 60, Critical: 180, Legal: 365}},
	{TypePlumbing, ""}:   {IntervalDays: 365, Thresholds: Thresholds{Warning: 0, Danger: 90, Critical: 180, Legal: 365}},

	// Conservative profile for everything the registry does not know
	{TypeGeneric, ""}: {IntervalDays: 365, Thresholds: Thresholds{Warning: -30, Danger: -14, Critical: 0, Legal: 60}},
}

// ProfileFor resolves the profile for a component type in a jurisdiction:
// exact match first, then the jurisdiction-agnostic row, then the generic
// fallback profile.
func ProfileFor(t ComponentType, jurisdiction string) Profile {
	if p, ok := profiles[profileKey{t, jurisdiction}]; ok {
		return p
	}
	if p, ok := profiles[profileKey{t, ""}]; ok {
		return p
	}
	return profiles[profileKey{TypeGeneric, ""}]
}

// IntervalDaysFor returns the regulatory maintenance interval for a
// component type in a jurisdiction.
func IntervalDaysFor(t ComponentType, jurisdiction string) int {
	return ProfileFor(t, jurisdiction).IntervalDays
}
