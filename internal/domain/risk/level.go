// Package risk implements the maintenance-due and risk classification
// engine: the maintenance clock, the threshold-ladder classifier, portfolio
// aggregation, trend bucketing and the notification transition decision.
// Everything in this package is a pure function over its inputs; persistence
// and delivery live in the service layer.
package risk

// Level is the severity tier of a component's maintenance status,
// totally ordered safe < warning < danger < critical < legal.
type Level int

const (
	LevelSafe Level = iota
	LevelWarning
	LevelDanger
	LevelCritical
	LevelLegal
)

var levelNames = map[Level]string{
	LevelSafe:     "safe",
	LevelWarning:  "warning",
	LevelDanger:   "danger",
	LevelCritical: "critical",
	LevelLegal:    "legal",
}

// String returns the string representation of the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "safe"
}

// IsValid returns true if the level is a known value
func (l Level) IsValid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel parses a stored level name; unknown names map to safe
func ParseLevel(s string) Level {
	for l, name := range levelNames {
		if name == s {
			return l
		}
	}
	return LevelSafe
}

// Display carries the purely level-derived presentation attributes
type Display struct {
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// Single table keyed by level instead of a conditional ladder, so a new
// level cannot silently miss a display mapping.
var displayTable = map[Level]Display{
	LevelSafe:     {Color: "#22c55e", Emoji: "✅"},
	LevelWarning:  {Color: "#eab308", Emoji: "⚠️"},
	LevelDanger:   {Color: "#f97316", Emoji: "🔶"},
	LevelCritical: {Color: "#ef4444", Emoji: "🚨"},
	LevelLegal:    {Color: "#991b1b", Emoji: "⚖️"},
}

// Display returns the display attributes for the level
func (l Level) Display() Display {
	if d, ok := displayTable[l]; ok {
		return d
	}
	return displayTable[LevelSafe]
}

// Default per-level messages used when a consequence record carries no
// narrative text for the tier. German, matching the product's UI language.
var defaultMessages = map[Level]string{
	LevelSafe:     "Alle Wartungen sind auf dem aktuellen Stand.",
	LevelWarning:  "Eine Wartung steht in Kürze an oder ist leicht überfällig.",
	LevelDanger:   "Die Wartung ist deutlich überfällig. Bitte zeitnah einen Termin vereinbaren.",
	LevelCritical: "Die Wartung ist kritisch überfällig. Es drohen Sicherheitsrisiken und Haftungsfolgen.",
	LevelLegal:    "Die gesetzliche Wartungsfrist ist abgelaufen. Es drohen rechtliche Konsequenzen.",
}

// DefaultMessage returns the fallback narrative for the level
func (l Level) DefaultMessage() string {
	if m, ok := defaultMessages[l]; ok {
		return m
	}
	return defaultMessages[LevelSafe]
}
