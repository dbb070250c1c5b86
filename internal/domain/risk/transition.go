package risk

// Prefs is the per-owner subset of preferences the transition decision
// depends on. Channel gating (push vs email) happens at delivery time.
type Prefs struct {
	NotifyResolved bool
}

// TransitionKind distinguishes why an intent was emitted
type TransitionKind int

const (
	KindEscalation TransitionKind = iota
	KindResolved
)

// Intent is the decision to alert an owner, prior to being turned into
// channel-specific payloads.
type Intent struct {
	Kind  TransitionKind
	Level Level
	Type  string // notification type: critical, warning, info, success
}

// Notification type per escalated-to level
var escalationTypes = map[Level]string{
	LevelWarning:  "info",
	LevelDanger:   "warning",
	LevelCritical: "critical",
	LevelLegal:    "critical",
}

// DecideTransition returns an intent when a risk transition is worth an
// alert, or nil. Strict escalation always produces an intent.
// De-escalation stays silent to avoid "all clear" spam, except that a
// return to safe produces a resolved intent for owners who opted in.
func DecideTransition(previous, next Level, prefs Prefs) *Intent {
	if next > previous {
		return &Intent{
			Kind:  KindEscalation,
			Level: next,
			Type:  escalationTypes[next],
		}
	}
	if next < previous && next == LevelSafe && prefs.NotifyResolved {
		return &Intent{
			Kind:  KindResolved,
			Level: next,
			Type:  "success",
		}
	}
	return nil
}
