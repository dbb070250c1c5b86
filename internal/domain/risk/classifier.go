package risk

// ConsequenceData is the raw reference record the classifier consumes.
// Produced by the consequence repository (or test fixtures).
type ConsequenceData struct {
	DeathRisk         bool
	InjuryRisk        bool
	InsuranceVoid     bool
	CriminalLiability bool
	DamageMinEUR      int
	DamageMaxEUR      int
	WarningText       string
	DangerText        string
	CriticalText      string
	LegalText         string
	RealCase          string
	Statistic         string
}

// ConsequenceSource looks up the consequence record for a component type in
// a jurisdiction. Absence is reported as (nil, nil): missing narrative
// content is not an error condition.
type ConsequenceSource interface {
	Find(componentType ComponentType, jurisdiction string) (*ConsequenceData, error)
}

// Consequences is the classified consequence payload
type Consequences struct {
	DeathRisk         bool   `json:"death_risk"`
	InjuryRisk        bool   `json:"injury_risk"`
	InsuranceVoid     bool   `json:"insurance_void"`
	CriminalLiability bool   `json:"criminal_liability"`
	DamageMinEUR      int    `json:"damage_min_eur"`
	DamageMaxEUR      int    `json:"damage_max_eur"`
}

// Assessment is the classifier output for one component
type Assessment struct {
	Level        Level        `json:"-"`
	LevelName    string       `json:"level"`
	Color        string       `json:"color"`
	Emoji        string       `json:"emoji"`
	Message      string       `json:"message"`
	Consequences Consequences `json:"consequences"`
	RealCase     string       `json:"real_case,omitempty"`
	Statistic    string       `json:"statistic,omitempty"`
}

// LevelFor evaluates the threshold ladder from most to least severe, first
// match wins. Thresholds are inclusive lower bounds of the tier they name.
func LevelFor(t ComponentType, daysOverdue int, jurisdiction string) Level {
	th := ProfileFor(t, jurisdiction).Thresholds
	switch {
	case daysOverdue >= th.Legal:
		return LevelLegal
	case daysOverdue >= th.Critical:
		return LevelCritical
	case daysOverdue >= th.Danger:
		return LevelDanger
	case daysOverdue >= th.Warning:
		return LevelWarning
	default:
		return LevelSafe
	}
}

// Classify maps (component type, days overdue, jurisdiction) to a risk
// level with its display attributes and consequence summary. The
// consequence lookup falls back from the exact jurisdiction to the
// applies-everywhere record; if neither exists the assessment carries the
// level with a default message and an empty consequence payload. Pure and
// deterministic apart from the source lookup; a nil source behaves like an
// empty repository.
func Classify(t ComponentType, daysOverdue int, jurisdiction string, source ConsequenceSource) (Assessment, error) {
	level := LevelFor(t, daysOverdue, jurisdiction)
	display := level.Display()

	assessment := Assessment{
		Level:     level,
		LevelName: level.String(),
		Color:     display.Color,
		Emoji:     display.Emoji,
		Message:   level.DefaultMessage(),
	}

	data, err := lookupConsequences(t, jurisdiction, source)
	if err != nil {
		return Assessment{}, err
	}
	if data == nil {
		return assessment, nil
	}

	assessment.Consequences = Consequences{
		DeathRisk:         data.DeathRisk,
		InjuryRisk:        data.InjuryRisk,
		InsuranceVoid:     data.InsuranceVoid,
		CriminalLiability: data.CriminalLiability,
		DamageMinEUR:      data.DamageMinEUR,
		DamageMaxEUR:      data.DamageMaxEUR,
	}
	assessment.RealCase = data.RealCase
	assessment.Statistic = data.Statistic

	if msg := tierMessage(level, data); msg != "" {
		assessment.Message = msg
	}
	return assessment, nil
}

// lookupConsequences applies the jurisdiction fallback chain
func lookupConsequences(t ComponentType, jurisdiction string, source ConsequenceSource) (*ConsequenceData, error) {
	if source == nil {
		return nil, nil
	}
	if jurisdiction != "" {
		data, err := source.Find(t, jurisdiction)
		if err != nil {
			return nil, err
		}
		if data != nil {
			return data, nil
		}
	}
	return source.Find(t, "")
}

// tierMessage picks the narrative text matching the level's severity tier
func tierMessage(level Level, data *ConsequenceData) string {
	switch level {
	case LevelLegal:
		return data.LegalText
	case LevelCritical:
		return data.CriticalText
	case LevelDanger:
		return data.DangerText
	case LevelWarning:
		return data.WarningText
	default:
		return ""
	}
}
