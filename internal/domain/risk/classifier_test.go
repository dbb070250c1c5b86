package risk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory consequence source for classifier tests
type fakeSource struct {
	records map[string]*ConsequenceData
	err     error
}

func (f *fakeSource) Find(t ComponentType, jurisdiction string) (*ConsequenceData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[string(t)+"|"+jurisdiction], nil
}

func TestLevelForHeatingAT(t *testing.T) {
	tests := []struct {
		daysOverdue int
		want        Level
	}{
		{-100, LevelSafe},
		{-1, LevelSafe},
		{0, LevelWarning},
		{29, LevelWarning},
		{30, LevelDanger},
		{89, LevelDanger},
		{90, LevelCritical},
		{179, LevelCritical},
		{180, LevelLegal},
		{5000, LevelLegal},
	}

	for _, tt := range tests {
		got := LevelFor(TypeHeating, tt.daysOverdue, "AT")
		assert.Equal(t, tt.want, got, "heating AT at %d days overdue", tt.daysOverdue)
	}
}

func TestLevelForFireSafetyDueTodayIsCritical(t *testing.T) {
	// Fire safety escalates before the due date and reaches critical
	// exactly on it
	assert.Equal(t, LevelCritical, LevelFor(TypeFireSafety, 0, "AT"))
	assert.Equal(t, LevelWarning, LevelFor(TypeFireSafety, -30, "AT"))
	assert.Equal(t, LevelDanger, LevelFor(TypeFireSafety, -14, "AT"))
	assert.Equal(t, LevelLegal, LevelFor(TypeFireSafety, 90, "AT"))
}

func TestLevelForMonotonic(t *testing.T) {
	// More days overdue never yields a lower level
	types := []ComponentType{TypeHeating, TypeChimney, TypeFireSafety, TypeElevator, TypeElectrical, TypePlumbing, TypeGeneric}
	for _, componentType := range types {
		previous := LevelSafe
		for days := -400; days <= 400; days++ {
			level := LevelFor(componentType, days, "AT")
			assert.GreaterOrEqual(t, int(level), int(previous), "%s at %d days", componentType, days)
			previous = level
		}
	}
}

func TestLevelForUnknownJurisdictionFallsBack(t *testing.T) {
	// No profile for DE exists, so the jurisdiction-agnostic row applies
	assert.Equal(t, LevelFor(TypeHeating, 45, ""), LevelFor(TypeHeating, 45, "DE"))
}

func TestNormalizeType(t *testing.T) {
	componentType, known := NormalizeType("heating")
	assert.True(t, known)
	assert.Equal(t, TypeHeating, componentType)

	componentType, known = NormalizeType("pool_pump")
	assert.False(t, known)
	assert.Equal(t, TypeGeneric, componentType)
}

func TestClassifyDeterministic(t *testing.T) {
	first, err := Classify(TypeHeating, 45, "AT", nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Classify(TypeHeating, 45, "AT", nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyWithNilSource(t *testing.T) {
	assessment, err := Classify(TypeHeating, 45, "AT", nil)
	require.NoError(t, err)

	assert.Equal(t, LevelDanger, assessment.Level)
	assert.Equal(t, "danger", assessment.LevelName)
	assert.Equal(t, "#f97316", assessment.Color)
	assert.Equal(t, "🔶", assessment.Emoji)
	assert.NotEmpty(t, assessment.Message)
	assert.Equal(t, Consequences{}, assessment.Consequences)
}

func TestClassifyUsesTierMessage(t *testing.T) {
	source := &fakeSource{records: map[string]*ConsequenceData{
		"heating|AT": {
			DeathRisk:    true,
			DamageMinEUR: 5000,
			DamageMaxEUR: 50000,
			DangerText:   "Gefahr durch CO-Austritt",
			CriticalText: "Akute Lebensgefahr",
		},
	}}

	assessment, err := Classify(TypeHeating, 45, "AT", source)
	require.NoError(t, err)
	assert.Equal(t, LevelDanger, assessment.Level)
	assert.Equal(t, "Gefahr durch CO-Austritt", assessment.Message)
	assert.True(t, assessment.Consequences.DeathRisk)
	assert.Equal(t, 5000, assessment.Consequences.DamageMinEUR)

	assessment, err = Classify(TypeHeating, 95, "AT", source)
	require.NoError(t, err)
	assert.Equal(t, LevelCritical, assessment.Level)
	assert.Equal(t, "Akute Lebensgefahr", assessment.Message)
}

func TestClassifyJurisdictionFallback(t *testing.T) {
	source := &fakeSource{records: map[string]*ConsequenceData{
		"heating|": {DangerText: "Fallback-Warnung"},
	}}

	// No AT record, so the applies-everywhere record is used
	assessment, err := Classify(TypeHeating, 45, "AT", source)
	require.NoError(t, err)
	assert.Equal(t, "Fallback-Warnung", assessment.Message)
}

func TestClassifyMissingRecordKeepsDefaultMessage(t *testing.T) {
	source := &fakeSource{records: map[string]*ConsequenceData{}}

	assessment, err := Classify(TypeChimney, 45, "AT", source)
	require.NoError(t, err)
	assert.Equal(t, LevelDanger, assessment.Level)
	assert.Equal(t, LevelDanger.DefaultMessage(), assessment.Message)
}

func TestClassifySourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection lost")}

	_, err := Classify(TypeHeating, 45, "AT", source)
	assert.Error(t, err)
}

func TestClassifyEmptyMessageForSafe(t *testing.T) {
	source := &fakeSource{records: map[string]*ConsequenceData{
		"heating|AT": {WarningText: "bald fällig"},
	}}

	assessment, err := Classify(TypeHeating, -10, "AT", source)
	require.NoError(t, err)
	assert.Equal(t, LevelSafe, assessment.Level)
	// Safe has no tier text, so the default message stays
	assert.Equal(t, LevelSafe.DefaultMessage(), assessment.Message)
}
