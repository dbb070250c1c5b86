package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideTransitionEscalation(t *testing.T) {
	tests := []struct {
		previous Level
		next     Level
		wantType string
	}{
		{LevelSafe, LevelWarning, "info"},
		{LevelSafe, LevelCritical, "critical"},
		{LevelWarning, LevelDanger, "warning"},
		{LevelDanger, LevelCritical, "critical"},
		{LevelCritical, LevelLegal, "critical"},
	}

	for _, tt := range tests {
		intent := DecideTransition(tt.previous, tt.next, Prefs{})
		require.NotNil(t, intent, "%s -> %s", tt.previous, tt.next)
		assert.Equal(t, KindEscalation, intent.Kind)
		assert.Equal(t, tt.next, intent.Level)
		assert.Equal(t, tt.wantType, intent.Type)
	}
}

func TestDecideTransitionNoChange(t *testing.T) {
	for _, level := range []Level{LevelSafe, LevelWarning, LevelDanger, LevelCritical, LevelLegal} {
		assert.Nil(t, DecideTransition(level, level, Prefs{NotifyResolved: true}))
	}
}

func TestDecideTransitionDeEscalationSilentByDefault(t *testing.T) {
	assert.Nil(t, DecideTransition(LevelCritical, LevelSafe, Prefs{}))
	assert.Nil(t, DecideTransition(LevelLegal, LevelWarning, Prefs{}))
	assert.Nil(t, DecideTransition(LevelDanger, LevelWarning, Prefs{NotifyResolved: true}))
}

func TestDecideTransitionResolvedOptIn(t *testing.T) {
	intent := DecideTransition(LevelCritical, LevelSafe, Prefs{NotifyResolved: true})
	require.NotNil(t, intent)
	assert.Equal(t, KindResolved, intent.Kind)
	assert.Equal(t, LevelSafe, intent.Level)
	assert.Equal(t, "success", intent.Type)
}
