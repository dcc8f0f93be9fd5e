package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ada/entities"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, entities.RiskNone, Classify("none"))
	assert.Equal(t, entities.RiskSensitive, Classify("sensitive"))
	assert.Equal(t, entities.RiskNeedsConfirm, Classify("needs_confirm"))

	// fail-closed: anything unrecognized needs confirmation
	assert.Equal(t, entities.RiskNeedsConfirm, Classify(""))
	assert.Equal(t, entities.RiskNeedsConfirm, Classify("NONE"))
	assert.Equal(t, entities.RiskNeedsConfirm, Classify("low"))
}

func TestEscalate(t *testing.T) {
	assert.Equal(t, entities.RiskNeedsConfirm, Escalate(entities.RiskNone))
	assert.Equal(t, entities.RiskNeedsConfirm, Escalate(entities.RiskNeedsConfirm))
	assert.Equal(t, entities.RiskSensitive, Escalate(entities.RiskSensitive))
}

func TestAutoExecutable(t *testing.T) {
	assert.True(t, AutoExecutable(entities.RiskNone))
	assert.False(t, AutoExecutable(entities.RiskNeedsConfirm))
	assert.False(t, AutoExecutable(entities.RiskSensitive))
}
