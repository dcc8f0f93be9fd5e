// pkg/risk/classifier.go

package risk

import "ada/entities"

// Classify maps the model's risk string onto the plan risk level.
// Fail-closed: anything unrecognized needs confirmation. Only a literal
// "none" is ever eligible for unattended execution.
func Classify(s string) entities.RiskLevel {
	switch s {
	case "none":
		return entities.RiskNone
	case "sensitive":
		return entities.RiskSensitive
	default:
		return entities.RiskNeedsConfirm
	}
}

// Escalate raises level to at least needsConfirm. Used when the generator
// emits something the executor cannot fully trust, e.g. an unknown tool kind.
func Escalate(level entities.RiskLevel) entities.RiskLevel {
	if level == entities.RiskNone {
		return entities.RiskNeedsConfirm
	}
	return level
}

// AutoExecutable reports whether a plan at this level may run without the
// user confirming first.
func AutoExecutable(level entities.RiskLevel) bool {
	return level == entities.RiskNone
}
