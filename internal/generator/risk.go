package generator

import "math"

// Risk-factor weights. Clarity, engagement, availability and experience
// contribute risk when low; complexity, change requests and external
// dependencies when high.
const (
	weightScopeClarity = 0.20
	weightEngagement   = 0.15
	weightResources    = 0.20
	weightComplexity   = 0.15
	weightExperience   = 0.15
	weightChanges      = 0.10
	weightExternal     = 0.05
)

// Logistic curve parameters mapping risk to success probability
const (
	riskMidpoint = 5.0
	riskScale    = 2.0
)

// RiskScore combines a record's risk factors into a single composite score.
func RiskScore(r Record) float64 {
	return weightScopeClarity*(10-r.ScopeClarityScore) +
		weightEngagement*(10-r.StakeholderEngagement) +
		weightResources*(10-r.ResourceAvailability) +
		weightComplexity*r.TechnicalComplexity +
		weightExperience*(10-r.TeamExperienceLevel) +
		weightChanges*(float64(r.ChangeRequests)/10) +
		weightExternal*(float64(r.ExternalDependencies)/10)
}

// SuccessProbability maps a risk score to a success probability through a
// falling logistic curve. A score at the midpoint gives even odds.
func SuccessProbability(risk float64) float64 {
	return 1 / (1 + math.Exp((risk-riskMidpoint)/riskScale))
}
