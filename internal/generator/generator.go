package generator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws project records from a fixed set of parameterized
// distributions. Every distribution shares one seeded source, so a given
// seed and count always reproduce the same dataset byte for byte.
type Generator struct {
	// Progress, when set, is called after each record with the number of
	// records completed so far and the total requested.
	Progress func(done, total int)

	rng *rand.Rand

	budget     distuv.LogNormal
	teamSize   distuv.LogNormal
	duration   distuv.Gamma
	scope      distuv.Beta
	engagement distuv.Beta
	resources  distuv.Beta
	complexity distuv.Uniform
	experience distuv.Beta
	changes    distuv.Poisson
	external   distuv.Poisson

	// Outcome distributions, selected per record by the realized success bit
	successSlip     distuv.Normal
	failureSlip     distuv.Normal
	successVariance distuv.Normal
	failureVariance distuv.Normal
	successQuality  distuv.Beta
	failureQuality  distuv.Beta
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed)
	return &Generator{
		rng:      rand.New(src),
		budget:   distuv.LogNormal{Mu: 5, Sigma: 1, Src: src},
		teamSize: distuv.LogNormal{Mu: 2, Sigma: 0.8, Src: src},
		// Gamma's Beta is a rate: shape 3 with a scale of 2 months.
		duration:   distuv.Gamma{Alpha: 3, Beta: 0.5, Src: src},
		scope:      distuv.Beta{Alpha: 5, Beta: 2, Src: src},
		engagement: distuv.Beta{Alpha: 4, Beta: 2, Src: src},
		resources:  distuv.Beta{Alpha: 5, Beta: 3, Src: src},
		complexity: distuv.Uniform{Min: 1, Max: 10, Src: src},
		experience: distuv.Beta{Alpha: 5, Beta: 2, Src: src},
		changes:    distuv.Poisson{Lambda: 3, Src: src},
		external:   distuv.Poisson{Lambda: 2, Src: src},

		successSlip:     distuv.Normal{Mu: 0, Sigma: 2, Src: src},
		failureSlip:     distuv.Normal{Mu: 5, Sigma: 3, Src: src},
		successVariance: distuv.Normal{Mu: 0, Sigma: 15, Src: src},
		failureVariance: distuv.Normal{Mu: 25, Sigma: 15, Src: src},
		successQuality:  distuv.Beta{Alpha: 8, Beta: 2, Src: src},
		failureQuality:  distuv.Beta{Alpha: 3, Beta: 5, Src: src},
	}
}

// Generate draws n project records in order. n must be at least 1.
func (g *Generator) Generate(n int) ([]Record, error) {
	if n < 1 {
		return nil, fmt.Errorf("generate %d projects: %w", n, ErrInvalidProjectCount)
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.next(i+1))
		if g.Progress != nil {
			g.Progress(i+1, n)
		}
	}
	return records, nil
}

// next draws a single record. The draw order is fixed; reordering it would
// change the dataset a given seed produces.
func (g *Generator) next(seq int) Record {
	r := Record{
		ProjectID:   fmt.Sprintf("PRJ_%04d", seq),
		ProjectType: projectTypes[g.rng.IntN(len(projectTypes))],
		Industry:    industries[g.rng.IntN(len(industries))],
	}

	r.BudgetThousands = clamp(round2(g.budget.Rand()*10), 50, 5000)
	r.TeamSize = clampInt(int(g.teamSize.Rand()), 3, 50)
	r.PlannedDurationMonths = clampInt(int(g.duration.Rand()), 1, 24)

	r.ScopeClarityScore = round1(g.scope.Rand() * 10)
	r.StakeholderEngagement = round1(g.engagement.Rand() * 10)
	r.ResourceAvailability = round1(g.resources.Rand() * 10)
	r.TechnicalComplexity = round1(g.complexity.Rand())
	r.TeamExperienceLevel = round1(g.experience.Rand() * 10)
	r.ChangeRequests = int(g.changes.Rand())
	r.ExternalDependencies = int(g.external.Rand())

	// Outcome first, then the outcome-dependent fields.
	if g.rng.Float64() < SuccessProbability(RiskScore(r)) {
		r.Success = 1
		r.ActualDurationMonths = max(1, r.PlannedDurationMonths+int(math.Round(g.successSlip.Rand())))
		r.BudgetVariancePercent = round1(g.successVariance.Rand())
		r.QualityScore = round1(g.successQuality.Rand() * 100)
	} else {
		r.Success = 0
		r.ActualDurationMonths = max(1, r.PlannedDurationMonths+int(math.Round(g.failureSlip.Rand())))
		r.BudgetVariancePercent = round1(g.failureVariance.Rand())
		r.QualityScore = round1(g.failureQuality.Rand() * 100)
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
