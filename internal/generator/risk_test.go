package generator

import (
	"math"
	"testing"
)

func TestRiskScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
		want float64
	}{
		{
			name: "ideal project",
			rec: Record{
				ScopeClarityScore:     10,
				StakeholderEngagement: 10,
				ResourceAvailability:  10,
				TechnicalComplexity:   1,
				TeamExperienceLevel:   10,
			},
			want: 0.15,
		},
		{
			name: "midline project",
			rec: Record{
				ScopeClarityScore:     5,
				StakeholderEngagement: 5,
				ResourceAvailability:  5,
				TechnicalComplexity:   5,
				TeamExperienceLevel:   5,
				ChangeRequests:        5,
				ExternalDependencies:  5,
			},
			want: 4.325,
		},
		{
			name: "troubled project",
			rec: Record{
				ScopeClarityScore:     0,
				StakeholderEngagement: 0,
				ResourceAvailability:  0,
				TechnicalComplexity:   10,
				TeamExperienceLevel:   0,
				ChangeRequests:        10,
				ExternalDependencies:  10,
			},
			want: 8.65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RiskScore(tt.rec)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RiskScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuccessProbability(t *testing.T) {
	t.Parallel()

	if got := SuccessProbability(5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("SuccessProbability(5) = %v, want 0.5", got)
	}

	// Falling curve: higher risk, lower probability.
	risks := []float64{0, 2.5, 5, 7.5, 10}
	for i := 1; i < len(risks); i++ {
		lo, hi := SuccessProbability(risks[i]), SuccessProbability(risks[i-1])
		if lo >= hi {
			t.Errorf("SuccessProbability(%v) = %v, want below SuccessProbability(%v) = %v",
				risks[i], lo, risks[i-1], hi)
		}
	}

	// Logistic symmetry around the midpoint.
	for _, d := range []float64{0.5, 1, 2, 4} {
		sum := SuccessProbability(5-d) + SuccessProbability(5+d)
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("SuccessProbability(5-%v) + SuccessProbability(5+%v) = %v, want 1", d, d, sum)
		}
	}

	for _, risk := range risks {
		p := SuccessProbability(risk)
		if p <= 0 || p >= 1 {
			t.Errorf("SuccessProbability(%v) = %v, want in (0, 1)", risk, p)
		}
	}
}
