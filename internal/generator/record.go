package generator

import "strconv"

// Categorical labels, drawn uniformly per record
var (
	projectTypes = []string{
		"Software Development",
		"Infrastructure",
		"Business Process",
		"Product Launch",
		"System Integration",
	}

	industries = []string{
		"Technology",
		"Finance",
		"Healthcare",
		"Retail",
		"Manufacturing",
	}
)

// fieldNames is the canonical output column order.
var fieldNames = []string{
	"project_id",
	"project_type",
	"industry",
	"budget_thousands",
	"team_size",
	"planned_duration_months",
	"actual_duration_months",
	"scope_clarity_score",
	"stakeholder_engagement",
	"resource_availability",
	"technical_complexity",
	"team_experience_level",
	"change_requests",
	"external_dependencies",
	"budget_variance_percent",
	"quality_score",
	"success",
}

// FieldNames returns the output column names in order. It returns a copy so
// callers cannot disturb the canonical order.
func FieldNames() []string {
	return append([]string(nil), fieldNames...)
}

// Record is one simulated project. Values are stored already rounded to
// their output precision, so the risk score is derived from exactly the
// numbers that reach the output file.
type Record struct {
	ProjectID             string
	ProjectType           string
	Industry              string
	BudgetThousands       float64
	TeamSize              int
	PlannedDurationMonths int
	ActualDurationMonths  int
	ScopeClarityScore     float64
	StakeholderEngagement float64
	ResourceAvailability  float64
	TechnicalComplexity   float64
	TeamExperienceLevel   float64
	ChangeRequests        int
	ExternalDependencies  int
	BudgetVariancePercent float64
	QualityScore          float64
	Success               int
}

// CSVRow renders the record as output fields in FieldNames order. Floats use
// fixed decimal places so a given seed always produces identical bytes.
func (r Record) CSVRow() []string {
	return []string{
		r.ProjectID,
		r.ProjectType,
		r.Industry,
		strconv.FormatFloat(r.BudgetThousands, 'f', 2, 64),
		strconv.Itoa(r.TeamSize),
		strconv.Itoa(r.PlannedDurationMonths),
		strconv.Itoa(r.ActualDurationMonths),
		strconv.FormatFloat(r.ScopeClarityScore, 'f', 1, 64),
		strconv.FormatFloat(r.StakeholderEngagement, 'f', 1, 64),
		strconv.FormatFloat(r.ResourceAvailability, 'f', 1, 64),
		strconv.FormatFloat(r.TechnicalComplexity, 'f', 1, 64),
		strconv.FormatFloat(r.TeamExperienceLevel, 'f', 1, 64),
		strconv.Itoa(r.ChangeRequests),
		strconv.Itoa(r.ExternalDependencies),
		strconv.FormatFloat(r.BudgetVariancePercent, 'f', 1, 64),
		strconv.FormatFloat(r.QualityScore, 'f', 1, 64),
		strconv.Itoa(r.Success),
	}
}
