package dataset

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds describe-style statistics for one numeric column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// column pairs a numeric column name with its values in record order.
type column struct {
	name   string
	values []float64
}

// numericColumns extracts the numeric columns in output order.
func (d *Dataset) numericColumns() []column {
	n := len(d.records)
	cols := []column{
		{name: "budget_thousands", values: make([]float64, n)},
		{name: "team_size", values: make([]float64, n)},
		{name: "planned_duration_months", values: make([]float64, n)},
		{name: "actual_duration_months", values: make([]float64, n)},
		{name: "scope_clarity_score", values: make([]float64, n)},
		{name: "stakeholder_engagement", values: make([]float64, n)},
		{name: "resource_availability", values: make([]float64, n)},
		{name: "technical_complexity", values: make([]float64, n)},
		{name: "team_experience_level", values: make([]float64, n)},
		{name: "change_requests", values: make([]float64, n)},
		{name: "external_dependencies", values: make([]float64, n)},
		{name: "budget_variance_percent", values: make([]float64, n)},
		{name: "quality_score", values: make([]float64, n)},
		{name: "success", values: make([]float64, n)},
	}
	for i, r := range d.records {
		cols[0].values[i] = r.BudgetThousands
		cols[1].values[i] = float64(r.TeamSize)
		cols[2].values[i] = float64(r.PlannedDurationMonths)
		cols[3].values[i] = float64(r.ActualDurationMonths)
		cols[4].values[i] = r.ScopeClarityScore
		cols[5].values[i] = r.StakeholderEngagement
		cols[6].values[i] = r.ResourceAvailability
		cols[7].values[i] = r.TechnicalComplexity
		cols[8].values[i] = r.TeamExperienceLevel
		cols[9].values[i] = float64(r.ChangeRequests)
		cols[10].values[i] = float64(r.ExternalDependencies)
		cols[11].values[i] = r.BudgetVariancePercent
		cols[12].values[i] = r.QualityScore
		cols[13].values[i] = float64(r.Success)
	}
	return cols
}

// Describe computes summary statistics for every numeric column. It returns
// nil for an empty dataset.
func (d *Dataset) Describe() []Summary {
	if len(d.records) == 0 {
		return nil
	}
	cols := d.numericColumns()
	summaries := make([]Summary, 0, len(cols))
	for _, c := range cols {
		summaries = append(summaries, Summarize(c.name, c.values))
	}
	return summaries
}

// Summarize computes count, mean, sample standard deviation, min, empirical
// quartiles and max for one column of values.
func Summarize(name string, values []float64) Summary {
	if len(values) == 0 {
		return Summary{Column: name}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Summary{
		Column: name,
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Min:    floats.Min(values),
		Q25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    floats.Max(values),
	}
}

// WriteDescribe renders the Describe output as an aligned text table.
func (d *Dataset) WriteDescribe(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax")
	for _, s := range d.Describe() {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}
	return tw.Flush()
}
