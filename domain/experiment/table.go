package experiment

import (
	"sort"
	"strconv"
)

// priorityColumns lead every results table, in this order; metric and
// metadata columns follow, each group sorted by name.
var priorityColumns = []string{
	"experiment_id",
	"seed_level",
	"master_seed",
	"seed",
	"sub_seed",
	"current_seed",
	"sampling_method",
	"ml_task",
	"timestamp",
}

// Table is a column-ordered tabular view of experiment results, ready
// for CSV/JSON/Excel export. Cell values are pre-formatted strings;
// a missing value is an empty cell.
type Table struct {
	Columns []string
	Rows    [][]string
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// BuildTable flattens results into a deterministic table layout.
func BuildTable(results []Result) *Table {
	metricCols := collectKeys(results, func(r Result) []string {
		keys := make([]string, 0, len(r.Metrics))
		for k := range r.Metrics {
			keys = append(keys, "metric_"+k)
		}
		return keys
	})
	metaCols := collectKeys(results, func(r Result) []string {
		keys := make([]string, 0, len(r.Metadata))
		for k := range r.Metadata {
			keys = append(keys, "meta_"+k)
		}
		return keys
	})

	columns := make([]string, 0, len(priorityColumns)+len(metricCols)+len(metaCols))
	columns = append(columns, priorityColumns...)
	columns = append(columns, metricCols...)
	columns = append(columns, metaCols...)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := make([]string, 0, len(columns))
		row = append(row,
			r.ExperimentID.String(),
			strconv.Itoa(r.SeedLevel),
			formatSeedAt(r, 0),
			formatSeedAt(r, 1),
			formatSeedAt(r, 2),
			strconv.FormatInt(r.CurrentSeed(), 10),
			r.Method.String(),
			string(r.Task),
			r.CreatedAt.String(),
		)
		for _, col := range metricCols {
			if v, ok := r.Metrics[col[len("metric_"):]]; ok {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		for _, col := range metaCols {
			row = append(row, r.Metadata[col[len("meta_"):]])
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}
}

func formatSeedAt(r Result, level int) string {
	v, ok := r.hierarchySeed(level)
	if !ok {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func collectKeys(results []Result, extract func(Result) []string) []string {
	set := make(map[string]struct{})
	for _, r := range results {
		for _, k := range extract(r) {
			set[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
