package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedhash/domain/core"
	"seedhash/domain/seed"
)

func TestBuildTable_ColumnOrdering(t *testing.T) {
	results := []Result{
		{
			ExperimentID:  core.ExperimentID("exp_regression_seed7"),
			SeedHierarchy: []int64{42, 7},
			SeedLevel:     1,
			Method:        seed.MethodSimple,
			Task:          TaskRegression,
			Metrics:       map[string]float64{"rmse": 0.25, "mae": 0.1},
			Metadata:      map[string]string{"model": "ridge"},
			CreatedAt:     core.Now(),
		},
		{
			ExperimentID:  core.ExperimentID("exp_classification_seed9"),
			SeedHierarchy: []int64{42, 3, 9},
			SeedLevel:     2,
			Method:        seed.MethodCluster,
			Task:          TaskClassification,
			Metrics:       map[string]float64{"accuracy": 0.9},
			Metadata:      map[string]string{},
			CreatedAt:     core.Now(),
		},
	}

	table := BuildTable(results)

	// Priority columns first, then metric_* sorted, then meta_*.
	assert.Equal(t, []string{
		"experiment_id", "seed_level", "master_seed", "seed", "sub_seed",
		"current_seed", "sampling_method", "ml_task", "timestamp",
		"metric_accuracy", "metric_mae", "metric_rmse",
		"meta_model",
	}, table.Columns)

	require.Len(t, table.Rows, 2)

	first := table.Rows[0]
	assert.Equal(t, "exp_regression_seed7", first[0])
	assert.Equal(t, "1", first[1])
	assert.Equal(t, "42", first[2])
	assert.Equal(t, "7", first[3])
	assert.Equal(t, "", first[4]) // no sub-seed at depth 1
	assert.Equal(t, "7", first[5])
	assert.Equal(t, "simple", first[6])
	assert.Equal(t, "regression", first[7])
	assert.Equal(t, "", first[9]) // accuracy missing on regression row
	assert.Equal(t, "0.1", first[10])
	assert.Equal(t, "0.25", first[11])
	assert.Equal(t, "ridge", first[12])

	second := table.Rows[1]
	assert.Equal(t, "9", second[4])
	assert.Equal(t, "0.9", second[9])
	assert.Equal(t, "", second[12])
}

func TestBuildTable_Empty(t *testing.T) {
	table := BuildTable(nil)
	assert.True(t, table.IsEmpty())
	assert.Len(t, table.Columns, 9)
}
