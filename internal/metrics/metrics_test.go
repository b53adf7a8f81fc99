package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegression_PerfectPrediction(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4, 5}
	m, err := Regression(yTrue, yTrue)
	require.NoError(t, err)

	assert.InDelta(t, 0, m["rmse"], 1e-12)
	assert.InDelta(t, 0, m["mae"], 1e-12)
	assert.InDelta(t, 1, m["r2"], 1e-12)
	assert.InDelta(t, 0, m["mape"], 1e-12)
}

func TestRegression_KnownValues(t *testing.T) {
	yTrue := []float64{2, 4, 6, 8}
	yPred := []float64{3, 3, 7, 7}

	m, err := Regression(yTrue, yPred)
	require.NoError(t, err)

	// Every residual is +-1: RMSE = MAE = 1.
	assert.InDelta(t, 1, m["rmse"], 1e-12)
	assert.InDelta(t, 1, m["mae"], 1e-12)
	// ss_res = 4, ss_tot = 20.
	assert.InDelta(t, 0.8, m["r2"], 1e-12)
	// MAPE = mean(1/2, 1/4, 1/6, 1/8) * 100.
	assert.InDelta(t, 26.041666666666668, m["mape"], 1e-9)
}

func TestRegression_MAPESkipsZeros(t *testing.T) {
	m, err := Regression([]float64{0, 10}, []float64{1, 9})
	require.NoError(t, err)
	assert.InDelta(t, 10, m["mape"], 1e-12)
}

func TestRegression_Errors(t *testing.T) {
	_, err := Regression(nil, nil)
	assert.Error(t, err)

	_, err = Regression([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestClassification_Binary(t *testing.T) {
	yTrue := []float64{1, 1, 1, 0, 0, 0}
	yPred := []float64{1, 1, 0, 1, 0, 0}

	m, err := Classification(yTrue, yPred)
	require.NoError(t, err)

	// tp=2 fp=1 fn=1.
	assert.InDelta(t, 4.0/6.0, m["accuracy"], 1e-12)
	assert.InDelta(t, 2.0/3.0, m["precision"], 1e-12)
	assert.InDelta(t, 2.0/3.0, m["recall"], 1e-12)
	assert.InDelta(t, 2.0/3.0, m["f1"], 1e-12)
}

func TestClassification_MultiClassMacro(t *testing.T) {
	yTrue := []float64{0, 1, 2, 0, 1, 2}
	yPred := []float64{0, 1, 2, 0, 1, 2}

	m, err := Classification(yTrue, yPred)
	require.NoError(t, err)

	assert.InDelta(t, 1, m["accuracy"], 1e-12)
	assert.InDelta(t, 1, m["precision"], 1e-12)
	assert.InDelta(t, 1, m["recall"], 1e-12)
	assert.InDelta(t, 1, m["f1"], 1e-12)
}

func TestClustering_SeparatedClusters(t *testing.T) {
	x := [][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	}
	labels := []int{0, 0, 0, 1, 1, 1}

	m, err := Clustering(x, labels)
	require.NoError(t, err)

	assert.Equal(t, 2.0, m["n_clusters"])
	assert.Equal(t, 6.0, m["n_samples"])
	assert.Greater(t, m["silhouette"], 0.8)
	assert.LessOrEqual(t, m["silhouette"], 1.0)
}

func TestClustering_Degenerate(t *testing.T) {
	x := [][]float64{{0, 0}, {1, 1}, {2, 2}}

	single, err := Clustering(x, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, single["silhouette"])

	perPoint, err := Clustering(x, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, perPoint["silhouette"])
}

func TestClustering_Errors(t *testing.T) {
	_, err := Clustering(nil, nil)
	assert.Error(t, err)

	_, err = Clustering([][]float64{{1}}, []int{0, 1})
	assert.Error(t, err)
}
