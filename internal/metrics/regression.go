// Package metrics implements the evaluation metric calculators used
// to score experiment runs. Each calculator returns a flat metric map
// ready to attach to an experiment result.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Regression computes RMSE, MAE, R2 and MAPE for predicted vs true
// values. MAPE skips zero-valued truths to avoid division by zero.
func Regression(yTrue, yPred []float64) (map[string]float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return nil, err
	}

	n := float64(len(yTrue))
	meanTrue := stat.Mean(yTrue, nil)

	var sqErr, absErr, ssTot, mapeSum float64
	mapeCount := 0
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sqErr += diff * diff
		absErr += math.Abs(diff)

		dev := yTrue[i] - meanTrue
		ssTot += dev * dev

		if yTrue[i] != 0 {
			mapeSum += math.Abs(diff / yTrue[i])
			mapeCount++
		}
	}

	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - sqErr/ssTot
	}
	mape := 0.0
	if mapeCount > 0 {
		mape = mapeSum / float64(mapeCount) * 100
	}

	return map[string]float64{
		"rmse": math.Sqrt(sqErr / n),
		"mae":  absErr / n,
		"r2":   r2,
		"mape": mape,
	}, nil
}

func checkPair(yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return fmt.Errorf("empty input: no values to score")
	}
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("length mismatch: %d true values vs %d predictions", len(yTrue), len(yPred))
	}
	return nil
}
