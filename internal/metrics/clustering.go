package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clustering computes a simplified silhouette score over a feature
// matrix and its cluster assignment. Degenerate clusterings (fewer
// than two clusters, or one cluster per point) score zero.
func Clustering(x [][]float64, labels []int) (map[string]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("empty input: no points to score")
	}
	if len(x) != len(labels) {
		return nil, fmt.Errorf("length mismatch: %d points vs %d labels", len(x), len(labels))
	}

	clusters := make(map[int][]int)
	for i, label := range labels {
		clusters[label] = append(clusters[label], i)
	}

	nClusters := len(clusters)
	result := map[string]float64{
		"silhouette": 0,
		"n_clusters": float64(nClusters),
		"n_samples":  float64(len(x)),
	}
	if nClusters < 2 || nClusters >= len(x) {
		return result, nil
	}

	var total float64
	for i := range x {
		a := meanDistance(x, i, clusters[labels[i]])

		b := math.Inf(1)
		for label, members := range clusters {
			if label == labels[i] {
				continue
			}
			if d := meanDistance(x, i, members); d < b {
				b = d
			}
		}

		if peak := math.Max(a, b); peak > 0 {
			total += (b - a) / peak
		}
	}

	result["silhouette"] = total / float64(len(x))
	return result, nil
}

// meanDistance averages the euclidean distance from point i to the
// other members of the index set.
func meanDistance(x [][]float64, i int, members []int) float64 {
	var sum float64
	count := 0
	for _, j := range members {
		if j == i {
			continue
		}
		sum += floats.Distance(x[i], x[j], 2)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
