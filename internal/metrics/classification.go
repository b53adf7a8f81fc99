package metrics

// Classification computes accuracy, precision, recall and F1 for
// predicted vs true labels. Binary problems (exactly two classes in
// yTrue) use the positive class 1; multi-class problems report macro
// averages.
func Classification(yTrue, yPred []float64) (map[string]float64, error) {
	if err := checkPair(yTrue, yPred); err != nil {
		return nil, err
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(yTrue))

	classes := uniqueValues(yTrue)

	var precision, recall float64
	if len(classes) == 2 {
		precision, recall = classScores(yTrue, yPred, 1)
	} else {
		for _, cls := range classes {
			p, r := classScores(yTrue, yPred, cls)
			precision += p
			recall += r
		}
		precision /= float64(len(classes))
		recall /= float64(len(classes))
	}

	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return map[string]float64{
		"accuracy":  accuracy,
		"precision": precision,
		"recall":    recall,
		"f1":        f1,
	}, nil
}

// classScores returns one-vs-rest precision and recall for cls.
func classScores(yTrue, yPred []float64, cls float64) (precision, recall float64) {
	var tp, fp, fn float64
	for i := range yTrue {
		switch {
		case yTrue[i] == cls && yPred[i] == cls:
			tp++
		case yTrue[i] != cls && yPred[i] == cls:
			fp++
		case yTrue[i] == cls && yPred[i] != cls:
			fn++
		}
	}
	if tp+fp > 0 {
		precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		recall = tp / (tp + fn)
	}
	return precision, recall
}

func uniqueValues(values []float64) []float64 {
	seen := make(map[float64]struct{})
	var out []float64
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
