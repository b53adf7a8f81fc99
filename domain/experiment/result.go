// Package experiment tracks hierarchical seed experiments: a master
// seed fans out into seeds and sub-seeds via a sampling method, and
// evaluation metrics are recorded per leaf in a tabular structure.
package experiment

import (
	"fmt"

	"seedhash/domain/core"
	"seedhash/domain/seed"
)

// Task labels the kind of evaluation an experiment result came from.
type Task string

const (
	TaskRegression     Task = "regression"
	TaskClassification Task = "classification"
	TaskUnsupervised   Task = "unsupervised"
	TaskSupervised     Task = "supervised"
)

// ParseTask converts a string tag into a Task.
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case TaskRegression, TaskClassification, TaskUnsupervised, TaskSupervised:
		return Task(s), nil
	default:
		return "", fmt.Errorf("unknown task %q (valid: regression, classification, unsupervised, supervised)", s)
	}
}

// Result stores the outcome of a single experiment run against one
// seed in the hierarchy.
type Result struct {
	ExperimentID  core.ExperimentID  `json:"experiment_id" db:"experiment_id"`
	SeedHierarchy []int64            `json:"seed_hierarchy"`
	SeedLevel     int                `json:"seed_level" db:"seed_level"`
	Method        seed.Method        `json:"sampling_method" db:"sampling_method"`
	Task          Task               `json:"ml_task" db:"ml_task"`
	Metrics       map[string]float64 `json:"metrics"`
	Metadata      map[string]string  `json:"metadata"`
	CreatedAt     core.Timestamp     `json:"created_at" db:"created_at"`
}

// MasterSeed returns the root of the hierarchy this result belongs to.
func (r Result) MasterSeed() int64 {
	if len(r.SeedHierarchy) == 0 {
		return 0
	}
	return r.SeedHierarchy[0]
}

// CurrentSeed returns the leaf seed the experiment ran with.
func (r Result) CurrentSeed() int64 {
	if len(r.SeedHierarchy) == 0 {
		return 0
	}
	return r.SeedHierarchy[len(r.SeedHierarchy)-1]
}

// hierarchySeed returns the seed at the given depth, or false when
// the hierarchy is shallower than that.
func (r Result) hierarchySeed(level int) (int64, bool) {
	if level >= len(r.SeedHierarchy) {
		return 0, false
	}
	return r.SeedHierarchy[level], true
}
