// Package postgres persists flattened experiment results.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"seedhash/domain/core"
	"seedhash/domain/experiment"
	"seedhash/domain/seed"
)

// ResultRecord is the row shape of the experiment_results table.
// Metrics and metadata are stored as JSONB so the metric set can vary
// per experiment without schema churn.
type ResultRecord struct {
	ID             string         `db:"id"`
	ExperimentName string         `db:"experiment_name"`
	ExperimentID   string         `db:"experiment_id"`
	MasterSeed     int64          `db:"master_seed"`
	CurrentSeed    int64          `db:"current_seed"`
	SeedHierarchy  types.JSONText `db:"seed_hierarchy"`
	SeedLevel      int            `db:"seed_level"`
	SamplingMethod string         `db:"sampling_method"`
	MLTask         string         `db:"ml_task"`
	Metrics        types.JSONText `db:"metrics"`
	Metadata       types.JSONText `db:"metadata"`
	CreatedAt      time.Time      `db:"created_at"`
}

// ResultRepository stores and loads experiment results in PostgreSQL.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new PostgreSQL result repository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// SaveResult records a single experiment result under an experiment name.
func (r *ResultRepository) SaveResult(ctx context.Context, experimentName string, result experiment.Result) error {
	record, err := toRecord(experimentName, result)
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO experiment_results (
			id, experiment_name, experiment_id, master_seed, current_seed,
			seed_hierarchy, seed_level, sampling_method, ml_task,
			metrics, metadata, created_at
		) VALUES (
			:id, :experiment_name, :experiment_id, :master_seed, :current_seed,
			:seed_hierarchy, :seed_level, :sampling_method, :ml_task,
			:metrics, :metadata, :created_at
		)
	`, record)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", result.ExperimentID, err)
	}
	return nil
}

// ListResults retrieves every result recorded for an experiment, in
// insertion order.
func (r *ResultRepository) ListResults(ctx context.Context, experimentName string) ([]experiment.Result, error) {
	var records []ResultRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, experiment_name, experiment_id, master_seed, current_seed,
		       seed_hierarchy, seed_level, sampling_method, ml_task,
		       metrics, metadata, created_at
		FROM experiment_results
		WHERE experiment_name = $1
		ORDER BY created_at ASC, id ASC
	`, experimentName)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for %s: %w", experimentName, err)
	}

	results := make([]experiment.Result, 0, len(records))
	for _, record := range records {
		result, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// CountResults returns the number of stored results per experiment name.
func (r *ResultRepository) CountResults(ctx context.Context, experimentName string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM experiment_results WHERE experiment_name = $1
	`, experimentName)
	if err != nil {
		return 0, fmt.Errorf("failed to count results for %s: %w", experimentName, err)
	}
	return count, nil
}

func toRecord(experimentName string, result experiment.Result) (*ResultRecord, error) {
	hierarchy, err := json.Marshal(result.SeedHierarchy)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed hierarchy: %w", err)
	}
	metrics, err := json.Marshal(result.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metrics: %w", err)
	}
	metadata, err := json.Marshal(result.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	return &ResultRecord{
		ID:             core.NewID().String(),
		ExperimentName: experimentName,
		ExperimentID:   result.ExperimentID.String(),
		MasterSeed:     result.MasterSeed(),
		CurrentSeed:    result.CurrentSeed(),
		SeedHierarchy:  types.JSONText(hierarchy),
		SeedLevel:      result.SeedLevel,
		SamplingMethod: result.Method.String(),
		MLTask:         string(result.Task),
		Metrics:        types.JSONText(metrics),
		Metadata:       types.JSONText(metadata),
		CreatedAt:      result.CreatedAt.Time(),
	}, nil
}

func fromRecord(record ResultRecord) (experiment.Result, error) {
	var hierarchy []int64
	if err := json.Unmarshal(record.SeedHierarchy, &hierarchy); err != nil {
		return experiment.Result{}, fmt.Errorf("failed to decode seed hierarchy for %s: %w", record.ID, err)
	}
	metrics := map[string]float64{}
	if err := json.Unmarshal(record.Metrics, &metrics); err != nil {
		return experiment.Result{}, fmt.Errorf("failed to decode metrics for %s: %w", record.ID, err)
	}
	metadata := map[string]string{}
	if err := json.Unmarshal(record.Metadata, &metadata); err != nil {
		return experiment.Result{}, fmt.Errorf("failed to decode metadata for %s: %w", record.ID, err)
	}

	return experiment.Result{
		ExperimentID:  core.ExperimentID(record.ExperimentID),
		SeedHierarchy: hierarchy,
		SeedLevel:     record.SeedLevel,
		Method:        seed.Method(record.SamplingMethod),
		Task:          experiment.Task(record.MLTask),
		Metrics:       metrics,
		Metadata:      metadata,
		CreatedAt:     core.NewTimestamp(record.CreatedAt),
	}, nil
}
