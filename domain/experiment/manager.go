package experiment

import (
	"fmt"
	"sync"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"seedhash/domain/core"
	"seedhash/domain/seed"
)

// HierarchyConfig controls seed-tree generation. Zero values fall
// back to the reference defaults.
type HierarchyConfig struct {
	NSeeds    int         // children of the master seed; default 10
	NSubSeeds int         // children per seed below level 1; default 5
	MaxDepth  int         // 1 = seeds only, 2 = sub-seeds; default 2
	Method    seed.Method // default simple
	Range     core.Range  // default platform-safe range
	Params    seed.SampleParams
}

func (c HierarchyConfig) withDefaults() HierarchyConfig {
	if c.NSeeds == 0 {
		c.NSeeds = 10
	}
	if c.NSubSeeds == 0 {
		c.NSubSeeds = 5
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = 2
	}
	if c.Method == "" {
		c.Method = seed.MethodSimple
	}
	if c.Range == (core.Range{}) {
		c.Range = core.DefaultRange()
	}
	return c
}

type node struct {
	parent    int64
	hasParent bool
	level     int
}

// Manager builds hierarchical seed trees (master -> seeds ->
// sub-seeds) and tracks evaluation results against each seed.
type Manager struct {
	name       string
	masterSeed int64

	mu      sync.Mutex
	nodes   map[int64]node
	results []Result
}

// NewManager derives the master seed from the experiment name.
func NewManager(name string) (*Manager, error) {
	masterSeed, _, err := core.DeriveSeed(name)
	if err != nil {
		return nil, err
	}
	return NewManagerWithSeed(name, masterSeed), nil
}

// NewManagerWithSeed uses an explicit master seed.
func NewManagerWithSeed(name string, masterSeed int64) *Manager {
	return &Manager{
		name:       name,
		masterSeed: masterSeed,
		nodes:      map[int64]node{masterSeed: {level: 0}},
	}
}

// Name returns the experiment name.
func (m *Manager) Name() string { return m.name }

// MasterSeed returns the root seed of the hierarchy.
func (m *Manager) MasterSeed() int64 { return m.masterSeed }

// GenerateHierarchy expands the master seed level by level and
// returns the seeds at each depth (level 0 holds the master seed).
//
// Children of distinct parents are sampled concurrently; each
// sampler call owns its PRNG, and results are collected in parent
// order, so the hierarchy is deterministic for a given config.
func (m *Manager) GenerateHierarchy(cfg HierarchyConfig) (map[int][]int64, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Range.Validate(); err != nil {
		return nil, err
	}

	hierarchy := map[int][]int64{0: {m.masterSeed}}

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		parents := hierarchy[depth-1]
		nSamples := cfg.NSubSeeds
		if depth == 1 {
			nSamples = cfg.NSeeds
		}

		children := make([][]int64, len(parents))
		var g errgroup.Group
		for i, parent := range parents {
			i, parent := i, parent
			g.Go(func() error {
				sampler := seed.NewSampler(parent)
				vals, err := sampler.Sample(cfg.Method, nSamples, cfg.Range, cfg.Params)
				if err != nil {
					return err
				}
				children[i] = vals
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		level := make([]int64, 0, len(parents)*nSamples)
		m.mu.Lock()
		for i, parent := range parents {
			for _, child := range children[i] {
				m.nodes[child] = node{parent: parent, hasParent: true, level: depth}
				level = append(level, child)
			}
		}
		m.mu.Unlock()

		hierarchy[depth] = level
	}

	return hierarchy, nil
}

// AddResult records an evaluation outcome for a seed. The seed's
// ancestry is reconstructed from the generated hierarchy; seeds the
// manager has never produced are attached directly under the master.
func (m *Manager) AddResult(seedValue int64, task Task, method seed.Method, metrics map[string]float64, metadata map[string]string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	hierarchy := []int64{seedValue}
	current := seedValue
	for {
		n, ok := m.nodes[current]
		if !ok || !n.hasParent {
			break
		}
		hierarchy = append([]int64{n.parent}, hierarchy...)
		current = n.parent
	}
	if hierarchy[0] != m.masterSeed {
		hierarchy = append([]int64{m.masterSeed}, hierarchy...)
	}

	if metadata == nil {
		metadata = map[string]string{}
	}
	if metrics == nil {
		metrics = map[string]float64{}
	}

	result := Result{
		ExperimentID:  core.ExperimentID(fmt.Sprintf("%s_%s_seed%d", m.name, task, seedValue)),
		SeedHierarchy: hierarchy,
		SeedLevel:     len(hierarchy) - 1,
		Method:        method,
		Task:          task,
		Metrics:       metrics,
		Metadata:      metadata,
		CreatedAt:     core.Now(),
	}
	m.results = append(m.results, result)
	return result
}

// Results returns a copy of the recorded results in insertion order.
func (m *Manager) Results() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	return out
}

// ResultsTable flattens the recorded results into a tabular layout.
func (m *Manager) ResultsTable() *Table {
	return BuildTable(m.Results())
}

// MetricStats aggregates one metric across all results.
type MetricStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary describes the recorded experiments in aggregate.
type Summary struct {
	TotalExperiments int                    `json:"total_experiments"`
	Tasks            map[string]int         `json:"ml_tasks"`
	Methods          map[string]int         `json:"sampling_methods"`
	SeedLevels       map[int]int            `json:"seed_levels"`
	Metrics          map[string]MetricStats `json:"metric_statistics"`
}

// Summarize computes per-metric statistics and categorical counts
// over everything recorded so far.
func (m *Manager) Summarize() Summary {
	results := m.Results()

	summary := Summary{
		TotalExperiments: len(results),
		Tasks:            map[string]int{},
		Methods:          map[string]int{},
		SeedLevels:       map[int]int{},
		Metrics:          map[string]MetricStats{},
	}

	series := map[string][]float64{}
	for _, r := range results {
		summary.Tasks[string(r.Task)]++
		summary.Methods[r.Method.String()]++
		summary.SeedLevels[r.SeedLevel]++
		for name, value := range r.Metrics {
			series[name] = append(series[name], value)
		}
	}

	for name, values := range series {
		mean, _ := stats.Mean(values)
		std, _ := stats.StandardDeviationSample(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		summary.Metrics[name] = MetricStats{Mean: mean, StdDev: std, Min: min, Max: max}
	}

	return summary
}
