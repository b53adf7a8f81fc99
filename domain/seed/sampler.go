package seed

import (
	"math"
	"math/rand"

	"seedhash/domain/core"
)

// clusterRadiusDivisor sets the cluster neighborhood radius to
// span / (nClusters * clusterRadiusDivisor), i.e. a few percent of
// the total span for typical cluster counts.
const clusterRadiusDivisor = 10

// Sampler produces seed sets from a master seed using one of four
// sampling disciplines.
//
// Every method constructs its own PRNG from the master seed, so the
// output of a call depends only on that call's parameters - never on
// what was sampled before it. Instances are reusable and safe for
// concurrent use.
type Sampler struct {
	masterSeed int64
}

// NewSampler creates a sampler rooted at masterSeed.
func NewSampler(masterSeed int64) *Sampler {
	return &Sampler{masterSeed: masterSeed}
}

// MasterSeed returns the root seed of this sampler.
func (s *Sampler) MasterSeed() int64 {
	return s.masterSeed
}

func (s *Sampler) stream() *rand.Rand {
	return rand.New(rand.NewSource(s.masterSeed))
}

// SimpleRandomSampling draws nSamples independent uniform integers
// from the range, with replacement.
func (s *Sampler) SimpleRandomSampling(nSamples int, r core.Range) ([]int64, error) {
	if err := validateDraw(nSamples, r); err != nil {
		return nil, err
	}

	rng := s.stream()
	span := r.Span()

	seeds := make([]int64, nSamples)
	for i := range seeds {
		seeds[i] = r.Min + rng.Int63n(span)
	}
	return seeds, nil
}

// StratifiedRandomSampling partitions the range into nStrata
// contiguous strata of width span/nStrata and draws from each,
// guaranteeing coverage across the whole range.
//
// The final stratum absorbs the remainder width so the partition
// covers the range exactly. Samples are allocated nSamples/nStrata
// per stratum, with the remainder handed out one per stratum starting
// from the first. Output is grouped by stratum, in stratum order.
func (s *Sampler) StratifiedRandomSampling(nSamples int, r core.Range, nStrata int) ([]int64, error) {
	if err := validateDraw(nSamples, r); err != nil {
		return nil, err
	}
	if nStrata <= 0 {
		return nil, core.NewInvalidStrataCountError(nStrata, r.Span())
	}

	span := r.Span()
	width := span / int64(nStrata)
	if width == 0 {
		return nil, core.NewInvalidStrataCountError(nStrata, span)
	}

	rng := s.stream()
	perStratum := nSamples / nStrata
	remainder := nSamples % nStrata

	seeds := make([]int64, 0, nSamples)
	for idx := 0; idx < nStrata; idx++ {
		lo := r.Min + int64(idx)*width
		hi := lo + width - 1
		if idx == nStrata-1 {
			hi = r.Max
		}

		quota := perStratum
		if idx < remainder {
			quota++
		}

		for j := 0; j < quota; j++ {
			seeds = append(seeds, lo+rng.Int63n(hi-lo+1))
		}
	}
	return seeds, nil
}

// ClusterRandomSampling picks nClusters centers uniformly within the
// range, then draws members by jittering around each center within a
// neighborhood of radius span/(nClusters*10), clamped to the range.
//
// Centers are drawn with replacement; coincident centers are rare and
// acceptable. If samplesPerCluster is given it is the quota for every
// cluster but the last; in all cases the final cluster receives
// whatever remains, so the result length is always exactly nSamples.
// Output is grouped by cluster, in cluster-generation order.
func (s *Sampler) ClusterRandomSampling(nSamples int, r core.Range, nClusters int, samplesPerCluster ...int) ([]int64, error) {
	if err := validateDraw(nSamples, r); err != nil {
		return nil, err
	}
	if nClusters <= 0 {
		return nil, core.NewInvalidCountError(nClusters)
	}

	quota := nSamples / nClusters
	if len(samplesPerCluster) > 0 {
		quota = samplesPerCluster[0]
		if quota <= 0 {
			return nil, core.NewInvalidCountError(quota)
		}
	}

	counts := make([]int, nClusters)
	remaining := nSamples
	for i := 0; i < nClusters-1; i++ {
		c := quota
		if c > remaining {
			c = remaining
		}
		counts[i] = c
		remaining -= c
	}
	counts[nClusters-1] = remaining

	rng := s.stream()
	span := r.Span()
	radius := span / int64(nClusters*clusterRadiusDivisor)

	seeds := make([]int64, 0, nSamples)
	for _, count := range counts {
		center := r.Min + rng.Int63n(span)
		for j := 0; j < count; j++ {
			offset := int64(0)
			if radius > 0 {
				offset = rng.Int63n(2*radius+1) - radius
			}
			seeds = append(seeds, r.Clamp(saturatingAdd(center, offset)))
		}
	}
	return seeds, nil
}

// SystematicRandomSampling selects nSamples values at a fixed
// interval step = span/nSamples, starting from a single random offset
// in [0, step). Even spacing with one random degree of freedom.
func (s *Sampler) SystematicRandomSampling(nSamples int, r core.Range) ([]int64, error) {
	if err := validateDraw(nSamples, r); err != nil {
		return nil, err
	}

	span := r.Span()
	step := span / int64(nSamples)
	if step == 0 {
		return nil, core.NewInvalidSampleCountError(nSamples, span)
	}

	start := r.Min + s.stream().Int63n(step)

	seeds := make([]int64, nSamples)
	for i := range seeds {
		seeds[i] = start + int64(i)*step
	}
	return seeds, nil
}

func validateDraw(nSamples int, r core.Range) error {
	if nSamples <= 0 {
		return core.NewInvalidCountError(nSamples)
	}
	return r.Validate()
}

// saturatingAdd adds b to a, pinning at the int64 bounds instead of
// wrapping. Jittered cluster members near the extremes get clamped to
// the range afterwards either way.
func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}
