package seed

import (
	"fmt"

	"seedhash/domain/core"
)

// Method selects one of the four sampling disciplines. A closed set:
// dispatch goes through Sampler.Sample rather than open-ended string
// matching.
type Method string

const (
	MethodSimple     Method = "simple"
	MethodStratified Method = "stratified"
	MethodCluster    Method = "cluster"
	MethodSystematic Method = "systematic"
)

// Methods lists every supported sampling method.
func Methods() []Method {
	return []Method{MethodSimple, MethodStratified, MethodCluster, MethodSystematic}
}

// ParseMethod converts a string tag into a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodSimple, MethodStratified, MethodCluster, MethodSystematic:
		return Method(s), nil
	default:
		return "", fmt.Errorf("unknown sampling method %q (valid: simple, stratified, cluster, systematic)", s)
	}
}

func (m Method) String() string {
	return string(m)
}

// SampleParams carries the method-specific knobs for Sample. Zero
// values fall back to the reference defaults.
type SampleParams struct {
	NStrata           int // stratified; default 4
	NClusters         int // cluster; default 5
	SamplesPerCluster int // cluster; 0 means divide evenly
}

const (
	defaultStrata   = 4
	defaultClusters = 5
)

// Sample dispatches to the sampling method named by m.
func (s *Sampler) Sample(m Method, nSamples int, r core.Range, params SampleParams) ([]int64, error) {
	switch m {
	case MethodSimple:
		return s.SimpleRandomSampling(nSamples, r)
	case MethodStratified:
		nStrata := params.NStrata
		if nStrata == 0 {
			nStrata = defaultStrata
		}
		return s.StratifiedRandomSampling(nSamples, r, nStrata)
	case MethodCluster:
		nClusters := params.NClusters
		if nClusters == 0 {
			nClusters = defaultClusters
		}
		if params.SamplesPerCluster > 0 {
			return s.ClusterRandomSampling(nSamples, r, nClusters, params.SamplesPerCluster)
		}
		return s.ClusterRandomSampling(nSamples, r, nClusters)
	case MethodSystematic:
		return s.SystematicRandomSampling(nSamples, r)
	default:
		return nil, fmt.Errorf("unknown sampling method %q", m)
	}
}
