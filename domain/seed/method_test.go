package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{input: "simple", want: MethodSimple},
		{input: "stratified", want: MethodStratified},
		{input: "cluster", want: MethodCluster},
		{input: "systematic", want: MethodSystematic},
		{input: "random", wantErr: true},
		{input: "", wantErr: true},
		{input: "Simple", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSample_MatchesDirectCalls(t *testing.T) {
	r := testRange
	params := SampleParams{NStrata: 5, NClusters: 4}

	direct := map[Method][]int64{}
	var err error
	direct[MethodSimple], err = NewSampler(55).SimpleRandomSampling(12, r)
	require.NoError(t, err)
	direct[MethodStratified], err = NewSampler(55).StratifiedRandomSampling(12, r, 5)
	require.NoError(t, err)
	direct[MethodCluster], err = NewSampler(55).ClusterRandomSampling(12, r, 4)
	require.NoError(t, err)
	direct[MethodSystematic], err = NewSampler(55).SystematicRandomSampling(12, r)
	require.NoError(t, err)

	sampler := NewSampler(55)
	for method, want := range direct {
		got, err := sampler.Sample(method, 12, r, params)
		require.NoError(t, err)
		assert.Equal(t, want, got, "method %s", method)
	}
}

func TestSample_UnknownMethod(t *testing.T) {
	_, err := NewSampler(1).Sample(Method("bogus"), 5, testRange, SampleParams{})
	assert.Error(t, err)
}

func TestSample_Defaults(t *testing.T) {
	// Zero params fall back to 4 strata / 5 clusters.
	sampler := NewSampler(9)

	stratified, err := sampler.Sample(MethodStratified, 8, testRange, SampleParams{})
	require.NoError(t, err)
	want, err := NewSampler(9).StratifiedRandomSampling(8, testRange, 4)
	require.NoError(t, err)
	assert.Equal(t, want, stratified)

	cluster, err := sampler.Sample(MethodCluster, 10, testRange, SampleParams{})
	require.NoError(t, err)
	wantCluster, err := NewSampler(9).ClusterRandomSampling(10, testRange, 5)
	require.NoError(t, err)
	assert.Equal(t, wantCluster, cluster)
}
