package dataset_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optigon/stoneflow/dataset"
	"github.com/optigon/stoneflow/transport"
)

func sampleInstance() *dataset.Instance {
	return &dataset.Instance{
		Costs: [][]float64{
			{4, 6, 8, 8},
			{6, 8, 6, 7},
			{5, 7, 6, 8},
		},
		Supply: []float64{40, 60, 50},
		Demand: []float64{20, 30, 50, 50},
		Meta: &dataset.Metadata{
			Dimensions:  "3x4",
			TotalSupply: 150,
			TotalDemand: 150,
			Family:      "reference",
		},
	}
}

// TestRoundTrip_AllFormats saves and reloads the sample instance through
// every supported extension and expects byte-equal content back.
func TestRoundTrip_AllFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"inst.json", "inst.yaml", "inst.yml", "inst.msgpack"} {
		path := filepath.Join(dir, name)
		in := sampleInstance()

		require.NoError(t, dataset.Save(path, in), name)
		out, err := dataset.Load(path)
		require.NoError(t, err, name)

		assert.Equal(t, in.Costs, out.Costs, name)
		assert.Equal(t, in.Supply, out.Supply, name)
		assert.Equal(t, in.Demand, out.Demand, name)
		require.NotNil(t, out.Meta, name)
		assert.Equal(t, in.Meta.Family, out.Meta.Family, name)
	}
}

// TestDecode_CanonicalJSON parses the exact document shape the generators
// emit, metadata included.
func TestDecode_CanonicalJSON(t *testing.T) {
	doc := `{
	  "costs": [[1, 2], [3, 4]],
	  "supply": [5, 5],
	  "demand": [5, 5],
	  "metadata": {"dimensions": "2x2", "total_supply": 10, "total_demand": 10}
	}`
	in, err := dataset.Decode(bytes.NewBufferString(doc), dataset.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, in.Costs)
	assert.Equal(t, []float64{5, 5}, in.Supply)
	require.NotNil(t, in.Meta)
	assert.Equal(t, "2x2", in.Meta.Dimensions)

	p, err := in.Problem()
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
}

// TestFormatForPath maps extensions and rejects unknown ones.
func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]dataset.Format{
		"a.json":    dataset.FormatJSON,
		"b.YAML":    dataset.FormatYAML,
		"c.yml":     dataset.FormatYAML,
		"d.msgpack": dataset.FormatMsgpack,
		"e.mp":      dataset.FormatMsgpack,
	} {
		got, err := dataset.FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := dataset.FormatForPath("instance.csv")
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)
	err = dataset.Save("instance.csv", sampleInstance())
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)
}

// TestLoadProblem_ValidatesAtBoundary: parsing succeeds but the unbalanced
// totals must be rejected by the transport gate.
func TestLoadProblem_ValidatesAtBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	in := sampleInstance()
	in.Supply[0] += 10 // unbalance

	require.NoError(t, dataset.Save(path, in))
	_, err := dataset.LoadProblem(path)
	assert.ErrorIs(t, err, transport.ErrUnbalanced)
}

// TestEncode_NilInstance rejects nil input.
func TestEncode_NilInstance(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, dataset.Encode(&buf, dataset.FormatJSON, nil), dataset.ErrNilInstance)
}

// TestLoad_MissingFile surfaces the underlying I/O error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
