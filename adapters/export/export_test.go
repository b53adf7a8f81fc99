package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedhash/domain/experiment"
)

func sampleTable() *experiment.Table {
	return &experiment.Table{
		Columns: []string{"experiment_id", "current_seed", "metric_rmse"},
		Rows: [][]string{
			{"exp_a", "42", "0.5"},
			{"exp_b", "77", ""},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"experiment_id", "current_seed", "metric_rmse"}, records[0])
	assert.Equal(t, []string{"exp_a", "42", "0.5"}, records[1])
	assert.Equal(t, []string{"exp_b", "77", ""}, records[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTable()))

	var records []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))

	require.Len(t, records, 2)
	assert.Equal(t, "exp_a", records[0]["experiment_id"])
	assert.Equal(t, "0.5", records[0]["metric_rmse"])
	// Empty cells are omitted from records.
	_, present := records[1]["metric_rmse"]
	assert.False(t, present)
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"csv", "json", "excel"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}
	_, err := ParseFormat("parquet")
	assert.Error(t, err)
}

func TestWriteFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	require.NoError(t, WriteFile(sampleTable(), path, FormatCSV))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "experiment_id,current_seed,metric_rmse")
}

func TestWriteFile_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, WriteFile(sampleTable(), path, FormatExcel))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.bin")
	err := WriteFile(sampleTable(), path, Format("parquet"))
	assert.Error(t, err)
}
