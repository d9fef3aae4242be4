package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlpack/dataset"
	"github.com/katalvlaran/lvlpack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Reference verifies a well-formed dataset parses into the
// expected capacity and indexed item list.
func TestParse_Reference(t *testing.T) {
	input := "10 3\n60 5\n100 4\n120 6\n"

	ds, err := dataset.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 10, ds.Capacity)
	require.Len(t, ds.Items, 3)
	assert.Equal(t, knapsack.Item{Index: 2, Value: 100, Weight: 4}, ds.Items[1])
	assert.Equal(t, 280, ds.TotalValue())
}

// TestParse_BlankLinesIgnored verifies blank and whitespace-only lines are skipped.
func TestParse_BlankLinesIgnored(t *testing.T) {
	input := "\n  \n10 2\n\n60 5\n\n100 4\n\n"

	ds, err := dataset.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 10, ds.Capacity)
	assert.Len(t, ds.Items, 2)
}

// TestParse_EmptyInput verifies input without a header errors with ErrEmptyInput.
func TestParse_EmptyInput(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmptyInput)

	_, err = dataset.Parse(strings.NewReader("  \n\n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyInput)
}

// TestParse_MalformedHeader verifies bad headers are rejected with line context.
func TestParse_MalformedHeader(t *testing.T) {
	for _, input := range []string{"10\n", "10 3 7\n", "ten 3\n", "10 three\n"} {
		_, err := dataset.Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, dataset.ErrMalformedHeader, "input %q", input)
	}
}

// TestParse_MalformedRecord verifies bad item lines are rejected.
func TestParse_MalformedRecord(t *testing.T) {
	for _, input := range []string{
		"10 1\n60\n",
		"10 1\n60 5 9\n",
		"10 1\nsixty 5\n",
		"10 1\n60 5kg\n",
	} {
		_, err := dataset.Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, dataset.ErrMalformedRecord, "input %q", input)
	}
}

// TestParse_NegativeFields verifies negative numbers anywhere are rejected.
func TestParse_NegativeFields(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader("-10 1\n60 5\n"))
	assert.ErrorIs(t, err, dataset.ErrNegativeField, "negative capacity")

	_, err = dataset.Parse(strings.NewReader("10 1\n-60 5\n"))
	assert.ErrorIs(t, err, dataset.ErrNegativeField, "negative value")

	_, err = dataset.Parse(strings.NewReader("10 1\n60 -5\n"))
	assert.ErrorIs(t, err, dataset.ErrNegativeField, "negative weight")
}

// TestParse_CountMismatch verifies both too few and too many records error.
func TestParse_CountMismatch(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader("10 3\n60 5\n100 4\n"))
	assert.ErrorIs(t, err, dataset.ErrItemCount, "too few records")

	_, err = dataset.Parse(strings.NewReader("10 1\n60 5\n100 4\n"))
	assert.ErrorIs(t, err, dataset.ErrItemCount, "too many records")
}

// TestParse_HostileDeclaredCount verifies an absurdly large declared count
// is just a count mismatch, not an allocation-sized crash: the header value
// must never be trusted as a slice capacity.
func TestParse_HostileDeclaredCount(t *testing.T) {
	for _, input := range []string{
		"10 9223372036854775807\n60 5\n", // math.MaxInt64 items declared
		"10 2147483647\n60 5\n100 4\n",   // math.MaxInt32 items declared
	} {
		ds, err := dataset.Parse(strings.NewReader(input))
		assert.Nil(t, ds, "input %q", input)
		assert.ErrorIs(t, err, dataset.ErrItemCount, "input %q", input)
	}
}

// TestLoad_File verifies the file path flows end to end: load, solve,
// reconstruct — the loader feeding the core exactly as the CLI does.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knapsack_small.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 3\n60 5\n100 4\n120 6\n"), 0o644))

	ds, err := dataset.Load(path)
	require.NoError(t, err)

	k, err := knapsack.New(ds.Capacity, ds.Items, knapsack.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 220, k.MaxValue())

	picked, err := k.IncludedItems()
	require.NoError(t, err)
	assert.Len(t, picked, 2)
}

// TestLoad_MissingFile verifies open errors surface unchanged.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_WrapsPath verifies parse failures from Load mention the file path.
func TestLoad_WrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(path, []byte("bad header\n"), 0o644))

	_, err := dataset.Load(path)
	assert.ErrorIs(t, err, dataset.ErrMalformedHeader)
	assert.Contains(t, err.Error(), "broken.txt")
}
