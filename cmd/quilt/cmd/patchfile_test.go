package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/quiltlabs/quilt/pkg/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
axes:
  - name: itm
    labels: [1]
  - name: lct
    labels: [2, 3, 4]
  - name: day
    labels: [700]
content: [1, 2, 6]
`), 0o600))

	p, err := readPatchFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"itm", "lct", "day"}, p.AxisNames())
	assert.Equal(t, []int{1, 3, 1}, p.Shape())
	assert.Equal(t, []float64{1, 2, 6}, p.Content())
}

func TestReadPatchFileRejectsBadShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
axes:
  - name: itm
    labels: [1, 2]
content: [1, 2, 3]
`), 0o600))

	_, err := readPatchFile(path)
	require.Error(t, err)
}

func TestWritePatchFileRoundTrip(t *testing.T) {
	itm, err := tensor.NewSubset("itm", []int64{1, 2})
	require.NoError(t, err)
	p, err := tensor.NewPatch([]tensor.Axis{itm}, []float64{3.5, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writePatchFile(&buf, p))

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	back, err := readPatchFile(path)
	require.NoError(t, err)
	assert.Equal(t, p.Content(), back.Content())
	assert.Equal(t, p.AxisNames(), back.AxisNames())
}

func TestParseSelections(t *testing.T) {
	sel, err := parseSelections([]string{"lct=2,3,4", "day=all", "itm=1..5"})
	require.NoError(t, err)
	require.Len(t, sel, 3)
	assert.Equal(t, tensor.SelectLabels, sel["lct"].Kind)
	assert.Equal(t, []int64{2, 3, 4}, sel["lct"].Labels)
	assert.Equal(t, tensor.SelectAll, sel["day"].Kind)
	assert.Equal(t, tensor.SelectRange, sel["itm"].Kind)
	assert.Equal(t, int64(1), sel["itm"].Start)
	assert.Equal(t, int64(5), sel["itm"].End)
}

func TestParseSelectionsErrors(t *testing.T) {
	for _, spec := range []string{"noequals", "=2,3", "lct=2..x", "lct=a,b"} {
		_, err := parseSelections([]string{spec})
		assert.Error(t, err, spec)
	}
	_, err := parseSelections([]string{"lct=1", "lct=2"})
	assert.Error(t, err)
}

func TestParseSelectionsEmpty(t *testing.T) {
	sel, err := parseSelections(nil)
	require.NoError(t, err)
	assert.Nil(t, sel)
}
