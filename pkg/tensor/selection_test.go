package tensor

import (
	"testing"

	"github.com/quiltlabs/quilt/pkg/errors"
	"github.com/quiltlabs/quilt/pkg/tensor/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotAxis(t *testing.T) Axis {
	t.Helper()
	ax, err := NewAxis("day", []int64{100, 300, 700, 900})
	require.NoError(t, err)
	return ax
}

func TestMaterializeAll(t *testing.T) {
	got, err := All().Materialize(snapshotAxis(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 300, 700, 900}, got.Labels)

	// the zero value of Selection selects everything
	got, err = (Selection{}).Materialize(snapshotAxis(t))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Len())
}

func TestMaterializeLabels(t *testing.T) {
	got, err := Labels(300, 700).Materialize(snapshotAxis(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{300, 700}, got.Labels)

	// explicit selections may name labels the axis has never seen
	got, err = Labels(1, 2).Materialize(snapshotAxis(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got.Labels)

	_, err = Labels(700, 300).Materialize(snapshotAxis(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrUnsortedOrDuplicateLabels))
}

func TestMaterializeRange(t *testing.T) {
	got, err := Range(200, 700).Materialize(snapshotAxis(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{300, 700}, got.Labels)

	_, err = Range(700, 200).Materialize(snapshotAxis(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBadSelection))
}
