package tensor

import (
	"testing"

	"github.com/quiltlabs/quilt/pkg/errors"
	"github.com/quiltlabs/quilt/pkg/tensor/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAxisSortsLabels(t *testing.T) {
	ax, err := NewAxis("itm", []int64{5, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5}, ax.Labels)
}

func TestNewAxisRejectsDuplicates(t *testing.T) {
	_, err := NewAxis("itm", []int64{1, 3, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrDuplicateLabel))
}

func TestNewSubsetRequiresStrictAscent(t *testing.T) {
	for _, labels := range [][]int64{
		{3, 1},
		{1, 1},
		{1, 2, 2},
	} {
		_, err := NewSubset("lct", labels)
		require.Errorf(t, err, "labels %v", labels)
		assert.True(t, errors.Is(err, status.ErrUnsortedOrDuplicateLabels))
	}

	sub, err := NewSubset("lct", []int64{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, sub.Labels)

	// empty subsets are legal: they select a zero-length dimension
	empty, err := NewSubset("lct", nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestUnionGrowsSorted(t *testing.T) {
	ax, err := NewAxis("lct", []int64{2, 3, 4})
	require.NoError(t, err)

	grown, grew := ax.Union([]int64{3, 4, 5})
	assert.True(t, grew)
	assert.Equal(t, []int64{2, 3, 4, 5}, grown.Labels)
	// the receiver is unchanged
	assert.Equal(t, []int64{2, 3, 4}, ax.Labels)

	same, grew := grown.Union([]int64{2, 5})
	assert.False(t, grew)
	assert.Equal(t, []int64{2, 3, 4, 5}, same.Labels)
}

func TestUnionFromEmpty(t *testing.T) {
	ax := Axis{Name: "day"}
	grown, grew := ax.Union([]int64{700, 300})
	assert.True(t, grew)
	assert.Equal(t, []int64{300, 700}, grown.Labels)
}

func TestIntersectSorted(t *testing.T) {
	ai, bi := IntersectSorted([]int64{1, 2, 4, 5}, []int64{2, 3, 4, 7})
	assert.Equal(t, []int{1, 2}, ai)
	assert.Equal(t, []int{0, 2}, bi)

	ai, bi = IntersectSorted([]int64{1, 2}, []int64{3, 4})
	assert.Empty(t, ai)
	assert.Empty(t, bi)

	ai, bi = IntersectSorted(nil, []int64{1})
	assert.Empty(t, ai)
	assert.Empty(t, bi)
}
