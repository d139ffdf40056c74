package core

import (
	"context"
	"testing"

	"github.com/quiltlabs/quilt/pkg/core/status"
	"github.com/quiltlabs/quilt/pkg/errors"
	"github.com/quiltlabs/quilt/pkg/model"
	"github.com/quiltlabs/quilt/pkg/tensor"
	tensorstatus "github.com/quiltlabs/quilt/pkg/tensor/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T, opts ...CatalogOption) *Catalog {
	t.Helper()
	return New(opts...)
}

// salesCatalog registers the itm/lct/day axes and a sales quilt over
// them, the starting point shared by most engine tests.
func salesCatalog(t *testing.T, opts ...CatalogOption) *Catalog {
	t.Helper()
	ctx := context.Background()
	c := New(opts...)
	for _, axis := range []struct {
		name   string
		labels []int64
	}{
		{"itm", []int64{1}},
		{"lct", []int64{2, 3, 4}},
		{"day", []int64{700}},
	} {
		_, err := c.CreateAxis(ctx, axis.name, axis.labels)
		require.NoError(t, err)
	}
	require.NoError(t, c.CreateQuilt(ctx, "sales", []string{"itm", "lct", "day"}))
	return c
}

func mustSubsetAxis(t *testing.T, name string, labels ...int64) tensor.Axis {
	t.Helper()
	axis, err := tensor.NewSubset(name, labels)
	require.NoError(t, err)
	return axis
}

func mustPatch(t *testing.T, content []float64, axes ...tensor.Axis) *tensor.Patch {
	t.Helper()
	p, err := tensor.NewPatch(axes, content)
	require.NoError(t, err)
	return p
}

func TestCreateAxisSortsLabels(t *testing.T) {
	ctx := context.Background()
	c := testCatalog(t)

	axis, err := c.CreateAxis(ctx, "day", []int64{710, 700, 705})
	require.NoError(t, err)
	assert.Equal(t, []int64{700, 705, 710}, axis.Labels)

	snap, err := c.AxisSnapshot(ctx, "day")
	require.NoError(t, err)
	assert.Equal(t, []int64{700, 705, 710}, snap.Labels)
}

func TestCreateAxisRejectsDuplicates(t *testing.T) {
	c := testCatalog(t)
	_, err := c.CreateAxis(context.Background(), "day", []int64{700, 700})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensorstatus.ErrDuplicateLabel))
}

func TestCreateAxisNameConflict(t *testing.T) {
	ctx := context.Background()
	c := testCatalog(t)

	_, err := c.CreateAxis(ctx, "day", []int64{700})
	require.NoError(t, err)
	_, err = c.CreateAxis(ctx, "day", []int64{800})
	assert.True(t, errors.Is(err, status.ErrNameConflict))
}

func TestCreateQuiltUnknownAxis(t *testing.T) {
	c := testCatalog(t)
	err := c.CreateQuilt(context.Background(), "sales", []string{"itm"})
	assert.True(t, errors.Is(err, status.ErrUnknownAxis))
}

func TestNamespaceSharedBetweenKinds(t *testing.T) {
	ctx := context.Background()
	c := testCatalog(t)

	_, err := c.CreateAxis(ctx, "itm", []int64{1})
	require.NoError(t, err)
	require.NoError(t, c.CreateQuilt(ctx, "sales", []string{"itm"}))

	err = c.CreateQuilt(ctx, "itm", []string{"itm"})
	assert.True(t, errors.Is(err, status.ErrNameConflict))
	_, err = c.CreateAxis(ctx, "sales", []int64{1})
	assert.True(t, errors.Is(err, status.ErrNameConflict))
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	c := salesCatalog(t)

	res := c.Lookup(ctx, "sales")
	require.Equal(t, LookupQuilt, res.Kind)
	assert.Equal(t, "sales", res.Quilt.Name())
	assert.Equal(t, []string{"itm", "lct", "day"}, res.Quilt.AxisNames())

	res = c.Lookup(ctx, "lct")
	require.Equal(t, LookupAxis, res.Kind)
	assert.Equal(t, []int64{2, 3, 4}, res.Axis.Labels)

	res = c.Lookup(ctx, "nothing")
	assert.Equal(t, LookupNotFound, res.Kind)
}

func TestListAxesAndQuilts(t *testing.T) {
	ctx := context.Background()
	c := salesCatalog(t)

	assert.Equal(t, []string{"day", "itm", "lct"}, c.ListAxes(ctx))

	quilts := c.ListQuilts(ctx)
	require.Len(t, quilts, 1)
	assert.Equal(t, "sales", quilts[0].Name)
}

func TestListTagsEmptyQuilt(t *testing.T) {
	c := salesCatalog(t)
	tags, err := c.ListTags(context.Background(), "sales")
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = c.ListTags(context.Background(), "nope")
	assert.True(t, errors.Is(err, status.ErrUnknownName))
}

func TestHistoryEmptyQuilt(t *testing.T) {
	c := salesCatalog(t)
	chain, err := c.History(context.Background(), "sales")
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestHistoryOrderedOldestFirst(t *testing.T) {
	ctx := context.Background()
	c := salesCatalog(t)

	first, err := c.Commit(ctx, "sales", []*tensor.Patch{salesPatch(t, []float64{1, 2, 6}, 2, 3, 4)}, Message("first"))
	require.NoError(t, err)
	second, err := c.Commit(ctx, "sales", []*tensor.Patch{salesPatch(t, []float64{9, 9, 9}, 2, 3, 4)}, Message("second"))
	require.NoError(t, err)

	chain, err := c.History(ctx, "sales", Tag(model.DefaultTag))
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, first, chain[0].ID)
	assert.Equal(t, second, chain[1].ID)
	assert.Equal(t, "first", chain[0].Message)
	assert.Empty(t, chain[0].Parent)
	assert.Equal(t, first, chain[1].Parent)
}
