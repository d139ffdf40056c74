package tensor

import (
	"bytes"
	"testing"

	"github.com/quiltlabs/quilt/pkg/errors"
	"github.com/quiltlabs/quilt/pkg/tensor/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codecFixture(t *testing.T) *Patch {
	t.Helper()
	p, err := NewPatch([]Axis{
		mustSubset(t, "itm", 1),
		mustSubset(t, "lct", 2, 3, 4),
		mustSubset(t, "day", 700),
	}, []float64{1, 2, 6})
	require.NoError(t, err)
	return p
}

func TestCodecRoundTrip(t *testing.T) {
	for _, compression := range []Compression{CompressionNone, CompressionLZ4} {
		original := codecFixture(t)
		var buf bytes.Buffer
		require.NoError(t, EncodePatch(&buf, original, compression))

		decoded, err := DecodePatch(&buf)
		require.NoError(t, err)
		assert.Equal(t, original.Axes(), decoded.Axes())
		assert.Equal(t, original.Content(), decoded.Content())
	}
}

func TestDecodeRejectsForeignBlob(t *testing.T) {
	_, err := DecodePatch(bytes.NewReader([]byte("not a patch blob")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBadEncoding))
}

func TestDecodeRejectsTruncatedBlob(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePatch(&buf, codecFixture(t), CompressionNone))
	blob := buf.Bytes()

	_, err := DecodePatch(bytes.NewReader(blob[:len(blob)-3]))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBadEncoding))
}
