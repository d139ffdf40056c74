package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchivePaths(t *testing.T) {
	assert.Equal(t, "quilts/sales.yaml", GetArchivePathToQuilt("sales"))
	assert.Equal(t, "axes/itm.yaml", GetArchivePathToAxis("itm"))
	assert.Equal(t, "commits/sales/abc123.yaml", GetArchivePathToCommit("sales", "abc123"))
	assert.Equal(t, "tags/sales/latest.yaml", GetArchivePathToTag("sales", DefaultTag))
	assert.Equal(t, "patches/sales/abc123/0.qlt", GetArchivePathToPatch("sales", "abc123", 0))
}

func TestNameFromArchivePath(t *testing.T) {
	assert.Equal(t, "sales", NameFromArchivePath(GetArchivePathToQuilt("sales")))
	assert.Equal(t, "latest", NameFromArchivePath(GetArchivePathToTag("sales", "latest")))
	assert.Equal(t, "abc123", NameFromArchivePath(GetArchivePathToCommit("sales", "abc123")))
}

func TestNewCommitIDIsSortable(t *testing.T) {
	a := NewCommitID()
	b := NewCommitID()
	require.NotEqual(t, a, b)
	assert.Len(t, a, 27) // ksuid string form
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("sales"))
	require.NoError(t, ValidateName("tot_sal_amt-v1.2"))
	for _, bad := range []string{"", "a/b", "a b", "a\x00b"} {
		assert.Errorf(t, ValidateName(bad), "name %q", bad)
	}
}

func TestQuiltDescriptorValidate(t *testing.T) {
	require.NoError(t, NewQuiltDescriptor("sales", []string{"itm", "lct", "day"}).Validate())
	assert.Error(t, NewQuiltDescriptor("sales", nil).Validate())
	assert.Error(t, NewQuiltDescriptor("sales", []string{"itm", "itm"}).Validate())
	assert.Error(t, NewQuiltDescriptor("sa/les", []string{"itm"}).Validate())
}
