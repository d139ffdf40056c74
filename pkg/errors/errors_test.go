package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrap(t *testing.T) {
	sentinel := New("unknown tag")
	cause := fmt.Errorf(`tag "nightly" on quilt "sales"`)

	err := sentinel.Wrap(cause)
	require.Error(t, err)
	assert.True(t, Is(err, sentinel))
	assert.Equal(t, `unknown tag: tag "nightly" on quilt "sales"`, err.Error())

	// wrapping must not mutate the sentinel itself
	assert.NoError(t, sentinel.Unwrap())
	assert.Equal(t, "unknown tag", sentinel.Error())
}

func TestErrorWrapMessage(t *testing.T) {
	sentinel := New("shape mismatch")
	err := sentinel.WrapMessage("got %d values, expected %d", 5, 6)
	assert.True(t, Is(err, sentinel))
	assert.Contains(t, err.Error(), "got 5 values, expected 6")
}

func TestErrorAs(t *testing.T) {
	err := New("outer").Wrap(New("inner"))
	var target *Error
	require.True(t, As(err, &target))
	assert.Equal(t, "outer: inner", target.Error())
}
