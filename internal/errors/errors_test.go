package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	wrapped := Wrap(errB, "context")

	assert.True(t, IsAny(wrapped, errA, errB))
	assert.False(t, IsAny(wrapped, errA))
	assert.False(t, IsAny(nil, errA))
}

func TestWrapKeepsCause(t *testing.T) {
	base := New("boom")
	err := Wrapf(base, "loading %s", "listing")

	assert.True(t, Is(err, base))
	assert.Equal(t, "loading listing: boom", err.Error())
}
