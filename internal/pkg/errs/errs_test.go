//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"booking-gateway/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errs.New("sentinel")

func TestMark(t *testing.T) {
	cause := errors.New("driver failure")
	marked := errs.Mark(cause, errSentinel)

	assert.True(t, errs.Is(marked, errSentinel))
	assert.True(t, errs.Is(marked, cause))
	assert.True(t, errs.IsAny(marked, errors.New("other"), errSentinel))
	assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))

	wrapped := errs.Wrap(errSentinel, "loading flow")
	assert.EqualError(t, wrapped, "loading flow: sentinel")
	assert.True(t, errs.Is(wrapped, errSentinel))
	assert.NotEmpty(t, errs.ExtractStackLines(wrapped, 3))
	assert.LessOrEqual(t, len(errs.ExtractStackLines(wrapped, 3)), 3)
}
