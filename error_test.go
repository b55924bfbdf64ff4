package wikiintro_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wikiintro"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wikiintro.Errorf(wikiintro.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, wikiintro.ENOTFOUND, wikiintro.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", wikiintro.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikiintro.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikiintro.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("open page: %w", wikiintro.Errorf(wikiintro.EUNAVAILABLE, "connection refused"))

	assert.Equal(t, wikiintro.EUNAVAILABLE, wikiintro.ErrorCode(err))
	assert.Equal(t, "connection refused", wikiintro.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, wikiintro.EINTERNAL, wikiintro.ErrorCode(err))
	assert.Equal(t, "boom", wikiintro.ErrorMessage(err))
}
