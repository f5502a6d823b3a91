package pepper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kevinshome/pepper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pepper.Errorf(pepper.ENOTFOUND, "PEP %s not found...", "9999")

	assert.Equal(t, pepper.ENOTFOUND, pepper.ErrorCode(err))
	assert.Equal(t, "PEP 9999 not found...", pepper.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pepper.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pepper.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching index: %w", pepper.Errorf(pepper.EMALFORMED, "bad page"))

	assert.Equal(t, pepper.EMALFORMED, pepper.ErrorCode(err))
	assert.Equal(t, "bad page", pepper.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, pepper.EINTERNAL, pepper.ErrorCode(err))
	assert.Equal(t, "connection reset", pepper.ErrorMessage(err))
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	t.Run("classifies 404 as not found", func(t *testing.T) {
		t.Parallel()

		err := &pepper.StatusError{URL: "https://peps.python.org/pep-9999", StatusCode: 404}

		assert.Equal(t, pepper.ENOTFOUND, pepper.ErrorCode(err))
		assert.Equal(t, 404, pepper.ErrorStatus(err))
	})

	t.Run("classifies other statuses as remote errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch: %w", &pepper.StatusError{URL: "https://peps.python.org/pep-0008", StatusCode: 503})

		assert.Equal(t, pepper.EREMOTE, pepper.ErrorCode(err))
		assert.Equal(t, 503, pepper.ErrorStatus(err))
		assert.Equal(t, "Received error status code '503' from python.org", pepper.ErrorMessage(err))
	})

	t.Run("reports no status for other errors", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, pepper.ErrorStatus(errors.New("boom")))
	})
}
