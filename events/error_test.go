package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("without a cause", func(t *testing.T) {
		err := NewTimeoutError("GetEvent timed out")

		assert.Equal(t, "TIMEOUT: GetEvent timed out", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("with a cause", func(t *testing.T) {
		err := NewFailedToFetchError("Failed to fetch events", context.DeadlineExceeded)

		assert.Equal(t, "FAILED_TO_FETCH: Failed to fetch events. Cause: context deadline exceeded", err.Error())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("reason survives wrapping", func(t *testing.T) {
		var eventErr *Error
		wrapped := errors.Join(errors.New("loading page"), NewInvalidCursorError("bad cursor", nil))

		assert.ErrorAs(t, wrapped, &eventErr)
		assert.Equal(t, REASON_INVALID_CURSOR, eventErr.Reason)
	})
}
