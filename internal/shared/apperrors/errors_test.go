package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_ExtractsWrappedAppError(t *testing.T) {
	orig := NewForbidden("caller does not own this listing")
	wrapped := fmt.Errorf("resolve bid: %w", orig)

	got := From(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, KindForbidden, got.Kind)
	assert.Equal(t, http.StatusForbidden, got.StatusCode)
}

func TestFrom_UnclassifiedBecomesInternal(t *testing.T) {
	got := From(errors.New("connection reset"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	// the cause stays available for logging but the message is generic
	assert.Equal(t, "internal server error", got.Message)
	assert.NotNil(t, got.Cause)
}

func TestConflict_MapsToBadRequest(t *testing.T) {
	got := NewConflict("bid already processed")
	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, KindConflict, got.Kind)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("row scan failed")
	err := NewInternal("internal server error").WithCause(cause)
	assert.True(t, errors.Is(err, cause))
}
