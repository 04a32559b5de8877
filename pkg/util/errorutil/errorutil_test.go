package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()
	require.Nil(t, ToDomainError(nil))
}

func TestToDomainError_PassesThroughDomainError(t *testing.T) {
	t.Parallel()

	original := NewForbidden("not the owner")
	mapped := ToDomainError(fmt.Errorf("handler: %w", original))
	require.Equal(t, "FORBIDDEN", mapped.Code)
	require.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	require.Equal(t, "NOT_FOUND", mapped.Code)
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_GenericBecomesInternal(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	mapped := ToDomainError(cause)
	require.Equal(t, "INTERNAL_ERROR", mapped.Code)
	require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	require.ErrorIs(t, mapped, cause)

	// the public message never carries the cause
	require.Equal(t, "internal server error", mapped.Message)
}

func TestDomainError_ErrorIncludesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &DomainError{Message: "internal server error", Err: cause}
	require.Contains(t, err.Error(), "boom")
	require.ErrorIs(t, err, cause)
}
