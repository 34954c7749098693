package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation.Status())
	assert.Equal(t, http.StatusNotFound, NotFound.Status())
	assert.Equal(t, http.StatusUnauthorized, Auth.Status())
	assert.Equal(t, http.StatusInternalServerError, Internal.Status())
}

func TestStatusOfUnclassified(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, "boom", MessageOf(err))
}

func TestFromPreservesKindThroughWrapping(t *testing.T) {
	inner := New(NotFound, "Product Not Found")
	outer := fmt.Errorf("loading product: %w", inner)

	assert.Equal(t, http.StatusNotFound, StatusOf(outer))
	assert.Equal(t, "Product Not Found", MessageOf(outer))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Internal, "Failed to fetch products", cause)

	assert.Equal(t, "Failed to fetch products", MessageOf(err))
	assert.ErrorIs(t, err, cause)
}
