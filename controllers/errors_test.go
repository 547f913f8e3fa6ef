package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusForError(errors.New("booking_not_found")))
	assert.Equal(t, http.StatusConflict, statusForError(errors.New("order_not_open")))
	assert.Equal(t, http.StatusBadRequest, statusForError(errors.New("invalid_date_format")))
	assert.Equal(t, http.StatusBadRequest, statusForError(errors.New("advance_below_minimum")))

	// wrapped or unknown errors are internal failures
	assert.Equal(t, http.StatusInternalServerError, statusForError(fmt.Errorf("db error: %w", errors.New("gone"))))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("something else")))
}
