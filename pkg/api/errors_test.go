package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairlens/fairlens/pkg/services"
	"github.com/fairlens/fairlens/pkg/state"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", services.NewValidationError("gitEmail", "cannot be empty"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already running", state.ErrAlreadyRunning, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}
