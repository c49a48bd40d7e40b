package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrors(t *testing.T) {
	var err error = NewNotFoundErrf("agent '%s' not found", "travel")
	var notFound *NotFoundErr
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "agent 'travel' not found", err.Error())

	err = NewValidationErrf("message must be at most %d characters", 10)
	var validation *ValidationErr
	assert.True(t, errors.As(err, &validation))
	assert.False(t, errors.As(err, &notFound))
	assert.Equal(t, "message must be at most 10 characters", err.Error())
}
