//go:build !unix || darwin

package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServerInformation_Unsupported(t *testing.T) {
	_, err := GetServerInformation()
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	_, err = GetCapabilities()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestUrgencySetter_Absent(t *testing.T) {
	_, ok := any(New()).(UrgencySetter)
	assert.False(t, ok)
}
