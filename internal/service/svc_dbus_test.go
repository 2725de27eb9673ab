//go:build unix && !darwin

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ReplaceReusesPreviousID(t *testing.T) {
	backend := &recordingNotifier{}
	s := newTestService("first\nsecond\nthird\n", backend, true)

	require.NoError(t, s.Start(context.Background()))

	sent := backend.sent()
	require.Len(t, sent, 3)
	assert.Zero(t, sent[0].ReplacesID)
	assert.Equal(t, uint32(1), sent[1].ReplacesID)
	assert.Equal(t, uint32(1), sent[2].ReplacesID)
}
