//go:build !unix

package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_ReturnsOnlyError(t *testing.T) {
	backend := &fakeNotifier{}
	n := New(WithNotifier(backend)).SetSummary("Build finished").SetBody("Target X succeeded")

	require.NoError(t, n.Show())
	require.Len(t, backend.messages, 1)
	assert.Equal(t, "Build finished", backend.messages[0].Summary)

	_, ok := any(n).(Shower)
	assert.True(t, ok)
	_, ok = any(n).(HandleShower)
	assert.False(t, ok)
}

func TestShow_DeliveryError(t *testing.T) {
	n := New(WithNotifier(&fakeNotifier{err: errors.New("toast: access denied")}))

	err := n.Show()

	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "toast: access denied", err.Error())
}
