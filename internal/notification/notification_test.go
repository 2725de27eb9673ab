package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	n := New()

	assert.Equal(t, exeName(), n.AppName())
	assert.NotEmpty(t, n.AppName())
	assert.Empty(t, n.Summary())
	assert.Empty(t, n.Body())
	assert.Empty(t, n.Icon())
	assert.Equal(t, TimeoutDefault, n.Timeout())

	_, ok := n.Subtitle()
	assert.False(t, ok)
	_, ok = n.ImagePath()
	assert.False(t, ok)
	_, ok = n.SoundName()
	assert.False(t, ok)
	_, ok = n.Urgency()
	assert.False(t, ok)
	_, ok = n.ID()
	assert.False(t, ok)
}

func TestSetters_ChainOnSameInstance(t *testing.T) {
	n := New()
	got := n.SetSummary("a").SetBody("b")

	assert.Same(t, n, got)
	assert.Equal(t, "a", n.Summary())
	assert.Equal(t, "b", n.Body())
}

func TestSetters_AllFields(t *testing.T) {
	n := New().
		SetAppName("builder").
		SetSummary("The summary").
		SetSubtitle("sub").
		SetBody("line one\nline two").
		SetIcon("dialog-information").
		SetSoundName("message-new-instant").
		SetID(42)

	assert.Equal(t, "builder", n.AppName())
	assert.Equal(t, "The summary", n.Summary())
	assert.Equal(t, "line one\nline two", n.Body())
	assert.Equal(t, "dialog-information", n.Icon())

	sub, ok := n.Subtitle()
	assert.True(t, ok)
	assert.Equal(t, "sub", sub)

	sound, ok := n.SoundName()
	assert.True(t, ok)
	assert.Equal(t, "message-new-instant", sound)

	id, ok := n.ID()
	assert.True(t, ok)
	assert.Equal(t, uint32(42), id)
}

func TestGetters_Idempotent(t *testing.T) {
	n := New().SetSummary("s").SetSubtitle("t")

	assert.Equal(t, n.Summary(), n.Summary())
	s1, ok1 := n.Subtitle()
	s2, ok2 := n.Subtitle()
	assert.Equal(t, s1, s2)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, n.Timeout(), n.Timeout())
}

func TestSetTimeout(t *testing.T) {
	tests := []struct {
		in   int32
		want Timeout
	}{
		{TimeoutDefault, DefaultTimeout},
		{TimeoutNever, NeverTimeout},
		{0, Milliseconds(0)},
		{5000, Milliseconds(5000)},
	}
	for _, tt := range tests {
		n := New()
		got, err := n.SetTimeout(tt.in)
		require.NoError(t, err)
		assert.Same(t, n, got)
		assert.Equal(t, tt.want, n.TimeoutValue())
		assert.Equal(t, tt.in, n.Timeout())
	}
}

func TestSetTimeout_InvalidLeavesDraftUnchanged(t *testing.T) {
	n := New()
	_, err := n.SetTimeout(5000)
	require.NoError(t, err)

	_, err = n.SetTimeout(-3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, int32(5000), n.Timeout())
}

func TestAutoIcon(t *testing.T) {
	n := New().AutoIcon()
	assert.Equal(t, exeName(), n.Icon())
}

func TestFinalize_PassThrough(t *testing.T) {
	n := New().SetSummary("x")
	assert.Same(t, n, n.Finalize())
	assert.Equal(t, "x", n.Summary())
}

func TestMessage_CarriesDraft(t *testing.T) {
	n := New().
		SetAppName("app").
		SetSummary("s").
		SetSubtitle("sub").
		SetBody("b").
		SetIcon("icon").
		SetSoundName("bell").
		SetID(7).
		SetTimeoutValue(NeverTimeout)

	msg := n.message()
	assert.Equal(t, "app", msg.AppName)
	assert.Equal(t, "s", msg.Summary)
	assert.Equal(t, "sub", msg.Subtitle)
	assert.Equal(t, "b", msg.Body)
	assert.Equal(t, "icon", msg.Icon)
	assert.Equal(t, "bell", msg.SoundName)
	assert.Equal(t, uint32(7), msg.ReplacesID)
	assert.Equal(t, int32(0), msg.Expire)
	assert.Nil(t, msg.Urgency)
}

func TestDeliver_WrapsBackendError(t *testing.T) {
	backendErr := errors.New("org.freedesktop.DBus.Error.ServiceUnknown: no server")
	n := New(WithNotifier(&fakeNotifier{err: backendErr}))

	_, err := n.deliver()

	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, backendErr.Error(), err.Error())
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
}

func TestErrUnsupported_MatchesStdlib(t *testing.T) {
	assert.ErrorIs(t, ErrUnsupported, errors.ErrUnsupported)
}
