package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_PlainText(t *testing.T) {
	ev, err := ParseLine("Build finished: Target X succeeded")
	require.NoError(t, err)
	assert.Equal(t, "Build finished", ev.Summary)
	assert.Equal(t, "Target X succeeded", ev.Body)
}

func TestParseLine_PlainTextSplitsOnFirstColon(t *testing.T) {
	ev, err := ParseLine("deploy: done at 12:30")
	require.NoError(t, err)
	assert.Equal(t, "deploy", ev.Summary)
	assert.Equal(t, "done at 12:30", ev.Body)
}

func TestParseLine_SummaryOnly(t *testing.T) {
	ev, err := ParseLine("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", ev.Summary)
	assert.Empty(t, ev.Body)
}

func TestParseLine_JSON(t *testing.T) {
	ev, err := ParseLine(`{"summary":"s","body":"b","timeout":-2,"urgency":2,"id":9,"subtitle":"sub"}`)
	require.NoError(t, err)
	assert.Equal(t, "s", ev.Summary)
	assert.Equal(t, "b", ev.Body)
	require.NotNil(t, ev.Timeout)
	assert.Equal(t, int32(-2), *ev.Timeout)
	require.NotNil(t, ev.Urgency)
	assert.Equal(t, 2, *ev.Urgency)
	require.NotNil(t, ev.ID)
	assert.Equal(t, uint32(9), *ev.ID)
	require.NotNil(t, ev.Subtitle)
	assert.Equal(t, "sub", *ev.Subtitle)
	assert.Nil(t, ev.SoundName)
}

func TestParseLine_Errors(t *testing.T) {
	_, err := ParseLine("   ")
	assert.ErrorIs(t, err, ErrEmptyLine)

	_, err = ParseLine(`{"summary":`)
	assert.Error(t, err)

	_, err = ParseLine(`{"body":"no summary"}`)
	assert.Error(t, err)

	_, err = ParseLine(`{"summary":"s","colour":"red"}`)
	assert.Error(t, err)
}
