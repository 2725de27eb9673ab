package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimExeSuffix(t *testing.T) {
	assert.Equal(t, "desknotify", trimExeSuffix("desknotify.exe"))
	assert.Equal(t, "desknotify", trimExeSuffix("desknotify.EXE"))
	assert.Equal(t, "python3.11", trimExeSuffix("python3.11"))
	assert.Equal(t, ".exe", trimExeSuffix(".exe"))
}
