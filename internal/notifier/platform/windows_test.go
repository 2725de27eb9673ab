//go:build windows

package platform

import (
	"testing"

	"github.com/go-toast/toast"
	"github.com/stretchr/testify/assert"
)

func TestToastNotification(t *testing.T) {
	n := toastNotification(Message{
		AppName:   "desknotify",
		Summary:   "Build finished",
		Body:      "ok",
		ImagePath: `C:\img\cover.png`,
		Expire:    -1,
	})

	assert.Equal(t, "desknotify", n.AppID)
	assert.Equal(t, "Build finished", n.Title)
	assert.Equal(t, "ok", n.Message)
	assert.Equal(t, `C:\img\cover.png`, n.Icon)
	assert.Equal(t, toast.Short, n.Duration)
}

func TestToastNotification_NeverUsesLongDuration(t *testing.T) {
	n := toastNotification(Message{Expire: 0})
	assert.Equal(t, toast.Long, n.Duration)
}

func TestToastIcon_IgnoresThemeNames(t *testing.T) {
	assert.Empty(t, toastIcon(Message{Icon: "dialog-information"}))
}
