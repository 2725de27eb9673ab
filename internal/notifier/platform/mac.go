//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gen2brain/beeep"
)

// MacOSNotifier implements desktop notifications for macOS. It prefers
// terminal-notifier, which understands subtitles, sounds and replacement
// groups, and falls back to beeep when it is not installed.
type MacOSNotifier struct {
	lookPath func(file string) (string, error)
}

func NewMacOSNotifier() *MacOSNotifier {
	return &MacOSNotifier{lookPath: exec.LookPath}
}

// Notify never returns a server id; macOS has none to give.
func (n *MacOSNotifier) Notify(msg Message) (uint32, error) {
	path, err := n.lookPath("terminal-notifier")
	if err != nil {
		return 0, beeepNotify(msg)
	}

	out, err := exec.Command(path, terminalNotifierArgs(msg)...).CombinedOutput()
	if err != nil {
		if text := strings.TrimSpace(string(out)); text != "" {
			return 0, fmt.Errorf("terminal-notifier: %w: %s", err, text)
		}
		return 0, fmt.Errorf("terminal-notifier: %w", err)
	}
	return 0, nil
}

// terminalNotifierArgs ignores Icon and ImagePath: macOS always shows the
// sending application's icon.
func terminalNotifierArgs(msg Message) []string {
	args := []string{"-title", msg.Summary, "-message", msg.Body}
	if msg.Subtitle != "" {
		args = append(args, "-subtitle", msg.Subtitle)
	}
	if msg.SoundName != "" {
		args = append(args, "-sound", msg.SoundName)
	}
	if msg.ReplacesID != 0 {
		args = append(args, "-group", msg.AppName+"."+strconv.FormatUint(uint64(msg.ReplacesID), 10))
	}
	return args
}

func beeepNotify(msg Message) error {
	title := msg.Summary
	if msg.Subtitle != "" {
		title += " - " + msg.Subtitle
	}
	if msg.SoundName != "" {
		return beeep.Alert(title, msg.Body, "")
	}
	return beeep.Notify(title, msg.Body, "")
}
