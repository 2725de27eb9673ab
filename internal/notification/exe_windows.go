package notification

import "strings"

// trimExeSuffix drops ".exe" so the app name matches what the user typed.
func trimExeSuffix(name string) string {
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".exe") {
		return name[:len(name)-4]
	}
	return name
}
