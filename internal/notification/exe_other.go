//go:build !windows

package notification

// trimExeSuffix keeps the name as is: outside Windows a dot is part of the
// executable's name (python3.11, notification.test).
func trimExeSuffix(name string) string { return name }
