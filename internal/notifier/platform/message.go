// Package platform holds the desktop notification backends, one per
// platform family. Exactly one backend is compiled into a build.
package platform

// Message is a fully resolved notification as handed to a backend.
type Message struct {
	AppName   string
	Summary   string
	Subtitle  string
	Body      string
	Icon      string
	ImagePath string
	SoundName string
	// Expire follows the freedesktop expire_timeout convention:
	// -1 server default, 0 never, otherwise milliseconds.
	Expire int32
	// Urgency is nil when the caller did not set one.
	Urgency *uint8
	// ReplacesID is 0 for a new notification.
	ReplacesID uint32
}

// ServerInfo identifies the running notification server.
type ServerInfo struct {
	Name        string
	Vendor      string
	Version     string
	SpecVersion string
}
