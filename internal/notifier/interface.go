package notifier

// Notifier delivers a notification and returns the id the server assigned
// to it. Backends without server-side ids return 0.
type Notifier interface {
	Notify(msg Message) (uint32, error)
}

// ServerInfoProvider queries the running notification server. Only the
// D-Bus backend implements it.
type ServerInfoProvider interface {
	ServerInformation() (ServerInfo, error)
	Capabilities() ([]string, error)
}
