//go:build !unix || darwin

package notification

// GetServerInformation always fails with ErrUnsupported: only D-Bus
// notification servers can be queried, whether or not one is running.
func GetServerInformation() (ServerInformation, error) {
	return ServerInformation{}, ErrUnsupported
}

// GetCapabilities always fails with ErrUnsupported.
func GetCapabilities() ([]string, error) {
	return nil, ErrUnsupported
}
