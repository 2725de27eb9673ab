//go:build unix && !darwin

package notification

import "desknotify/internal/notifier"

// newServerInfoProvider is replaced in tests.
var newServerInfoProvider = notifier.NewServerInfoProvider

// GetServerInformation asks the notification server for its name, vendor,
// version and specification version. Failures are returned as *QueryError.
func GetServerInformation() (ServerInformation, error) {
	p, err := newServerInfoProvider()
	if err != nil {
		return ServerInformation{}, &QueryError{Op: "server information", Err: err}
	}
	return serverInformation(p)
}

// GetCapabilities lists the optional features the notification server
// implements, such as "body-markup" or "actions".
func GetCapabilities() ([]string, error) {
	p, err := newServerInfoProvider()
	if err != nil {
		return nil, &QueryError{Op: "capabilities", Err: err}
	}
	return capabilities(p)
}

func serverInformation(p notifier.ServerInfoProvider) (ServerInformation, error) {
	info, err := p.ServerInformation()
	if err != nil {
		return ServerInformation{}, &QueryError{Op: "server information", Err: err}
	}
	return ServerInformation{
		Name:        info.Name,
		Vendor:      info.Vendor,
		Version:     info.Version,
		SpecVersion: info.SpecVersion,
	}, nil
}

func capabilities(p notifier.ServerInfoProvider) ([]string, error) {
	caps, err := p.Capabilities()
	if err != nil {
		return nil, &QueryError{Op: "capabilities", Err: err}
	}
	return caps, nil
}
