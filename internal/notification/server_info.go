package notification

// ServerInformation identifies the running notification server at the
// moment it was queried.
type ServerInformation struct {
	Name        string // product name of the server
	Vendor      string
	Version     string
	SpecVersion string // notification specification version it implements
}
