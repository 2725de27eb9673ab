package notification

// Capability interfaces describe the parts of the Notification API that
// depend on the build target. Detect them with a type assertion on
// any(n); a failed assertion means the platform lacks the operation.
type (
	UrgencySetter interface {
		SetUrgency(v int) (*Notification, error)
	}

	ImagePathSetter interface {
		SetImagePath(path string) *Notification
	}

	// HandleShower is satisfied on unix, where Show returns a Handle.
	HandleShower interface {
		Show() (*Handle, error)
	}

	// Shower is satisfied everywhere else.
	Shower interface {
		Show() error
	}

	// Identifier is satisfied by handles that carry the server-assigned id.
	Identifier interface {
		ID() uint32
	}
)

// Handle refers to a shown notification. It is only produced on unix
// builds; elsewhere Show reports success without one.
type Handle struct {
	id uint32
}
