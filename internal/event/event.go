// Package event describes a notification request as it arrives on a
// line-oriented input stream.
package event

// Event is one notification request. Integer fields use the boundary
// encodings of the notification package; nil means "leave the default".
type Event struct {
	AppName   string  `json:"appname,omitempty"`
	Summary   string  `json:"summary"`
	Subtitle  *string `json:"subtitle,omitempty"`
	Body      string  `json:"body,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	ImagePath *string `json:"image_path,omitempty"`
	SoundName *string `json:"sound_name,omitempty"`
	Timeout   *int32  `json:"timeout,omitempty"`
	Urgency   *int    `json:"urgency,omitempty"`
	ID        *uint32 `json:"id,omitempty"`
}
