package notification

import "fmt"

// Urgency is the freedesktop urgency level. Its numeric value is also the
// boundary encoding.
type Urgency uint8

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// DecodeUrgency maps 0, 1 and 2 onto an Urgency and rejects everything else.
func DecodeUrgency(v int) (Urgency, error) {
	switch v {
	case 0:
		return UrgencyLow, nil
	case 1:
		return UrgencyNormal, nil
	case 2:
		return UrgencyCritical, nil
	}
	return 0, fmt.Errorf("invalid urgency value %d: %w", v, ErrInvalidArgument)
}

func (u Urgency) Encode() int { return int(u) }

func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	}
	return fmt.Sprintf("urgency(%d)", uint8(u))
}
