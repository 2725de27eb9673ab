package notification

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Boundary encodings of the timeout sentinels. Any non-negative value is an
// explicit lifetime in milliseconds.
const (
	TimeoutNever   int32 = -2
	TimeoutDefault int32 = -1
)

type timeoutKind uint8

const (
	timeoutDefault timeoutKind = iota
	timeoutNever
	timeoutMillis
)

// Timeout is how long the server should keep a notification on screen.
// The zero value is DefaultTimeout.
type Timeout struct {
	kind timeoutKind
	ms   uint32
}

var (
	// DefaultTimeout leaves the lifetime to the notification server.
	DefaultTimeout = Timeout{kind: timeoutDefault}
	// NeverTimeout asks the server to keep the notification until dismissed.
	NeverTimeout = Timeout{kind: timeoutNever}
)

// Milliseconds returns an explicit lifetime.
func Milliseconds(ms uint32) Timeout {
	return Timeout{kind: timeoutMillis, ms: ms}
}

// DecodeTimeout maps a boundary integer onto a Timeout. The sentinels are
// checked before the non-negative range.
func DecodeTimeout(v int32) (Timeout, error) {
	switch v {
	case TimeoutDefault:
		return DefaultTimeout, nil
	case TimeoutNever:
		return NeverTimeout, nil
	}
	if v >= 0 {
		return Milliseconds(uint32(v)), nil
	}
	return Timeout{}, fmt.Errorf("invalid timeout value %d: %w", v, ErrInvalidArgument)
}

// Encode is the inverse of DecodeTimeout. Lifetimes above math.MaxInt32
// saturate.
func (t Timeout) Encode() int32 {
	switch t.kind {
	case timeoutNever:
		return TimeoutNever
	case timeoutMillis:
		return saturate(t.ms)
	default:
		return TimeoutDefault
	}
}

// Expire returns the expire_timeout argument of the freedesktop Notify call:
// -1 for the server default, 0 for never, otherwise milliseconds.
func (t Timeout) Expire() int32 {
	switch t.kind {
	case timeoutNever:
		return 0
	case timeoutMillis:
		return saturate(t.ms)
	default:
		return -1
	}
}

// Duration reports the explicit lifetime, if there is one.
func (t Timeout) Duration() (time.Duration, bool) {
	if t.kind != timeoutMillis {
		return 0, false
	}
	return time.Duration(t.ms) * time.Millisecond, true
}

func (t Timeout) IsDefault() bool { return t.kind == timeoutDefault }

func (t Timeout) IsNever() bool { return t.kind == timeoutNever }

func (t Timeout) String() string {
	switch t.kind {
	case timeoutNever:
		return "never"
	case timeoutMillis:
		return strconv.FormatUint(uint64(t.ms), 10) + "ms"
	default:
		return "default"
	}
}

func saturate(ms uint32) int32 {
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(ms)
}
