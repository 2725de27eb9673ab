package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLine is returned for blank lines so readers can skip them.
var ErrEmptyLine = errors.New("empty line")

// ParseLine turns one input line into an Event. A line starting with '{'
// is decoded as a JSON object; anything else is plain text where the part
// before the first ':' is the summary and the rest is the body.
func ParseLine(line string) (Event, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{}, ErrEmptyLine
	}

	if strings.HasPrefix(line, "{") {
		var ev Event
		dec := json.NewDecoder(strings.NewReader(line))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ev); err != nil {
			return Event{}, fmt.Errorf("decoding event: %w", err)
		}
		if ev.Summary == "" {
			return Event{}, errors.New("event has no summary")
		}
		return ev, nil
	}

	summary, body, _ := strings.Cut(line, ":")
	return Event{
		Summary: strings.TrimSpace(summary),
		Body:    strings.TrimSpace(body),
	}, nil
}
