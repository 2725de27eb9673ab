package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"desknotify/internal/event"
)

// maxLineSize bounds a single event line, newline included.
const maxLineSize = 64 * 1024

// ErrLineTooLong is reported, wrapped in a *LineError, for a line longer
// than maxLineSize. The rest of that line is discarded.
var ErrLineTooLong = fmt.Errorf("line exceeds %d bytes", maxLineSize)

// EventRepository yields notification events until io.EOF.
type EventRepository interface {
	Next(ctx context.Context) (event.Event, error)
}

// LineError is a line that could not be parsed. Reading can continue after it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// Repository reads one event per line from a stream.
type Repository struct {
	reader *bufio.Reader
	line   int
}

// NewRepository creates a repository reading from r.
func NewRepository(r io.Reader) *Repository {
	return &Repository{reader: bufio.NewReaderSize(r, 4096)}
}

// Next returns the next event, skipping blank lines. Malformed and
// oversized lines are reported as *LineError. The context is checked
// between lines; a read already blocked on the stream is not interrupted.
func (r *Repository) Next(ctx context.Context) (event.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return event.Event{}, err
		}

		line, tooLong, err := r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return event.Event{}, io.EOF
			}
			return event.Event{}, fmt.Errorf("error reading events: %w", err)
		}
		r.line++
		if tooLong {
			return event.Event{}, &LineError{Line: r.line, Err: ErrLineTooLong}
		}

		ev, err := event.ParseLine(line)
		if errors.Is(err, event.ErrEmptyLine) {
			continue
		}
		if err != nil {
			return event.Event{}, &LineError{Line: r.line, Err: err}
		}
		return ev, nil
	}
}

// readLine returns the next line, or reports tooLong after consuming a
// line that does not fit in maxLineSize. A final line without a newline
// is returned before io.EOF.
func (r *Repository) readLine() (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, readErr := r.reader.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", false, io.EOF
			}
			return string(buf), tooLong, nil
		case readErr != nil:
			return "", false, readErr
		}
		return string(buf), tooLong, nil
	}
}
