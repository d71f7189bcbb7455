package reminder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/faizmokh/remind/internal/files"
)

// Reader loads entries from the reminders file owned by a files.Manager.
type Reader struct {
	manager *files.Manager
	onSkip  func(*LineError)
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// OnSkip registers a callback receiving every line dropped while loading.
func (r *Reader) OnSkip(fn func(*LineError)) *Reader {
	r.onSkip = fn
	return r
}

// All returns every entry in file order.
func (r *Reader) All(ctx context.Context) ([]Entry, error) {
	return r.load(ctx, r.onSkip)
}

// On returns the entries dated on the same calendar day as day.
func (r *Reader) On(ctx context.Context, day time.Time) ([]Entry, error) {
	return r.Between(ctx, day, day)
}

// Between returns the entries dated within [start, end], inclusive, in file order.
func (r *Reader) Between(ctx context.Context, start, end time.Time) ([]Entry, error) {
	from := startOfDay(start)
	to := startOfDay(end)
	if to.Before(from) {
		return nil, nil
	}

	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Entry
	for _, entry := range entries {
		day := entry.Date.Time(start.Location())
		if day.Before(from) || day.After(to) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

// Check returns the reason every non-blank line of the file failed to parse.
func (r *Reader) Check(ctx context.Context) ([]*LineError, error) {
	var problems []*LineError
	_, err := r.load(ctx, func(le *LineError) {
		problems = append(problems, le)
		if r.onSkip != nil {
			r.onSkip(le)
		}
	})
	if err != nil {
		return nil, err
	}
	return problems, nil
}

func (r *Reader) load(ctx context.Context, skip func(*LineError)) ([]Entry, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}

	file, err := r.manager.OpenReminders()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries, err := ParseFunc(contextReader{ctx: ctx, r: file}, skip)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file.Name(), err)
	}
	return entries, nil
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
