package gol

import (
	"context"
	"errors"
	"fmt"
)

// DefaultThreads is used when no worker count is given.
const DefaultThreads = 4

// ErrInvalidParams is wrapped by every ParamError.
var ErrInvalidParams = errors.New("invalid parameters")

// Params provides the details of how to run the Game of Life.
type Params struct {
	Turns         int // Generations to evaluate
	Threads       int // Worker goroutines, one partition each
	ImageSize     int // Side length of the square board
	Coordinator   int // Index of the worker that swaps buffers between turns
	SnapshotEvery int // Emit a BoardSnapshot every n turns (0 disables)
}

// ParamError reports the parameter that failed validation.
type ParamError struct {
	Param  string
	Value  int
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %d %s", ErrInvalidParams, e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}

// Validate checks p before any worker is started.
func (p Params) Validate() error {
	switch {
	case p.ImageSize <= 0:
		return &ParamError{"ImageSize", p.ImageSize, "must be positive"}
	case p.Turns < 0:
		return &ParamError{"Turns", p.Turns, "must not be negative"}
	case p.Threads < 1 || p.Threads > p.ImageSize:
		return &ParamError{"Threads", p.Threads, fmt.Sprintf("must be in [1, %d]", p.ImageSize)}
	case p.Coordinator < 0 || p.Coordinator >= p.Threads:
		return &ParamError{"Coordinator", p.Coordinator, fmt.Sprintf("must be in [0, %d)", p.Threads)}
	case p.SnapshotEvery < 0:
		return &ParamError{"SnapshotEvery", p.SnapshotEvery, "must not be negative"}
	}
	return nil
}

// ClampThreads turns a requested worker count into one valid for a board of
// the given size. A request <= 0 selects DefaultThreads. The returned note is
// empty unless the request was changed.
func ClampThreads(requested, size int) (int, string) {
	threads := requested
	note := ""
	if threads <= 0 {
		threads = DefaultThreads
		note = fmt.Sprintf("no thread count given, using default %d", DefaultThreads)
	}
	if threads > size {
		note = fmt.Sprintf("%d threads exceed the %d rows of the board, using %d", threads, size, size)
		threads = size
	}
	if threads < 1 {
		threads = 1
	}
	return threads, note
}

// Run evaluates p.Turns turns of world and returns the final board.
func Run(ctx context.Context, p Params, world *Grid, events chan<- Event) (*Grid, error) {
	engine, err := NewEngine(p, world)
	if err != nil {
		if events != nil {
			close(events)
		}
		return nil, err
	}
	if err := engine.Run(ctx, events); err != nil {
		return nil, err
	}
	return engine.World(), nil
}
