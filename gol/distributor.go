package gol

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrEngineReused is returned when Run is called more than once.
	ErrEngineReused = errors.New("engine already run")
	// ErrWorkerFailed wraps a panic recovered inside a worker.
	ErrWorkerFailed = errors.New("worker failed")
)

// Engine owns both board buffers and the worker pool for one run.
//
// During a turn every worker reads only from buffers[current] and writes only
// its own rows of buffers[1-current]. current, turn, swaps and halted are
// written by the coordinator alone, between the two rendezvous of a turn.
type Engine struct {
	params     Params
	partitions []Partition
	barrier    *Barrier
	rule       func(world *Grid, row, col int) uint8
	buffers    [2]*Grid

	current int  // Index of the buffer holding the latest complete turn
	turn    int  // Completed turns
	swaps   int  // Buffer swaps performed
	halted  bool // Read by all workers at the top of each turn

	ctx      context.Context
	events   chan<- Event
	ticker   *time.Ticker
	snapshot atomic.Bool
	started  atomic.Bool
}

// NewEngine validates p and takes ownership of world as the initial board.
func NewEngine(p Params, world *Grid) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if world == nil {
		return nil, fmt.Errorf("%w: no initial board", ErrInvalidParams)
	}
	if world.Size() != p.ImageSize {
		return nil, &ParamError{"ImageSize", p.ImageSize,
			fmt.Sprintf("does not match the %dx%d board", world.Size(), world.Size())}
	}
	return &Engine{
		params:     p,
		partitions: ComputePartitions(p.ImageSize, p.Threads),
		barrier:    NewBarrier(p.Threads),
		rule:       nextCell,
		buffers:    [2]*Grid{world, NewGrid(p.ImageSize)},
	}, nil
}

// Run starts one worker per partition and blocks until they have evaluated
// every turn, the context is cancelled, or a worker fails. Cancellation is
// observed only between turns, so all workers stop after the same turn.
//
// If events is not nil Run closes it before returning. The caller must keep
// draining it, as the coordinator blocks while sending.
func (e *Engine) Run(ctx context.Context, events chan<- Event) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrEngineReused
	}
	if events != nil {
		defer close(events)
	}
	e.ctx = ctx
	e.events = events
	e.ticker = time.NewTicker(time.Second * 2)
	defer e.ticker.Stop()

	e.halted = e.turn == e.params.Turns || ctx.Err() != nil
	e.send(StateChange{e.turn, Executing})

	var group errgroup.Group
	for i, partition := range e.partitions {
		i, partition := i, partition
		group.Go(func() error {
			return e.worker(i, partition)
		})
	}
	if err := group.Wait(); err != nil {
		e.send(StateChange{e.turn, Quitting})
		return fmt.Errorf("turn %d: %w", e.turn+1, err)
	}

	e.send(FinalTurnComplete{e.turn, e.World().AliveCells()})
	e.send(StateChange{e.turn, Quitting})
	return nil
}

// World returns the buffer holding the latest complete turn. It must not be
// read while Run is in progress.
func (e *Engine) World() *Grid {
	return e.buffers[e.current]
}

// CompletedTurns returns the generation counter.
func (e *Engine) CompletedTurns() int {
	return e.turn
}

// Swaps returns the number of buffer swaps performed.
func (e *Engine) Swaps() int {
	return e.swaps
}

// RequestSnapshot asks the coordinator to emit a BoardSnapshot after the next
// completed turn. It is safe to call from any goroutine.
func (e *Engine) RequestSnapshot() {
	e.snapshot.Store(true)
}

func (e *Engine) worker(id int, partition Partition) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, id, r)
			// Release peers blocked at either rendezvous
			e.barrier.Break(err)
		}
	}()
	size := e.params.ImageSize
	for !e.halted {
		world, next_world := e.buffers[e.current], e.buffers[1-e.current]
		for row := partition.Start; row != partition.End; row++ {
			next_row := next_world.cells[row]
			for col := 0; col != size; col++ {
				next_row[col] = e.rule(world, row, col)
			}
		}
		// Every partition of next_world is written
		if err := e.barrier.Wait(); err != nil {
			return err
		}
		if id == e.params.Coordinator {
			e.swap()
		}
		// Swap and halt decision are visible to every worker
		if err := e.barrier.Wait(); err != nil {
			return err
		}
	}
	return nil
}

// swap runs on the coordinator only, while every other worker is parked
// between the two rendezvous of the turn.
func (e *Engine) swap() {
	e.current = 1 - e.current
	e.turn++
	e.swaps++
	world := e.buffers[e.current]

	e.send(TurnComplete{e.turn})
	select {
	case <-e.ticker.C:
		e.send(AliveCellsCount{e.turn, world.CountAlive()})
	default:
	}
	requested := e.snapshot.Swap(false)
	if requested || (e.params.SnapshotEvery > 0 && e.turn%e.params.SnapshotEvery == 0) {
		e.send(BoardSnapshot{e.turn, world.Copy()})
	}

	e.halted = e.turn == e.params.Turns || e.ctx.Err() != nil
}

func (e *Engine) send(event Event) {
	if e.events != nil {
		e.events <- event
	}
}
