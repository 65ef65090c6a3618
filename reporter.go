package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"uk.ac.bris.cs/barrierlife/gol"
)

// reporter consumes engine events on behalf of the CLI and forwards them to
// the viewer when one is open.
type reporter struct {
	engine   *gol.Engine
	cancel   context.CancelFunc
	out      string
	verbose  bool
	finished chan struct{}
}

func (r *reporter) forward(events <-chan gol.Event, keyPresses <-chan rune, view chan<- gol.Event) {
	defer close(r.finished)
	if view != nil {
		defer close(view)
	}
	save := false
	for {
		select {
		case key := <-keyPresses:
			switch key {
			case 'q':
				r.cancel()
			case 's':
				save = true
				r.engine.RequestSnapshot()
			}
		case event, ok := <-events:
			if !ok {
				return
			}
			if e, is_snapshot := event.(gol.BoardSnapshot); is_snapshot {
				if r.verbose {
					fmt.Printf("%d ----------\n", e.CompletedTurns)
					_ = gol.WriteBoard(os.Stdout, e.World)
				}
				if save {
					r.write(e.World, e.CompletedTurns)
					save = false
				}
			}
			if view != nil {
				view <- event
			}
		}
	}
}

// Write board to out/<size>x<size>x<turn>.pgm
func (r *reporter) write(world *gol.Grid, turn int) {
	if r.out == "" {
		return
	}
	filename := fmt.Sprintf("%dx%dx%d", world.Size(), world.Size(), turn)
	if _, err := gol.WritePgm(r.out, filename, world); err != nil {
		log.Println("output:", err)
		return
	}
	fmt.Println("File", filename, "output done!")
}
