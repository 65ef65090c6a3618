package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"uk.ac.bris.cs/barrierlife/gol"
	"uk.ac.bris.cs/barrierlife/sdl"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	var params gol.Params
	var threads int

	flag.IntVar(&threads, "t", 0,
		"Specify the number of worker threads to use. Defaults to 4 and is capped at the board size.")
	flag.IntVar(&params.Coordinator, "coordinator", 0,
		"Index of the worker that swaps the buffers between turns.")
	flag.IntVar(&params.SnapshotEvery, "snapshot", 0,
		"Emit a board snapshot every n turns. Defaults to 1 when the window is open.")
	pgm := flag.String("pgm", "",
		"Load the initial board from a square pgm image instead of the text format on stdin.")
	turns := flag.Int("turns", 0,
		"Number of turns to evaluate when loading a pgm image.")
	out := flag.String("out", "out",
		"Directory for pgm output. Empty disables writing the final board.")
	noVis := flag.Bool("noVis", false,
		"Disables the SDL window, so there is no visualisation during the tests.")
	verbose := flag.Bool("v", false,
		"Print the board after every turn.")
	result := flag.Bool("result", true,
		"Print the final board.")
	flag.Parse()

	log.SetFlags(0)

	world, n, err := load(*pgm, *turns)
	if err != nil {
		log.Fatal(err)
	}
	params.ImageSize = world.Size()
	params.Turns = n

	var note string
	params.Threads, note = gol.ClampThreads(threads, params.ImageSize)
	if note != "" {
		log.Println(note)
	}
	if *verbose {
		params.SnapshotEvery = 1
		fmt.Println("Initial:")
		_ = gol.WriteBoard(os.Stdout, world)
	}
	if !*noVis && params.SnapshotEvery == 0 {
		params.SnapshotEvery = 1
	}

	engine, err := gol.NewEngine(params, world)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan gol.Event, 1000)
	keyPresses := make(chan rune, 10)
	done := make(chan error, 1)
	go func() {
		done <- engine.Run(ctx, events)
	}()

	r := &reporter{
		engine:   engine,
		cancel:   cancel,
		out:      *out,
		verbose:  *verbose,
		finished: make(chan struct{}),
	}
	var view chan gol.Event
	if !*noVis {
		view = make(chan gol.Event, 1000)
	}
	go r.forward(events, keyPresses, view)
	if view != nil {
		if err := sdl.Run(params.ImageSize, view, keyPresses); err != nil {
			log.Println("viewer:", err)
		}
	}

	err = <-done
	<-r.finished
	if err != nil {
		log.Fatal(err)
	}
	if engine.CompletedTurns() != params.Turns {
		log.Printf("stopped after %d of %d turns", engine.CompletedTurns(), params.Turns)
	}
	if *out != "" {
		r.write(engine.World(), engine.CompletedTurns())
	}
	if *result {
		fmt.Println("Final:")
		_ = gol.WriteBoard(os.Stdout, engine.World())
	}
}

func load(pgm string, turns int) (*gol.Grid, int, error) {
	if pgm == "" {
		return gol.ReadBoard(os.Stdin)
	}
	if turns < 0 {
		return nil, 0, fmt.Errorf("turns %d must not be negative", turns)
	}
	world, err := gol.ReadPgmFile(pgm)
	return world, turns, err
}
