package sdl

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/sdl"
	"uk.ac.bris.cs/barrierlife/gol"
)

// Run shows every BoardSnapshot in a window until events is closed. The q key
// or closing the window sends 'q', the s key sends 's'. It must be called from
// the main goroutine.
func Run(size int, events <-chan gol.Event, keyPresses chan<- rune) error {
	w, err := NewWindow(int32(size), int32(size))
	if err != nil {
		// Keep draining so the engine never blocks on a missing viewer
		for range events {
		}
		return err
	}
	defer w.Destroy()

	press := func(key rune) {
		select {
		case keyPresses <- key:
		default:
		}
	}

sdl:
	for {
		event := w.PollEvent()
		if event != nil {
			switch e := event.(type) {
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_q:
					press('q')
				case sdl.K_s:
					press('s')
				}
			case *sdl.QuitEvent:
				press('q')
			}
		}
		select {
		case event, ok := <-events:
			if !ok {
				break sdl
			}
			switch e := event.(type) {
			case gol.BoardSnapshot:
				w.Draw(e.World)
				if err := w.RenderFrame(); err != nil {
					log.Println("render:", err)
				}
			case gol.TurnComplete:
			default:
				fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
			}
		default:
			sdl.Delay(1)
		}
	}
	return nil
}
