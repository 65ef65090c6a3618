package sdl

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"uk.ac.bris.cs/barrierlife/gol"
)

type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte
}

// Boards smaller than this are scaled up so they remain visible
const minWindowSize = 512

func NewWindow(width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, err
	}
	scale := int32(1)
	if width < minWindowSize {
		scale = minWindowSize / width
	}
	window, err := sdl.CreateWindow("GOL GUI", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width*scale, height*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, width, height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, err
	}
	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, width*height*4),
	}, nil
}

func (w *Window) Destroy() {
	_ = w.texture.Destroy()
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

func (w *Window) PollEvent() sdl.Event {
	return sdl.PollEvent()
}

// Draw copies a board into the pixel buffer, alive cells white
func (w *Window) Draw(world *gol.Grid) {
	size := world.Size()
	for y := 0; y != size && y < int(w.Height); y++ {
		for x := 0; x != size && x < int(w.Width); x++ {
			value := byte(0)
			if world.Get(y, x) {
				value = 0xFF
			}
			i := 4 * (y*int(w.Width) + x)
			w.pixels[i] = value
			w.pixels[i+1] = value
			w.pixels[i+2] = value
			w.pixels[i+3] = 0xFF
		}
	}
}

func (w *Window) RenderFrame() error {
	if err := w.texture.Update(nil, unsafe.Pointer(&w.pixels[0]), int(w.Width)*4); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}
