package gol

import (
	"strings"
	"testing"

	"uk.ac.bris.cs/barrierlife/util"
)

// Build a grid from rows of 'x' (alive) and '.' (dead)
func gridFromRows(rows ...string) *Grid {
	world := NewGrid(len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == 'x' {
				world.Set(y, x, true)
			}
		}
	}
	return world
}

func gridRows(world *Grid) []string {
	rows := make([]string, world.Size())
	for y := range rows {
		var b strings.Builder
		for x := 0; x != world.Size(); x++ {
			if world.Get(y, x) {
				b.WriteByte('x')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func TestNewGridIsDead(t *testing.T) {
	world := NewGrid(7)
	if world.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", world.Size())
	}
	if n := world.CountAlive(); n != 0 {
		t.Errorf("CountAlive() = %d, want 0", n)
	}
}

func TestGridSetGet(t *testing.T) {
	world := NewGrid(4)
	world.Set(1, 2, true)
	world.Set(3, 0, true)
	world.Set(3, 0, false)
	for y := 0; y != 4; y++ {
		for x := 0; x != 4; x++ {
			want := y == 1 && x == 2
			if world.Get(y, x) != want {
				t.Errorf("Get(%d, %d) = %v, want %v", y, x, !want, want)
			}
		}
	}
	cells := world.AliveCells()
	if len(cells) != 1 || cells[0] != (util.Cell{X: 2, Y: 1}) {
		t.Errorf("AliveCells() = %v, want [(2, 1)]", cells)
	}
}

func TestGridBoundsPanic(t *testing.T) {
	world := NewGrid(3)
	for _, c := range []struct{ row, col int }{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		expectPanic(t, "Get", func() { world.Get(c.row, c.col) })
		expectPanic(t, "Set", func() { world.Set(c.row, c.col, true) })
	}
	expectPanic(t, "NewGridFromData", func() { NewGridFromData(3, make([]uint8, 8)) })
}

func TestGridRowsDoNotOverlap(t *testing.T) {
	world := NewGrid(3)
	world.Set(0, 2, true)
	if world.Get(1, 0) {
		t.Fatal("writing the end of row 0 changed row 1")
	}
	// Appending to a row must not spill into the next one
	_ = append(world.cells[0], alive)
	if world.Get(1, 0) {
		t.Fatal("append to row 0 changed row 1")
	}
}

func TestGridCopyIsIndependent(t *testing.T) {
	world := gridFromRows(
		"x..",
		".x.",
		"..x",
	)
	copied := world.Copy()
	if !copied.Equal(world) {
		t.Fatalf("copy differs: %v", gridRows(copied))
	}
	copied.Set(0, 0, false)
	if !world.Get(0, 0) {
		t.Error("changing the copy changed the original")
	}
	if copied.Equal(world) {
		t.Error("Equal() ignored a differing cell")
	}
	if world.Equal(NewGrid(4)) {
		t.Error("Equal() ignored differing sizes")
	}
}
