package gol

import (
	"fmt"

	"uk.ac.bris.cs/barrierlife/util"
)

const (
	dead  uint8 = 0
	alive uint8 = 1
)

// Grid is a square board of cells, each stored as 0 (dead) or 1 (alive)
type Grid struct {
	size  int
	cells [][]uint8
}

// Make grid object with every cell dead
func NewGrid(size int) *Grid {
	return NewGridFromData(size, make([]uint8, size*size))
}

// Make grid object by providing cell array in row-major order
// Ownership of cell array is transferred to grid object
func NewGridFromData(size int, cell_data []uint8) *Grid {
	if size < 0 || len(cell_data) != size*size {
		panic(fmt.Sprintf("grid: %d cells cannot form a %dx%d board", len(cell_data), size, size))
	}
	grid := &Grid{
		size:  size,
		cells: make([][]uint8, size),
	}
	for i := 0; i != size; i++ {
		grid.cells[i] = cell_data[0:size:size]
		cell_data = cell_data[size:]
	}
	return grid
}

// Size returns the length of one side of the board.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) check(row, col int) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic(fmt.Sprintf("grid: cell (%d, %d) outside %dx%d board", row, col, g.size, g.size))
	}
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) bool {
	g.check(row, col)
	return g.cells[row][col] == alive
}

// Set writes the state of the cell at (row, col).
func (g *Grid) Set(row, col int, is_alive bool) {
	g.check(row, col)
	if is_alive {
		g.cells[row][col] = alive
	} else {
		g.cells[row][col] = dead
	}
}

// Copy returns a deep copy sharing no storage with g.
func (g *Grid) Copy() *Grid {
	cell_data := make([]uint8, 0, g.size*g.size)
	for _, row := range g.cells {
		cell_data = append(cell_data, row...)
	}
	return NewGridFromData(g.size, cell_data)
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// CountAlive returns the number of alive cells.
func (g *Grid) CountAlive() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			count += int(cell)
		}
	}
	return count
}

// AliveCells lists alive cells with X as the column and Y as the row.
func (g *Grid) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0)
	for y, row := range g.cells {
		for x, cell := range row {
			if cell == alive {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
