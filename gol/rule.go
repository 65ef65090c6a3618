package gol

// Count alive cells among the up to eight in-bounds neighbours of (row, col)
// Board edges do not wrap
func countLiveNeighbours(world *Grid, row, col int) int {
	world.check(row, col)
	start_row, end_row := row, row
	start_col, end_col := col, col
	if row > 0 {
		start_row--
	}
	if row+1 < world.size {
		end_row++
	}
	if col > 0 {
		start_col--
	}
	if col+1 < world.size {
		end_col++
	}
	count := 0
	for i := start_row; i <= end_row; i++ {
		for j := start_col; j <= end_col; j++ {
			count += int(world.cells[i][j])
		}
	}
	return count - int(world.cells[row][col])
}

// Compute the next state of (row, col) reading only from world
func nextCell(world *Grid, row, col int) uint8 {
	switch countLiveNeighbours(world, row, col) {
	case 2:
		// Survives only if already alive
		return world.cells[row][col]
	case 3:
		return alive
	default:
		return dead
	}
}

// NextState reports whether the cell at (row, col) is alive in the generation
// following world.
func NextState(world *Grid, row, col int) bool {
	return nextCell(world, row, col) == alive
}
