package gol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrBadInput is wrapped by every loader error caused by malformed input.
var ErrBadInput = errors.New("bad board input")

// ReadBoard parses the text board format. The first line holds the board size
// and the number of turns. It is followed by one line per row where 'x' marks
// an alive cell. Short rows are padded with dead cells.
func ReadBoard(r io.Reader) (*Grid, int, error) {
	reader := bufio.NewReader(r)
	header, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || header == "") {
		return nil, 0, fmt.Errorf("%w: missing header: %v", ErrBadInput, err)
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, 0, fmt.Errorf("%w: header %q needs size and turns", ErrBadInput, strings.TrimSpace(header))
	}
	size, err := strconv.Atoi(fields[0])
	if err != nil || size <= 0 {
		return nil, 0, fmt.Errorf("%w: size %q must be a positive integer", ErrBadInput, fields[0])
	}
	turns, err := strconv.Atoi(fields[1])
	if err != nil || turns < 0 {
		return nil, 0, fmt.Errorf("%w: turns %q must be a non-negative integer", ErrBadInput, fields[1])
	}

	world := NewGrid(size)
	for row := 0; row != size; row++ {
		line, err := reader.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil, 0, fmt.Errorf("%w: expected %d rows, got %d", ErrBadInput, size, row)
		} else if err != nil && err != io.EOF {
			return nil, 0, fmt.Errorf("%w: row %d: %v", ErrBadInput, row, err)
		}
		line = strings.TrimRight(line, "\r\n")
		for col := 0; col != size && col < len(line); col++ {
			if line[col] == 'x' {
				world.cells[row][col] = alive
			}
		}
	}
	return world, turns, nil
}

// WriteBoard prints world with 'x' for alive and ' ' for dead cells.
func WriteBoard(w io.Writer, world *Grid) error {
	writer := bufio.NewWriter(w)
	line := make([]byte, world.size+1)
	line[world.size] = '\n'
	for _, row := range world.cells {
		for col, cell := range row {
			if cell == alive {
				line[col] = 'x'
			} else {
				line[col] = ' '
			}
		}
		if _, err := writer.Write(line); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// ReadPgm loads a square binary pgm image. Any non-zero pixel is alive.
func ReadPgm(r io.Reader) (*Grid, error) {
	reader := bufio.NewReader(r)
	var magic string
	var width, height, maxval int
	if _, err := fmt.Fscan(reader, &magic, &width, &height, &maxval); err != nil {
		return nil, fmt.Errorf("%w: pgm header: %v", ErrBadInput, err)
	}
	if magic != "P5" {
		return nil, fmt.Errorf("%w: not a pgm file", ErrBadInput)
	}
	if width != height || width <= 0 {
		return nil, fmt.Errorf("%w: pgm image %dx%d is not a square board", ErrBadInput, width, height)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("%w: incorrect maxval/bit depth %d", ErrBadInput, maxval)
	}
	// Single whitespace byte separates the header from pixel data
	if _, err := reader.ReadByte(); err != nil {
		return nil, fmt.Errorf("%w: pgm header: %v", ErrBadInput, err)
	}
	pixels := make([]uint8, width*height)
	if _, err := io.ReadFull(reader, pixels); err != nil {
		return nil, fmt.Errorf("%w: pgm pixels: %v", ErrBadInput, err)
	}
	for i, pixel := range pixels {
		if pixel != 0 {
			pixels[i] = alive
		}
	}
	return NewGridFromData(width, pixels), nil
}

// ReadPgmFile opens path and reads it with ReadPgm.
func ReadPgmFile(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadPgm(file)
}

// WritePgm writes world to dir/name.pgm with alive cells as 255.
func WritePgm(dir, name string, world *Grid) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".pgm")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	_, _ = writer.WriteString("P5\n")
	_, _ = writer.WriteString(strconv.Itoa(world.size))
	_, _ = writer.WriteString(" ")
	_, _ = writer.WriteString(strconv.Itoa(world.size))
	_, _ = writer.WriteString("\n")
	_, _ = writer.WriteString(strconv.Itoa(255))
	_, _ = writer.WriteString("\n")
	for _, row := range world.cells {
		for _, cell := range row {
			_ = writer.WriteByte(cell * 255)
		}
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}
	if err := file.Sync(); err != nil {
		return "", err
	}
	return path, nil
}
