package gol

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadBoard(t *testing.T) {
	input := "4 7\n" +
		" x  \n" +
		"xx\r\n" +
		"\n" +
		"   xextra"
	world, turns, err := ReadBoard(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if turns != 7 {
		t.Errorf("turns = %d, want 7", turns)
	}
	want := gridFromRows(
		".x..",
		"xx..",
		"....",
		"...x",
	)
	if !world.Equal(want) {
		t.Errorf("board = %v", gridRows(world))
	}
}

func TestReadBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing turns", "4\n"},
		{"bad size", "four 7\n"},
		{"zero size", "0 7\n"},
		{"negative turns", "2 -1\nxx\nxx\n"},
		{"short board", "3 1\nxxx\nxxx\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, _, err := ReadBoard(strings.NewReader(test.input)); !errors.Is(err, ErrBadInput) {
				t.Errorf("ReadBoard() = %v, want ErrBadInput", err)
			}
		})
	}
}

func TestWriteBoard(t *testing.T) {
	var out bytes.Buffer
	if err := WriteBoard(&out, gridFromRows("x..", ".x.", "..x")); err != nil {
		t.Fatal(err)
	}
	want := "x  \n x \n  x\n"
	if out.String() != want {
		t.Errorf("WriteBoard = %q, want %q", out.String(), want)
	}
}

func TestBoardTextRoundTrip(t *testing.T) {
	world := randomGrid(12, 13)
	var out bytes.Buffer
	out.WriteString("12 0\n")
	if err := WriteBoard(&out, world); err != nil {
		t.Fatal(err)
	}
	loaded, _, err := ReadBoard(&out)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(world) {
		t.Error("board changed after write and read")
	}
}

func TestPgmRoundTrip(t *testing.T) {
	dir := t.TempDir()
	world := randomGrid(16, 21)
	path, err := WritePgm(dir, "16x16x0", world)
	if err != nil {
		t.Fatalf("WritePgm: %v", err)
	}
	if path != filepath.Join(dir, "16x16x0.pgm") {
		t.Errorf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P5\n16 16\n255\n")) {
		t.Errorf("header = %q", data[:13])
	}
	loaded, err := ReadPgmFile(path)
	if err != nil {
		t.Fatalf("ReadPgmFile: %v", err)
	}
	if !loaded.Equal(world) {
		t.Error("board changed after pgm write and read")
	}
}

func TestReadPgmErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not pgm", "P2\n2 2\n255\n\x00\x00\x00\x00"},
		{"not square", "P5\n2 3\n255\n\x00\x00\x00\x00\x00\x00"},
		{"bit depth", "P5\n2 2\n1\n\x00\x00\x00\x00"},
		{"truncated", "P5\n2 2\n255\n\x00\x00"},
		{"no header", "P5"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ReadPgm(strings.NewReader(test.input)); !errors.Is(err, ErrBadInput) {
				t.Errorf("ReadPgm() = %v, want ErrBadInput", err)
			}
		})
	}
}
