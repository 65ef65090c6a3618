package gol

import (
	"fmt"

	"uk.ac.bris.cs/barrierlife/util"
)

// Event represents any Game of Life event that needs to be communicated to the user.
type Event interface {
	// Stringer allows each event to be printed by the viewer or the CLI.
	fmt.Stringer
	// GetCompletedTurns should return the number of fully completed turns.
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Executing State = iota
	Quitting
)

func (state State) String() string {
	switch state {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is an Event notifying the user about the change of state of execution.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// TurnComplete is an Event notifying that all workers have finished a turn
// and the buffers have been swapped.
type TurnComplete struct {
	CompletedTurns int
}

// AliveCellsCount is an Event notifying the user about the number of currently
// alive cells. It is sent every 2 seconds while the engine runs.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// BoardSnapshot carries a private copy of the board after CompletedTurns turns.
type BoardSnapshot struct {
	CompletedTurns int
	World          *Grid
}

// FinalTurnComplete is sent once after the last turn the engine evaluated.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event StateChange) String() string {
	return event.NewState.String()
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return ""
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event BoardSnapshot) String() string {
	return fmt.Sprintf("Snapshot %dx%d", event.World.Size(), event.World.Size())
}

func (event BoardSnapshot) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn Complete, %v alive", len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
