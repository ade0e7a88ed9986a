/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"sort"

	"github.com/kdrehs/chesscore/internal/moveslice"
	. "github.com/kdrehs/chesscore/internal/types"
)

// rootMove pairs a ply-0 move with the value its subtree returned in the
// most recently completed iteration.
type rootMove struct {
	move  Move
	value Value
}

// rootMoveList is the ply-0 move list. Unlike moveslice.MoveSlice it
// tracks a value per move so iterative deepening can re-sort root moves
// by strength between iterations and feed the best line to UCI, without
// requiring Move itself to carry a sort value.
type rootMoveList []rootMove

// newRootMoveList wraps moves, one rootMove per entry, all initially
// unvalued.
func newRootMoveList(moves moveslice.MoveSlice) *rootMoveList {
	rm := make(rootMoveList, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		rm[i] = rootMove{move: moves.At(i), value: ValueNA}
	}
	return &rm
}

// Len returns the number of root moves.
func (rm *rootMoveList) Len() int {
	return len(*rm)
}

// Move returns the move at index i.
func (rm *rootMoveList) Move(i int) Move {
	return (*rm)[i].move
}

// SetValue records the value found for the move at index i in the
// iteration just completed.
func (rm *rootMoveList) SetValue(i int, value Value) {
	(*rm)[i].value = value
}

// Sort orders root moves by descending value so the next, deeper
// iteration searches the strongest candidates from the last iteration
// first.
func (rm *rootMoveList) Sort() {
	sort.SliceStable(*rm, func(i, j int) bool {
		return (*rm)[i].value > (*rm)[j].value
	})
}
