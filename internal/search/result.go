/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"time"

	"github.com/kdrehs/chesscore/internal/moveslice"
	. "github.com/kdrehs/chesscore/internal/types"
)

// Result is what a completed (or time-interrupted) search reports to its
// caller: the best move found and the depth actually reached.
type Result struct {
	BestMove    Move
	PonderMove  Move
	BestValue   Value
	Pv          moveslice.MoveSlice
	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int
	Nodes       uint64
}

func (r *Result) String() string {
	return out.Sprintf("bestmove %s value %s (%d) depth %d nodes %d time %d ms",
		r.BestMove.String(), r.BestValue.String(), r.BestValue, r.SearchDepth, r.Nodes, r.SearchTime.Milliseconds())
}
