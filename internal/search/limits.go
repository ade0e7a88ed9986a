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
)

// Limits holds everything the UCI "go" command can constrain a search
// with. Zero values mean "unconstrained" except MovesToGo, which defaults
// to 30 when unset.
type Limits struct {
	Infinite bool
	Ponder   bool
	Depth    int
	Nodes    uint64
	Mate     int
	Moves    moveslice.MoveSlice

	TimeControl bool
	MoveTime    time.Duration
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MovesToGo   int
}

// NewSearchLimits creates an empty Limits instance.
func NewSearchLimits() *Limits {
	return &Limits{}
}
