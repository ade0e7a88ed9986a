/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

func TestGoodCaptureOutranksQuietMove(t *testing.T) {
	// S6-style setup: white knight d3 and bishop c3 can both reach e5.
	// Nxe5 wins a pawn outright (undefended); a quiet king move should
	// score lower.
	p, err := position.NewPositionFen("4k3/8/8/4p3/8/2BN4/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	capture := NewMove(SqD3, SqE5, Normal)
	quiet := NewMove(SqE1, SqD2, Normal)

	assert.Greater(t, scoreMove(p, capture), scoreMove(p, quiet))
}

func TestPromotionRankingDemotesUnderPromotions(t *testing.T) {
	p, err := position.NewPositionFen("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	queenPromo := NewMove(SqE7, SqE8, PromoteQueen)
	rookPromo := NewMove(SqE7, SqE8, PromoteRook)

	assert.Greater(t, scoreMove(p, queenPromo), scoreMove(p, rookPromo))
}

func TestOrderMovesSortsDescending(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/4p3/8/2BN4/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := []Move{NewMove(SqE1, SqD2, Normal), NewMove(SqD3, SqE5, Normal)}
	ordered := orderMoves(p, moves)
	assert.Equal(t, NewMove(SqD3, SqE5, Normal), ordered[0].move)
}
