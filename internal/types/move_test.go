/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRoundtrip(t *testing.T) {
	tests := []struct {
		from, to Square
		mt       MoveType
	}{
		{SqE2, SqE4, PawnDoublePush},
		{SqE1, SqG1, CastleKingside},
		{SqE1, SqC1, CastleQueenside},
		{SqE5, SqD6, EnPassant},
		{SqA7, SqA8, PromoteQueen},
		{SqA7, SqB8, PromoteKnight},
		{SqB1, SqC3, Normal},
	}
	for _, test := range tests {
		m := NewMove(test.from, test.to, test.mt)
		assert.Equal(t, test.from, m.From())
		assert.Equal(t, test.to, m.To())
		assert.Equal(t, test.mt, m.Type())
	}
}

func TestMoveIsPromotion(t *testing.T) {
	m := NewMove(SqA7, SqA8, PromoteQueen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionPieceType())

	m2 := NewMove(SqA2, SqA3, Normal)
	assert.False(t, m2.IsPromotion())
}

func TestMoveFlags(t *testing.T) {
	assert.True(t, NewMove(SqE1, SqG1, CastleKingside).IsCastle())
	assert.True(t, NewMove(SqE5, SqD6, EnPassant).IsEnPassant())
	assert.True(t, NewMove(SqE2, SqE4, PawnDoublePush).IsPawnDoublePush())
}

func TestMoveNoneIsZero(t *testing.T) {
	assert.EqualValues(t, 0, MoveNone)
}
