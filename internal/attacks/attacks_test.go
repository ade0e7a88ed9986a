/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kdrehs/chesscore/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	att := KnightAttacks(SqA1)
	assert.Equal(t, 2, att.PopCount())
	assert.True(t, att.Has(SqB3))
	assert.True(t, att.Has(SqC2))
}

func TestKingAttacksCenter(t *testing.T) {
	att := KingAttacks(SqE4)
	assert.Equal(t, 8, att.PopCount())
}

func TestPawnAttacksWhiteVsBlack(t *testing.T) {
	w := PawnAttacks(White, SqE4)
	assert.True(t, w.Has(SqD5))
	assert.True(t, w.Has(SqF5))

	b := PawnAttacks(Black, SqE4)
	assert.True(t, b.Has(SqD3))
	assert.True(t, b.Has(SqF3))
}

func TestBishopAttacksOpenCorner(t *testing.T) {
	att := BishopAttacks(SqA1, BbZero)
	assert.Equal(t, 7, att.PopCount())
}

func TestAttacksToFindsSingleAttacker(t *testing.T) {
	// a lone white rook on a1 sees a8 along the open a-file and is the
	// only attacker found.
	rooks := SqA1.Bb()
	occ := rooks
	attackers := AttacksTo(occ, SqA8, White, BbZero, BbZero, BbZero, rooks, BbZero, BbZero)
	assert.True(t, attackers.Has(SqA1))
	assert.Equal(t, 1, attackers.PopCount())
}

func TestAttacksToNoAttackers(t *testing.T) {
	attackers := AttacksTo(BbZero, SqE4, White, BbZero, BbZero, BbZero, BbZero, BbZero, BbZero)
	assert.Equal(t, BbZero, attackers)
}
