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

func TestCastlingRightsHasAndRemove(t *testing.T) {
	cr := CastlingAll
	assert.True(t, cr.Has(CastleWhiteKingside))
	cr = cr.Remove(CastleWhiteKingside)
	assert.False(t, cr.Has(CastleWhiteKingside))
	assert.True(t, cr.Has(CastleWhiteQueenside))
}

func TestCastlingRightsForColor(t *testing.T) {
	cr := CastlingAll
	assert.Equal(t, CastleWhiteKingside|CastleWhiteQueenside, cr.ForColor(White))
	assert.Equal(t, CastleBlackKingside|CastleBlackQueenside, cr.ForColor(Black))
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAll.String())
	assert.Equal(t, "Kq", (CastleWhiteKingside | CastleBlackQueenside).String())
}
