/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kdrehs/chesscore/internal/types"
)

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, WhiteRook, p.PieceAt(SqA1))
	assert.Equal(t, BlackKing, p.PieceAt(SqE8))
	assert.Equal(t, StartFen, p.Fen())
}

func TestFenRoundtrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestInvalidFenRejected(t *testing.T) {
	_, err := NewPositionFen("garbage")
	assert.Error(t, err)
}

func TestDoMoveUndoMoveRestoresState(t *testing.T) {
	p := NewPosition()
	before := p.Fen()
	beforeKey := p.ZobristKey()

	m := NewMove(SqE2, SqE4, PawnDoublePush)
	p.DoMove(m)
	assert.NotEqual(t, before, p.Fen())
	// no black pawn stands next to e4, so no en passant square is recorded
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, Black, p.NextPlayer())

	p.UndoMove()
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	beforeKey := p.ZobristKey()

	m := NewMove(SqE5, SqD6, EnPassant)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
	assert.Equal(t, SqNone, p.EnPassantSquare())

	p.UndoMove()
	assert.Equal(t, BlackPawn, p.PieceAt(SqD5))
	assert.Equal(t, PieceNone, p.PieceAt(SqD6))
	assert.Equal(t, WhitePawn, p.PieceAt(SqE5))
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestCastlingKingside(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	m := NewMove(SqE1, SqG1, CastleKingside)
	p.DoMove(m)
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.False(t, p.CastlingRights().Has(CastleWhiteKingside))
	assert.False(t, p.CastlingRights().Has(CastleWhiteQueenside))

	p.UndoMove()
	assert.Equal(t, WhiteKing, p.PieceAt(SqE1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqH1))
	assert.True(t, p.CastlingRights().Has(CastleWhiteKingside))
}

func TestRookCaptureRemovesCastlingRights(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/6b1/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)

	bishopCapturesRook := NewMove(SqG2, SqH1, Normal)
	p.DoMove(bishopCapturesRook)
	assert.False(t, p.CastlingRights().Has(CastleWhiteKingside))
	assert.True(t, p.CastlingRights().Has(CastleBlackKingside))
}

func TestPromotion(t *testing.T) {
	p, err := NewPositionFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	assert.NoError(t, err)
	beforeKey := p.ZobristKey()

	m := NewMove(SqA7, SqA8, PromoteQueen)
	p.DoMove(m)
	assert.Equal(t, WhiteQueen, p.PieceAt(SqA8))
	assert.Equal(t, PieceNone, p.PieceAt(SqA7))

	p.UndoMove()
	assert.Equal(t, WhitePawn, p.PieceAt(SqA7))
	assert.Equal(t, PieceNone, p.PieceAt(SqA8))
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestCountRepetitions(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, 1, p.CountRepetitions())

	p.DoMove(NewMove(SqG1, SqF3, Normal))
	p.DoMove(NewMove(SqG8, SqF6, Normal))
	p.DoMove(NewMove(SqF3, SqG1, Normal))
	p.DoMove(NewMove(SqF6, SqG8, Normal))
	assert.Equal(t, 2, p.CountRepetitions())

	p.DoMove(NewMove(SqG1, SqF3, Normal))
	p.DoMove(NewMove(SqG8, SqF6, Normal))
	p.DoMove(NewMove(SqF3, SqG1, Normal))
	p.DoMove(NewMove(SqF6, SqG8, Normal))
	assert.Equal(t, 3, p.CountRepetitions())
}

func TestHasInsufficientMaterial(t *testing.T) {
	p, err := NewPositionFen("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())

	p2, err := NewPositionFen("8/8/8/4k3/8/8/4KN2/8 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p2.HasInsufficientMaterial())

	assert.False(t, NewPosition().HasInsufficientMaterial())
}

func TestIsAttacked(t *testing.T) {
	p := NewPosition()
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.False(t, p.IsAttacked(SqE5, White))
}

func TestHasCheck(t *testing.T) {
	p, err := NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.True(t, p.HasCheck())
}
