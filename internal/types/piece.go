/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

// Piece is a colored chess piece encoded 0..11: White Pawn..King are 0..5,
// Black Pawn..King are 6..11 (kind = color*6 + (pieceType-1)). PieceNone is 12.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = 12
)

var pieceChars = [PieceLength]string{
	"P", "N", "B", "R", "Q", "K",
	"p", "n", "b", "r", "q", "k",
}

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt) - 1)
}

// IsValid reports whether p is one of the 12 real piece values.
func (p Piece) IsValid() bool {
	return p < PieceLength
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	if p < 6 {
		return White
	}
	return Black
}

// TypeOf returns the piece type (color-independent) of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(int(p)%6) + 1
}

// ValueOf returns the material value of p.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// PieceFromChar parses a single FEN piece letter ("P","n",...) into a Piece.
// Returns PieceNone if s does not match a known letter.
func PieceFromChar(s string) Piece {
	for i, c := range pieceChars {
		if c == s {
			return Piece(i)
		}
	}
	return PieceNone
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return pieceChars[p]
}
