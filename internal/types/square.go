/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import (
	"fmt"
	"regexp"
)

// Square is a board square numbered 0 (a1) to 63 (h8), rank-major,
// file-minor: index = rank*8 + file.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone Square = 64
	SqLength = 64
)

var squareNameRegex = regexp.MustCompile(`^[a-h][1-8]$`)

// MakeSquare builds a square from a file and a rank.
func MakeSquare(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// SquareFromString parses algebraic notation ("e4") into a Square.
// Returns SqNone if s is not a valid square name.
func SquareFromString(s string) Square {
	if !squareNameRegex.MatchString(s) {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return MakeSquare(f, r)
}

// IsValid reports whether sq is within the 0..63 range.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(int(sq) & 7)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(int(sq) >> 3)
}

// Bb returns the single-bit bitboard for this square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// To steps sq one square in the given direction. The caller must make sure
// the step does not wrap around the board edge (use file/rank checks).
func (sq Square) To(d Direction) Square {
	return sq + Square(d)
}

// IsDiagonalTo reports whether sq and other lie on a common diagonal.
func (sq Square) IsDiagonalTo(other Square) bool {
	fd := int(sq.File()) - int(other.File())
	rd := int(sq.Rank()) - int(other.Rank())
	if fd < 0 {
		fd = -fd
	}
	if rd < 0 {
		rd = -rd
	}
	return fd == rd && fd != 0
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}
