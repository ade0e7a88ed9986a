/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, bit i set means square i is occupied.
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

var fileBb [8]Bitboard
var rankBb [8]Bitboard

func init() {
	var fa Bitboard = 0x0101010101010101
	for f := 0; f < 8; f++ {
		fileBb[f] = fa << uint(f)
	}
	var r1 Bitboard = 0xFF
	for r := 0; r < 8; r++ {
		rankBb[r] = r1 << uint(8*r)
	}
}

// PushSquare sets the bit for sq.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare clears the bit for sq.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Lsb returns the least significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and the bitboard with
// that square cleared.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts every set square of b one step in direction d,
// masking off squares that would wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ fileBb[FileH]) << 1
	case West:
		return (b &^ fileBb[FileA]) >> 1
	case Northeast:
		return (b &^ fileBb[FileH]) << 9
	case Southeast:
		return (b &^ fileBb[FileH]) >> 7
	case Northwest:
		return (b &^ fileBb[FileA]) << 7
	case Southwest:
		return (b &^ fileBb[FileA]) >> 9
	default:
		return BbZero
	}
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(sq1, sq2 Square) int {
	d := int(sq1.File()) - int(sq2.File())
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(sq1, sq2 Square) int {
	d := int(sq1.Rank()) - int(sq2.Rank())
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(sq1, sq2 Square) int {
	fd := FileDistance(sq1, sq2)
	rd := RankDistance(sq1, sq2)
	if fd > rd {
		return fd
	}
	return rd
}

// canStep reports whether stepping sq one square in direction d stays on
// the board (i.e. does not wrap around a file edge).
func canStep(sq Square, d Direction) bool {
	switch d {
	case East, Northeast, Southeast:
		return sq.File() != FileH
	case West, Northwest, Southwest:
		return sq.File() != FileA
	default:
		return true
	}
}

// slidingAttacks walks each direction in dirs from sq until it runs off the
// board or hits an occupied square (which is included as a capture target).
// This is the classical, non-magic attack generator: it trades the O(1)
// magic-bitboard lookup for a straightforward ray walk, which needs no
// precomputed magic numbers or derivation step.
func slidingAttacks(sq Square, occupied Bitboard, dirs []Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for canStep(s, d) {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attacks = attacks.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

var bishopDirs = []Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = []Direction{North, East, South, West}

// BishopAttacks returns the bishop's attack set from sq given occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, bishopDirs)
}

// RookAttacks returns the rook's attack set from sq given occupied.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, rookDirs)
}

// QueenAttacks returns the queen's attack set from sq given occupied.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// GetSliderAttacks dispatches to the sliding attack generator for pt, which
// must be Bishop, Rook or Queen.
func GetSliderAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}

func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 grid of '1'/'.' with rank 8 on top, for
// debugging and test failure output.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// StringGrouped renders b as 8 bytes of binary digits, one rank per line,
// MSB (h-file) first.
func (b Bitboard) StringGrouped() string {
	s := b.String()
	var sb strings.Builder
	for i := 0; i < 64; i += 8 {
		sb.WriteString(s[i : i+8])
		sb.WriteString("\n")
	}
	return sb.String()
}
