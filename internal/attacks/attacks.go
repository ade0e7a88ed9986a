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

// Package attacks is the attack oracle (C2). It hands out pseudo-attack
// bitboards for knights, kings and pawns from precomputed tables, and
// sliding attacks for bishops/rooks/queens via a classical ray walk.
// Every other package treats this as opaque: given a square and an
// occupancy bitboard, what does it attack. Nothing here knows about whole
// positions or move legality.
package attacks

import (
	. "github.com/kdrehs/chesscore/internal/types"
)

var knightAttacks [SqLength]Bitboard
var kingAttacks [SqLength]Bitboard
var pawnAttacks [2][SqLength]Bitboard

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.File())
		r := int(sq.Rank())

		var knight Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight = knight.PushSquare(MakeSquare(File(nf), Rank(nr)))
			}
		}
		knightAttacks[sq] = knight

		var king Bitboard
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				king = king.PushSquare(MakeSquare(File(nf), Rank(nr)))
			}
		}
		kingAttacks[sq] = king

		if r < 7 {
			var wp Bitboard
			if f > 0 {
				wp = wp.PushSquare(MakeSquare(File(f-1), Rank(r+1)))
			}
			if f < 7 {
				wp = wp.PushSquare(MakeSquare(File(f+1), Rank(r+1)))
			}
			pawnAttacks[White][sq] = wp
		}
		if r > 0 {
			var bp Bitboard
			if f > 0 {
				bp = bp.PushSquare(MakeSquare(File(f-1), Rank(r-1)))
			}
			if f < 7 {
				bp = bp.PushSquare(MakeSquare(File(f+1), Rank(r-1)))
			}
			pawnAttacks[Black][sq] = bp
		}
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the bishop's attack set from sq given occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return GetSliderAttacks(Bishop, sq, occupied)
}

// RookAttacks returns the rook's attack set from sq given occupied.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return GetSliderAttacks(Rook, sq, occupied)
}

// QueenAttacks returns the queen's attack set from sq given occupied.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// Attacks returns the pseudo-attack set of a piece of type pt standing on
// sq, given the board's current occupancy. Non-sliding piece types ignore
// occupied; King is treated as non-sliding.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop, Rook, Queen:
		return GetSliderAttacks(pt, sq, occupied)
	default:
		return BbZero
	}
}

// AttacksTo returns the set of squares occupied by pieces of attackerColor
// that attack target, given the board occupancy and per-piece-type
// bitboards for attackerColor. Does not consider en passant; callers that
// need en-passant-aware attacker detection add it separately since it
// depends on the position's en-passant square, not just occupancy.
func AttacksTo(occupied Bitboard, target Square, attackerColor Color, pawns, knights, bishops, rooks, queens, kings Bitboard) Bitboard {
	var attackers Bitboard
	attackers |= PawnAttacks(attackerColor.Flip(), target) & pawns
	attackers |= KnightAttacks(target) & knights
	attackers |= KingAttacks(target) & kings
	attackers |= BishopAttacks(target, occupied) & (bishops | queens)
	attackers |= RookAttacks(target, occupied) & (rooks | queens)
	return attackers
}
