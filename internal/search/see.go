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

package search

import (
	"github.com/kdrehs/chesscore/internal/attacks"
	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

// see runs a static exchange evaluation (C8) on the capture sequence that
// would follow move on square move.To(), walking least-valuable-attacker
// first without actually playing any moves. It returns the net material
// gain for the side making move, from that side's point of view.
func see(p *position.Position, move Move) Value {
	if move.IsEnPassant() {
		// the pawn being captured is never the most valuable piece on the
		// square, and the preceding move was never itself a capture, so
		// en passant exchanges are always at least neutral for the side
		// capturing; treat it as a small fixed gain rather than modelling it.
		return 100
	}

	gain := make([]Value, 32)

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.PieceAt(fromSquare)
	nextPlayer := p.NextPlayer()

	occupied := p.OccupiedAll()
	remainingAttacks := seeAttacksTo(p, toSquare, occupied, White) | seeAttacksTo(p, toSquare, occupied, Black)

	gain[ply] = p.PieceAt(toSquare).ValueOf()

	for {
		ply++
		nextPlayer = nextPlayer.Flip()

		if move.IsPromotion() && ply == 1 {
			gain[ply] = move.PromotionPieceType().ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.ValueOf() - gain[ply-1]
		}

		// if the exchange is already losing for the side to move at this
		// ply even in the best case, stop: deeper plies cannot change the
		// backward-folded result.
		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		remainingAttacks = remainingAttacks.PopSquare(fromSquare)
		occupied = occupied.PopSquare(fromSquare)

		remainingAttacks |= seeRevealedAttacks(p, toSquare, occupied, White) | seeRevealedAttacks(p, toSquare, occupied, Black)

		fromSquare = leastValuableAttacker(p, remainingAttacks, nextPlayer)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.PieceAt(fromSquare)
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
		ply--
	}

	return gain[0]
}

// seeAttacksTo returns every piece of color attacking square given the
// supplied occupancy, used both for the initial attacker set and, with a
// reduced occupancy, to find attackers revealed by removing a blocker.
func seeAttacksTo(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return attacks.AttacksTo(occupied, square, color,
		p.PieceTypeBb(color, Pawn),
		p.PieceTypeBb(color, Knight),
		p.PieceTypeBb(color, Bishop),
		p.PieceTypeBb(color, Rook),
		p.PieceTypeBb(color, Queen),
		p.PieceTypeBb(color, King))
}

// seeRevealedAttacks returns only the slider attacks reaching square under
// occupied, since non-sliders can never be revealed by removing a piece
// elsewhere on the board.
func seeRevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	sliders := p.PieceTypeBb(color, Rook) | p.PieceTypeBb(color, Queen)
	rookLike := attacks.RookAttacks(square, occupied) & sliders & occupied
	diagSliders := p.PieceTypeBb(color, Bishop) | p.PieceTypeBb(color, Queen)
	bishopLike := attacks.BishopAttacks(square, occupied) & diagSliders & occupied
	return rookLike | bishopLike
}

// leastValuableAttacker picks the cheapest attacker of color in attackers,
// the piece SEE must always play next to keep the exchange value-optimal
// for the side on move.
func leastValuableAttacker(p *position.Position, attackers Bitboard, color Color) Square {
	order := []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, pt := range order {
		if bb := attackers & p.PieceTypeBb(color, pt); bb != BbZero {
			return bb.Lsb()
		}
	}
	return SqNone
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
