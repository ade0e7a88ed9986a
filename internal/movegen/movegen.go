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

// Package movegen generates fully legal moves (C4): pins, check evasion,
// castling, en passant and promotions are all resolved here so downstream
// callers (search, perft) never see a pseudo-legal move that needs further
// filtering.
package movegen

import (
	"github.com/kdrehs/chesscore/internal/attacks"
	"github.com/kdrehs/chesscore/internal/moveslice"
	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

// promotionTypes lists the four MoveTypes generated per pawn promotion,
// in the order search's move ordering expects (queen first).
var promotionTypes = [4]MoveType{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// GenerateLegalMoves returns every legal move for the side to move in p.
func GenerateLegalMoves(p *position.Position) moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(64)

	us := p.NextPlayer()
	them := us.Flip()
	kingSq := p.KingSquare(us)
	occupied := p.OccupiedAll()

	checkers := checkersTo(p, kingSq, them)
	numCheckers := checkers.PopCount()

	generateKingMoves(p, us, them, kingSq, occupied, moves)

	if numCheckers >= 2 {
		// double check: only the king can move
		return *moves
	}

	var blockOrCapture Bitboard
	if numCheckers == 1 {
		checkerSq := checkers.Lsb()
		blockOrCapture = checkerSq.Bb()
		if p.PieceAt(checkerSq).TypeOf().IsSlider() {
			blockOrCapture |= squaresBetween(kingSq, checkerSq)
		}
	} else {
		blockOrCapture = BbAll
	}

	pinned, pinRay := pinnedPieces(p, us, them, kingSq)

	generatePawnMoves(p, us, them, kingSq, occupied, blockOrCapture, pinned, pinRay, moves)
	generatePieceMoves(p, us, Knight, kingSq, occupied, blockOrCapture, pinned, pinRay, moves)
	generatePieceMoves(p, us, Bishop, kingSq, occupied, blockOrCapture, pinned, pinRay, moves)
	generatePieceMoves(p, us, Rook, kingSq, occupied, blockOrCapture, pinned, pinRay, moves)
	generatePieceMoves(p, us, Queen, kingSq, occupied, blockOrCapture, pinned, pinRay, moves)

	if numCheckers == 0 {
		generateCastlingMoves(p, us, occupied, moves)
	}

	return *moves
}

// checkersTo returns the bitboard of attackerColor's pieces attacking sq.
func checkersTo(p *position.Position, sq Square, attackerColor Color) Bitboard {
	occ := p.OccupiedAll()
	return attacks.AttacksTo(occ, sq, attackerColor,
		p.PieceTypeBb(attackerColor, Pawn),
		p.PieceTypeBb(attackerColor, Knight),
		p.PieceTypeBb(attackerColor, Bishop),
		p.PieceTypeBb(attackerColor, Rook),
		p.PieceTypeBb(attackerColor, Queen),
		p.PieceTypeBb(attackerColor, King))
}

// pinnedPieces returns the bitboard of us's pieces that are pinned to its
// king, and for each pinned square the ray (line through the king and the
// pinning piece) it is still allowed to move along.
func pinnedPieces(p *position.Position, us, them Color, kingSq Square) (Bitboard, map[Square]Bitboard) {
	pinned := BbZero
	rays := make(map[Square]Bitboard)

	occupied := p.OccupiedAll()
	ourPieces := p.OccupiedBy(us)

	candidates := (attacks.BishopAttacks(kingSq, BbZero) & (p.PieceTypeBb(them, Bishop) | p.PieceTypeBb(them, Queen))) |
		(attacks.RookAttacks(kingSq, BbZero) & (p.PieceTypeBb(them, Rook) | p.PieceTypeBb(them, Queen)))

	for candidates != BbZero {
		var pinnerSq Square
		pinnerSq, candidates = candidates.PopLsb()
		between := squaresBetween(kingSq, pinnerSq)
		blockers := between & occupied
		if blockers.PopCount() != 1 {
			continue
		}
		if blockers&ourPieces == BbZero {
			continue
		}
		pinnedSq := blockers.Lsb()
		pinned = pinned.PushSquare(pinnedSq)
		rays[pinnedSq] = lineThrough(kingSq, pinnerSq)
	}
	return pinned, rays
}

func destMask(sq Square, pinned Bitboard, pinRay map[Square]Bitboard, blockOrCapture Bitboard) Bitboard {
	mask := blockOrCapture
	if pinned.Has(sq) {
		mask &= pinRay[sq]
	}
	return mask
}

func generateKingMoves(p *position.Position, us, them Color, kingSq Square, occupied Bitboard, moves *moveslice.MoveSlice) {
	ownPieces := p.OccupiedBy(us)
	// exclude the king itself from occupancy so sliding x-ray attacks
	// through the king's current square are detected correctly
	occWithoutKing := occupied.PopSquare(kingSq)
	targets := attacks.KingAttacks(kingSq) &^ ownPieces
	for targets != BbZero {
		var to Square
		to, targets = targets.PopLsb()
		if isAttackedWithOccupancy(p, to, them, occWithoutKing) {
			continue
		}
		moves.PushBack(NewMove(kingSq, to, Normal))
	}
}

// isAttackedWithOccupancy checks whether sq is attacked by attackerColor
// given a caller-supplied occupancy bitboard (used to look through a king
// that has been hypothetically removed from the board).
func isAttackedWithOccupancy(p *position.Position, sq Square, attackerColor Color, occ Bitboard) bool {
	return attacks.AttacksTo(occ, sq, attackerColor,
		p.PieceTypeBb(attackerColor, Pawn),
		p.PieceTypeBb(attackerColor, Knight),
		p.PieceTypeBb(attackerColor, Bishop),
		p.PieceTypeBb(attackerColor, Rook),
		p.PieceTypeBb(attackerColor, Queen),
		p.PieceTypeBb(attackerColor, King)) != BbZero
}

func generatePieceMoves(p *position.Position, us Color, pt PieceType, kingSq Square, occupied, blockOrCapture, pinned Bitboard, pinRay map[Square]Bitboard, moves *moveslice.MoveSlice) {
	ownPieces := p.OccupiedBy(us)
	pieces := p.PieceTypeBb(us, pt)
	for pieces != BbZero {
		var from Square
		from, pieces = pieces.PopLsb()
		var atk Bitboard
		if pt == Knight {
			atk = attacks.KnightAttacks(from)
		} else {
			atk = attacks.Attacks(pt, from, occupied)
		}
		targets := atk &^ ownPieces & destMask(from, pinned, pinRay, blockOrCapture)
		for targets != BbZero {
			var to Square
			to, targets = targets.PopLsb()
			moves.PushBack(NewMove(from, to, Normal))
		}
	}
}

func generatePawnMoves(p *position.Position, us, them Color, kingSq Square, occupied, blockOrCapture, pinned Bitboard, pinRay map[Square]Bitboard, moves *moveslice.MoveSlice) {
	pawns := p.PieceTypeBb(us, Pawn)
	push := us.MoveDirection()
	promoRank := us.PromotionRankBb()
	startRank := us.PawnRankBb()

	for pawns != BbZero {
		var from Square
		from, pawns = pawns.PopLsb()
		mask := destMask(from, pinned, pinRay, blockOrCapture)

		// single push
		oneStep := from.To(push)
		if oneStep.IsValid() && !occupied.Has(oneStep) {
			if mask.Has(oneStep) {
				addPawnMove(moves, from, oneStep, promoRank)
			}
			// double push, only from the starting rank and only if both
			// the intermediate and destination squares are empty
			if from.Bb()&startRank != BbZero {
				twoStep := oneStep.To(push)
				if !occupied.Has(twoStep) && mask.Has(twoStep) {
					moves.PushBack(NewMove(from, twoStep, PawnDoublePush))
				}
			}
		}

		// captures
		for _, capDir := range pawnCaptureDirections(us) {
			if !canStepPawn(from, capDir) {
				continue
			}
			to := from.To(capDir)
			if !to.IsValid() {
				continue
			}
			if p.OccupiedBy(them).Has(to) && mask.Has(to) {
				addPawnMove(moves, from, to, promoRank)
			}
		}
	}

	generateEnPassant(p, us, them, blockOrCapture, pinned, pinRay, kingSq, moves)
}

func addPawnMove(moves *moveslice.MoveSlice, from, to Square, promoRank Bitboard) {
	if to.Bb()&promoRank != BbZero {
		for _, mt := range promotionTypes {
			moves.PushBack(NewMove(from, to, mt))
		}
		return
	}
	moves.PushBack(NewMove(from, to, Normal))
}

func pawnCaptureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northwest, Northeast}
	}
	return [2]Direction{Southwest, Southeast}
}

func canStepPawn(sq Square, d Direction) bool {
	switch d {
	case Northeast, Southeast:
		return sq.File() != FileH
	case Northwest, Southwest:
		return sq.File() != FileA
	default:
		return true
	}
}

// generateEnPassant handles the en passant capture, including the classic
// "discovered check along the fourth/fifth rank" edge case: removing both
// the capturing pawn and the captured pawn from the same rank can expose
// the king to a rook or queen that neither pin detection (which only
// tracks single blockers) nor the normal check-evasion mask would catch,
// so this does a cheap rank-only re-check by hand rather than a full
// make/unmake.
func generateEnPassant(p *position.Position, us, them Color, blockOrCapture, pinned Bitboard, pinRay map[Square]Bitboard, kingSq Square, moves *moveslice.MoveSlice) {
	epSq := p.EnPassantSquare()
	if epSq == SqNone {
		return
	}
	capturedPawnSq := epSq.To(them.MoveDirection())
	// when in check the capture must either block on epSq or remove the
	// checking pawn itself
	if blockOrCapture&(epSq.Bb()|capturedPawnSq.Bb()) == BbZero {
		return
	}
	for _, capDir := range pawnCaptureDirections(us) {
		from := epSq.To(-capDir)
		if !from.IsValid() || !canStepPawn(from, capDir) {
			continue
		}
		if p.PieceAt(from) != MakePiece(us, Pawn) {
			continue
		}
		if pinned.Has(from) && pinRay[from]&epSq.Bb() == BbZero {
			continue
		}
		if enPassantExposesCheck(p, us, them, from, capturedPawnSq, kingSq) {
			continue
		}
		moves.PushBack(NewMove(from, epSq, EnPassant))
	}
}

func enPassantExposesCheck(p *position.Position, us, them Color, from, capturedPawnSq, kingSq Square) bool {
	if kingSq.Rank() != from.Rank() {
		return false
	}
	occAfter := p.OccupiedAll().PopSquare(from).PopSquare(capturedPawnSq)
	rookLike := attacks.RookAttacks(kingSq, occAfter) & (p.PieceTypeBb(them, Rook) | p.PieceTypeBb(them, Queen))
	return rookLike != BbZero
}

func generateCastlingMoves(p *position.Position, us Color, occupied Bitboard, moves *moveslice.MoveSlice) {
	them := us.Flip()
	rights := p.CastlingRights()

	type castleSpec struct {
		right    CastlingRights
		kingFrom Square
		kingTo   Square
		between  Bitboard
		passThru [2]Square
		mt       MoveType
	}

	var specs []castleSpec
	if us == White {
		specs = []castleSpec{
			{CastleWhiteKingside, SqE1, SqG1, SqF1.Bb() | SqG1.Bb(), [2]Square{SqE1, SqF1}, CastleKingside},
			{CastleWhiteQueenside, SqE1, SqC1, SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), [2]Square{SqE1, SqD1}, CastleQueenside},
		}
	} else {
		specs = []castleSpec{
			{CastleBlackKingside, SqE8, SqG8, SqF8.Bb() | SqG8.Bb(), [2]Square{SqE8, SqF8}, CastleKingside},
			{CastleBlackQueenside, SqE8, SqC8, SqB8.Bb() | SqC8.Bb() | SqD8.Bb(), [2]Square{SqE8, SqD8}, CastleQueenside},
		}
	}

	for _, spec := range specs {
		if !rights.Has(spec.right) {
			continue
		}
		if occupied&spec.between != BbZero {
			continue
		}
		safe := true
		for _, sq := range spec.passThru {
			if isAttackedWithOccupancy(p, sq, them, occupied) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		if isAttackedWithOccupancy(p, spec.kingTo, them, occupied) {
			continue
		}
		moves.PushBack(NewMove(spec.kingFrom, spec.kingTo, spec.mt))
	}
}

// squaresBetween returns the squares strictly between a and b along a
// common rank, file or diagonal, or BbZero if a and b are not aligned.
func squaresBetween(a, b Square) Bitboard {
	d, ok := stepDirection(a, b)
	if !ok {
		return BbZero
	}
	var bb Bitboard
	s := a.To(d)
	for s != b {
		bb = bb.PushSquare(s)
		s = s.To(d)
	}
	return bb
}

// lineThrough returns every square on the infinite rank, file or diagonal
// line passing through both a and b, or BbZero if they are not aligned.
func lineThrough(a, b Square) Bitboard {
	if a.File() == b.File() || a.Rank() == b.Rank() {
		return (attacks.RookAttacks(a, BbZero) & attacks.RookAttacks(b, BbZero)) | a.Bb() | b.Bb()
	}
	if a.IsDiagonalTo(b) {
		return (attacks.BishopAttacks(a, BbZero) & attacks.BishopAttacks(b, BbZero)) | a.Bb() | b.Bb()
	}
	return BbZero
}

// MoveFromUci looks up the legal move in p matching the given UCI move
// string (e.g. "e2e4" or "e7e8q"). Returns MoveNone if no legal move
// matches.
func MoveFromUci(p *position.Position, uciMove string) Move {
	for _, m := range GenerateLegalMoves(p) {
		if m.String() == uciMove {
			return m
		}
	}
	return MoveNone
}

func stepDirection(a, b Square) (Direction, bool) {
	fd := int(b.File()) - int(a.File())
	rd := int(b.Rank()) - int(a.Rank())
	sign := func(x int) int {
		if x > 0 {
			return 1
		}
		if x < 0 {
			return -1
		}
		return 0
	}
	fs, rs := sign(fd), sign(rd)
	if fd != 0 && rd != 0 && fd != rd && fd != -rd {
		return 0, false
	}
	switch {
	case fs == 0 && rs == 1:
		return North, true
	case fs == 0 && rs == -1:
		return South, true
	case fs == 1 && rs == 0:
		return East, true
	case fs == -1 && rs == 0:
		return West, true
	case fs == 1 && rs == 1:
		return Northeast, true
	case fs == 1 && rs == -1:
		return Southeast, true
	case fs == -1 && rs == -1:
		return Southwest, true
	case fs == -1 && rs == 1:
		return Northwest, true
	default:
		return 0, false
	}
}
