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

// Package position implements the bitboard position representation (C1),
// incremental Zobrist hashing (C6) and make/unmake (C5).
package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kdrehs/chesscore/internal/assert"
	"github.com/kdrehs/chesscore/internal/attacks"
	. "github.com/kdrehs/chesscore/internal/types"
	"github.com/kdrehs/chesscore/internal/zobrist"
)

// StartFen is the standard chess starting position in Forsyth-Edwards
// Notation.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoRecord captures everything DoMove mutates that the move itself does
// not already encode, so UndoMove can restore the position exactly.
type undoRecord struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	zobristKey      Key
}

// Position is the full bitboard + mailbox state of a chess game at one
// point in time. Zero value is not a valid position; use NewPosition or
// NewPositionFen.
type Position struct {
	piecesBb   [PieceLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	board      [SqLength]Piece

	nextPlayer      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int

	zobristKey Key

	// history is the stack of undo records pushed by DoMove and popped by
	// UndoMove; its length is the number of moves made since the position
	// was created.
	history []undoRecord

	// keyHistory is every zobrist key seen since the position's creation,
	// in order, used for repetition counting. It is not truncated by
	// halfmove-clock resets: repetition counting here is scoped to "since
	// this Position object was created", not across a captured/irreversible
	// boundary; callers that want strict reset semantics create a new
	// Position at that boundary.
	keyHistory []Key
}

// NewPosition creates a position set up for the standard chess start.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen creates a position from a FEN string.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	for i := range p.board {
		p.board[i] = PieceNone
	}
	p.enPassantSquare = SqNone
	if err := p.setupFen(fen); err != nil {
		return nil, err
	}
	p.keyHistory = append(p.keyHistory, p.zobristKey)
	return p, nil
}

var fenFieldsRegex = regexp.MustCompile(`\s+`)

// setupFen parses a FEN string and initializes all fields, including the
// zobrist key (computed from scratch, not incrementally, since this is the
// one place a position's history doesn't exist yet).
func (p *Position) setupFen(fen string) error {
	fields := fenFieldsRegex.Split(strings.TrimSpace(fen), -1)
	if len(fields) < 4 {
		return fmt.Errorf("invalid fen (need at least 4 fields): %q", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid fen board (need 8 ranks): %q", fen)
	}
	for i := range p.piecesBb {
		p.piecesBb[i] = BbZero
	}
	p.occupiedBb[White] = BbZero
	p.occupiedBb[Black] = BbZero
	for i := range p.board {
		p.board[i] = PieceNone
	}

	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return fmt.Errorf("invalid fen piece char %q: %q", c, fen)
			}
			if int(f) > 7 {
				return fmt.Errorf("invalid fen rank (too many squares): %q", fen)
			}
			sq := MakeSquare(f, r)
			p.putPiece(pc, sq)
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return fmt.Errorf("invalid fen side to move %q: %q", fields[1], fen)
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights |= CastleWhiteKingside
			case 'Q':
				p.castlingRights |= CastleWhiteQueenside
			case 'k':
				p.castlingRights |= CastleBlackKingside
			case 'q':
				p.castlingRights |= CastleBlackQueenside
			default:
				return fmt.Errorf("invalid fen castling char %q: %q", c, fen)
			}
		}
	}

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq == SqNone {
			return fmt.Errorf("invalid fen en passant square %q: %q", fields[3], fen)
		}
		p.enPassantSquare = sq
	}

	p.halfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("invalid fen halfmove clock %q: %q", fields[4], fen)
		}
		p.halfmoveClock = n
	}

	p.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("invalid fen fullmove number %q: %q", fields[5], fen)
		}
		p.fullmoveNumber = n
	}

	p.zobristKey = p.computeZobristKey()
	return nil
}

// computeZobristKey recomputes the position's hash from scratch by
// iterating over all state. Used only at construction time; DoMove/UndoMove
// maintain the key incrementally from then on.
func (p *Position) computeZobristKey() Key {
	var key Key
	for pc := Piece(0); pc < PieceLength; pc++ {
		bb := p.piecesBb[pc]
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			key ^= zobrist.Pieces[pc][sq]
		}
	}
	key ^= zobrist.Castling[p.castlingRights]
	if p.enPassantSquare != SqNone {
		key ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
	}
	if p.nextPlayer == Black {
		key ^= zobrist.SideToMove
	}
	return key
}

// --- accessors ---

// PieceAt returns the piece standing on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of every piece of kind pc.
func (p *Position) PiecesBb(pc Piece) Bitboard {
	return p.piecesBb[pc]
}

// PieceTypeBb returns the bitboard of pieces of color c and type pt.
func (p *Position) PieceTypeBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[MakePiece(c, pt)]
}

// OccupiedBy returns every square occupied by a piece of color c.
func (p *Position) OccupiedBy(c Color) Bitboard {
	return p.occupiedBb[c]
}

// OccupiedAll returns every occupied square on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// NextPlayer returns the color to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the square a pawn can capture en passant onto,
// or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn move.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current fullmove counter.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// KingSquare returns the square of the king of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.piecesBb[MakePiece(c, King)].Lsb()
}

// GamePhase returns the position's game phase score, 24 for full material
// down to 0 for a bare king-and-pawn endgame.
func (p *Position) GamePhase() int {
	phase := 0
	for pt := Knight; pt <= Queen; pt++ {
		phase += p.PieceTypeBb(White, pt).PopCount() * pt.GamePhaseValue()
		phase += p.PieceTypeBb(Black, pt).PopCount() * pt.GamePhaseValue()
	}
	if phase > 24 {
		phase = 24
	}
	return phase
}

// GamePhaseFactor returns GamePhase normalized to [0, 1], 1 at the start
// of the game and falling toward 0 as material is traded off.
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.GamePhase()) / 24.0
}

// Material returns the sum of piece values for every piece of color c,
// including pawns and the king's nominal value.
func (p *Position) Material(c Color) Value {
	var v Value
	for pt := Pawn; pt <= King; pt++ {
		v += Value(p.PieceTypeBb(c, pt).PopCount()) * pt.ValueOf()
	}
	return v
}

// MaterialNonPawn returns Material(c) excluding pawns and the king, used by
// null move pruning to guard against zugzwang-prone endgames.
func (p *Position) MaterialNonPawn(c Color) Value {
	var v Value
	for pt := Knight; pt <= Queen; pt++ {
		v += Value(p.PieceTypeBb(c, pt).PopCount()) * pt.ValueOf()
	}
	return v
}

// --- board mutation primitives ---

func (p *Position) putPiece(pc Piece, sq Square) {
	assert.Assert(p.board[sq] == PieceNone, "putPiece onto occupied square %s", sq)
	p.board[sq] = pc
	p.piecesBb[pc] = p.piecesBb[pc].PushSquare(sq)
	p.occupiedBb[pc.ColorOf()] = p.occupiedBb[pc.ColorOf()].PushSquare(sq)
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	assert.Assert(pc != PieceNone, "removePiece from empty square %s", sq)
	p.board[sq] = PieceNone
	p.piecesBb[pc] = p.piecesBb[pc].PopSquare(sq)
	p.occupiedBb[pc.ColorOf()] = p.occupiedBb[pc.ColorOf()].PopSquare(sq)
	return pc
}

func (p *Position) movePiece(from, to Square) Piece {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
	return pc
}

// --- make / unmake (C5) ---

// DoMove applies move to the position. The caller is responsible for only
// passing moves produced by the legal move generator; DoMove does not
// re-validate legality.
func (p *Position) DoMove(move Move) {
	from := move.From()
	to := move.To()
	moved := p.board[from]
	assert.Assert(moved != PieceNone, "DoMove from empty square %s", from)

	rec := undoRecord{
		move:            move,
		capturedPiece:   PieceNone,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfmoveClock:   p.halfmoveClock,
		zobristKey:      p.zobristKey,
	}

	us := p.nextPlayer
	them := us.Flip()

	// clear en passant key contribution before recomputing it
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
		p.enPassantSquare = SqNone
	}

	halfmoveReset := moved.TypeOf() == Pawn

	switch move.Type() {
	case EnPassant:
		capturedSq := to.To(them.MoveDirection())
		captured := p.removePiece(capturedSq)
		rec.capturedPiece = captured
		p.zobristKey ^= zobrist.Pieces[captured][capturedSq]
		p.zobristKey ^= zobrist.Pieces[moved][from]
		p.movePiece(from, to)
		p.zobristKey ^= zobrist.Pieces[moved][to]
		halfmoveReset = true

	case CastleKingside, CastleQueenside:
		p.zobristKey ^= zobrist.Pieces[moved][from]
		p.movePiece(from, to)
		p.zobristKey ^= zobrist.Pieces[moved][to]
		rookFrom, rookTo := castleRookSquares(us, move.Type())
		rook := p.board[rookFrom]
		p.zobristKey ^= zobrist.Pieces[rook][rookFrom]
		p.movePiece(rookFrom, rookTo)
		p.zobristKey ^= zobrist.Pieces[rook][rookTo]

	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		if p.board[to] != PieceNone {
			captured := p.removePiece(to)
			rec.capturedPiece = captured
			p.zobristKey ^= zobrist.Pieces[captured][to]
		}
		p.removePiece(from)
		p.zobristKey ^= zobrist.Pieces[moved][from]
		promoted := MakePiece(us, move.PromotionPieceType())
		p.putPiece(promoted, to)
		p.zobristKey ^= zobrist.Pieces[promoted][to]
		halfmoveReset = true

	default: // Normal, PawnDoublePush
		if p.board[to] != PieceNone {
			captured := p.removePiece(to)
			rec.capturedPiece = captured
			p.zobristKey ^= zobrist.Pieces[captured][to]
			halfmoveReset = true
		}
		p.zobristKey ^= zobrist.Pieces[moved][from]
		p.movePiece(from, to)
		p.zobristKey ^= zobrist.Pieces[moved][to]

		if move.Type() == PawnDoublePush {
			passed := from.To(us.MoveDirection())
			if p.hasAdjacentPawn(to, them) {
				p.enPassantSquare = passed
				p.zobristKey ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
			}
		}
	}

	// Castling rights are lost when the king or a rook moves away from its
	// home square, or when a rook is captured on its home square -- the
	// capture case applies even when it's the opponent's rook being taken,
	// which is why this check runs on both from and to unconditionally.
	newRights := p.castlingRights
	newRights &^= castlingLostBy(from)
	newRights &^= castlingLostBy(to)
	if newRights != p.castlingRights {
		p.zobristKey ^= zobrist.Castling[p.castlingRights]
		p.castlingRights = newRights
		p.zobristKey ^= zobrist.Castling[p.castlingRights]
	}

	if halfmoveReset {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}

	p.nextPlayer = them
	p.zobristKey ^= zobrist.SideToMove

	p.history = append(p.history, rec)
	p.keyHistory = append(p.keyHistory, p.zobristKey)
}

// UndoMove reverts the most recently applied move. Calling UndoMove with
// no moves made is a programming error.
func (p *Position) UndoMove() {
	assert.Assert(len(p.history) > 0, "UndoMove called with empty history")
	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	move := rec.move
	from := move.From()
	to := move.To()

	them := p.nextPlayer
	us := them.Flip()

	switch move.Type() {
	case EnPassant:
		p.movePiece(to, from)
		capturedSq := to.To(them.MoveDirection())
		p.putPiece(rec.capturedPiece, capturedSq)

	case CastleKingside, CastleQueenside:
		p.movePiece(to, from)
		rookFrom, rookTo := castleRookSquares(us, move.Type())
		p.movePiece(rookTo, rookFrom)

	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		p.removePiece(to)
		p.putPiece(MakePiece(us, Pawn), from)
		if rec.capturedPiece != PieceNone {
			p.putPiece(rec.capturedPiece, to)
		}

	default:
		p.movePiece(to, from)
		if rec.capturedPiece != PieceNone {
			p.putPiece(rec.capturedPiece, to)
		}
	}

	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.halfmoveClock = rec.halfmoveClock
	p.zobristKey = rec.zobristKey
	p.nextPlayer = us
	if us == Black {
		p.fullmoveNumber--
	}
}

// DoNullMove applies a null move: the side to move passes without moving
// any piece, used by null move pruning to test whether the opponent is
// already doing well enough that our own move is unnecessary.
func (p *Position) DoNullMove() {
	rec := undoRecord{
		move:            MoveNone,
		capturedPiece:   PieceNone,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfmoveClock:   p.halfmoveClock,
		zobristKey:      p.zobristKey,
	}
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
		p.enPassantSquare = SqNone
	}
	p.halfmoveClock++
	if p.nextPlayer == Black {
		p.fullmoveNumber++
	}
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.SideToMove

	p.history = append(p.history, rec)
	p.keyHistory = append(p.keyHistory, p.zobristKey)
}

// UndoNullMove reverts the most recently applied DoNullMove.
func (p *Position) UndoNullMove() {
	assert.Assert(len(p.history) > 0, "UndoNullMove called with empty history")
	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	them := p.nextPlayer
	us := them.Flip()

	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.halfmoveClock = rec.halfmoveClock
	p.zobristKey = rec.zobristKey
	p.nextPlayer = us
	if us == Black {
		p.fullmoveNumber--
	}
}

// LastMove returns the most recently applied move, or MoveNone if no move
// has been made on this position yet.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return MoveNone
	}
	return p.history[len(p.history)-1].move
}

// LastCapturedPiece returns the piece captured by the most recently applied
// move, or PieceNone if that move did not capture (or none has been made).
func (p *Position) LastCapturedPiece() Piece {
	if len(p.history) == 0 {
		return PieceNone
	}
	return p.history[len(p.history)-1].capturedPiece
}

// WasCapturingMove reports whether the most recently applied move captured
// a piece.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}

// hasAdjacentPawn reports whether a pawn of color c stands on a square
// adjacent (same rank, file +/-1) to sq. Used to decide whether a double
// pawn push actually creates an en passant opportunity, rather than
// recording a square no pawn could ever capture on -- that would make two
// positions differing only by an unreachable ep_square hash differently.
func (p *Position) hasAdjacentPawn(sq Square, c Color) bool {
	pawns := p.PieceTypeBb(c, Pawn)
	f := sq.File()
	r := sq.Rank()
	if f > FileA {
		if pawns.Has(MakeSquare(f-1, r)) {
			return true
		}
	}
	if f < FileH {
		if pawns.Has(MakeSquare(f+1, r)) {
			return true
		}
	}
	return false
}

// castleRookSquares returns the rook's from/to squares for a castle of the
// given type by color c.
func castleRookSquares(c Color, mt MoveType) (Square, Square) {
	if c == White {
		if mt == CastleKingside {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if mt == CastleKingside {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// castlingLostBy returns the castling rights that are forfeited forever
// once sq is vacated or captured on (king start square or either rook
// start square).
func castlingLostBy(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastleWhiteKingside | CastleWhiteQueenside
	case SqA1:
		return CastleWhiteQueenside
	case SqH1:
		return CastleWhiteKingside
	case SqE8:
		return CastleBlackKingside | CastleBlackQueenside
	case SqA8:
		return CastleBlackQueenside
	case SqH8:
		return CastleBlackKingside
	default:
		return CastlingNone
	}
}

// --- queries used by move generation and search ---

// IsAttacked reports whether sq is attacked by any piece of color
// attackerColor. En passant captures are not considered.
func (p *Position) IsAttacked(sq Square, attackerColor Color) bool {
	occ := p.OccupiedAll()
	pawns := p.PieceTypeBb(attackerColor, Pawn)
	knights := p.PieceTypeBb(attackerColor, Knight)
	bishops := p.PieceTypeBb(attackerColor, Bishop)
	rooks := p.PieceTypeBb(attackerColor, Rook)
	queens := p.PieceTypeBb(attackerColor, Queen)
	kings := p.PieceTypeBb(attackerColor, King)
	return attacks.AttacksTo(occ, sq, attackerColor, pawns, knights, bishops, rooks, queens, kings) != BbZero
}

// HasCheck reports whether the side to move is currently in check.
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.KingSquare(p.nextPlayer), p.nextPlayer.Flip())
}

// GivesCheck reports whether playing move would leave the opponent in
// check. It makes and unmakes the move to find out, so it is relatively
// expensive; callers on a hot path should prefer cheaper heuristics where
// possible.
func (p *Position) GivesCheck(move Move) bool {
	p.DoMove(move)
	check := p.IsAttacked(p.KingSquare(p.nextPlayer), p.nextPlayer.Flip())
	p.UndoMove()
	return check
}

// IsCapturingMove reports whether move captures a piece (including en
// passant).
func (p *Position) IsCapturingMove(move Move) bool {
	if move.IsEnPassant() {
		return true
	}
	return p.board[move.To()] != PieceNone
}

// CountRepetitions returns how many times the current position's Zobrist
// key has occurred in this Position's own move history, including the
// current occurrence. A threefold repetition draw claim corresponds to a
// return value of 3 or more.
func (p *Position) CountRepetitions() int {
	count := 0
	current := p.zobristKey
	for _, k := range p.keyHistory {
		if k == current {
			count++
		}
	}
	return count
}

// HasInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves (K vs K, K+N vs K,
// K+B vs K, or K+B vs K+B with same-colored bishops).
func (p *Position) HasInsufficientMaterial() bool {
	if p.piecesBb[MakePiece(White, Pawn)] != BbZero || p.piecesBb[MakePiece(Black, Pawn)] != BbZero {
		return false
	}
	if p.piecesBb[MakePiece(White, Rook)] != BbZero || p.piecesBb[MakePiece(Black, Rook)] != BbZero {
		return false
	}
	if p.piecesBb[MakePiece(White, Queen)] != BbZero || p.piecesBb[MakePiece(Black, Queen)] != BbZero {
		return false
	}

	whiteMinor := p.piecesBb[MakePiece(White, Knight)].PopCount() + p.piecesBb[MakePiece(White, Bishop)].PopCount()
	blackMinor := p.piecesBb[MakePiece(Black, Knight)].PopCount() + p.piecesBb[MakePiece(Black, Bishop)].PopCount()

	if whiteMinor == 0 && blackMinor == 0 {
		return true
	}
	if whiteMinor+blackMinor == 1 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 1 {
		wb := p.piecesBb[MakePiece(White, Bishop)]
		bb := p.piecesBb[MakePiece(Black, Bishop)]
		if wb != BbZero && bb != BbZero {
			return squareColor(wb.Lsb()) == squareColor(bb.Lsb())
		}
	}
	return false
}

func squareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) & 1
}

// --- string rendering ---

// Fen renders the position as a Forsyth-Edwards Notation string.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			pc := p.board[sq]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.nextPlayer.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// StringBoard renders an 8x8 ASCII board with rank 8 on top, for debugging.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			pc := p.board[sq]
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Position) String() string {
	return p.Fen()
}
