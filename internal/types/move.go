/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

// Move is a packed 16-bit move encoding: bits 0-5 the origin square,
// bits 6-11 the destination square, bits 12-15 a MoveType flag describing
// anything the board state alone cannot tell (castle, en passant,
// promotion piece, double pawn push).
type Move uint16

// MoveType occupies the top 4 bits of a Move.
type MoveType uint16

const (
	Normal MoveType = iota
	PawnDoublePush
	CastleKingside
	CastleQueenside
	EnPassant
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

const (
	moveFromMask = 0x003F
	moveToShift  = 6
	moveToMask   = 0x0FC0
	moveTypeShift = 12
)

// MoveNone is the zero Move value and never denotes a legal move since
// from==to==a1.
const MoveNone Move = 0

// NewMove packs from/to/moveType into a Move.
func NewMove(from, to Square, mt MoveType) Move {
	return Move(uint16(from)&moveFromMask | (uint16(to)<<moveToShift)&moveToMask | uint16(mt)<<moveTypeShift)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(uint16(m) & moveFromMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((uint16(m) & moveToMask) >> moveToShift)
}

// Type returns the move's MoveType flag.
func (m Move) Type() MoveType {
	return MoveType(uint16(m) >> moveTypeShift)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.Type()
	return t == PromoteQueen || t == PromoteRook || t == PromoteBishop || t == PromoteKnight
}

// PromotionPieceType returns the piece type m promotes to. Only valid
// when IsPromotion() is true.
func (m Move) PromotionPieceType() PieceType {
	switch m.Type() {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return PtNone
	}
}

// IsCastle reports whether m is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	return m.Type() == CastleKingside || m.Type() == CastleQueenside
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type() == EnPassant
}

// IsPawnDoublePush reports whether m is a two-square pawn push.
func (m Move) IsPawnDoublePush() bool {
	return m.Type() == PawnDoublePush
}

// IsValid reports whether m could be a legal move's encoding. It does not
// verify legality against any position, only that m isn't the MoveNone
// sentinel.
func (m Move) IsValid() bool {
	return m != MoveNone
}

func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return ""
	case PawnDoublePush:
		return ""
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	case EnPassant:
		return "e.p."
	case PromoteQueen:
		return "q"
	case PromoteRook:
		return "r"
	case PromoteBishop:
		return "b"
	case PromoteKnight:
		return "n"
	default:
		return "?"
	}
}

// String renders m in simple coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Type().String()
	}
	return s
}

// StringUci renders m the way the UCI protocol expects it on the wire.
// Coordinate notation already matches UCI's move format, so this is the
// same as String().
func (m Move) StringUci() string {
	return m.String()
}
