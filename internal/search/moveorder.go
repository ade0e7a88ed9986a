/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"sort"

	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

// scoreMove implements the C9 move-ordering contract: good captures sort
// ahead of checks, ahead of promotions, ahead of castling, ahead of quiet
// piece moves, ahead of quiet pawn/king moves. The numeric weights are
// heuristic; only that category ordering is load-bearing.
func scoreMove(p *position.Position, move Move) Value {
	var score Value

	if p.IsCapturingMove(move) {
		score += see(p, move)
	}
	if p.GivesCheck(move) {
		score += givesCheckBonus
	}
	if move.IsPromotion() {
		score += promotionBonus[move.PromotionPieceType()]
	}
	if move.IsCastle() {
		score += castleBonus
	}
	movedType := p.PieceAt(move.From()).TypeOf()
	if movedType == Pawn || movedType == King {
		score += quietPenalty
	}
	return score
}

// scoredMove pairs a move with its C9 score.
type scoredMove struct {
	move  Move
	score Value
}

// orderMoves scores moves with scoreMove and returns them sorted from the
// highest (searched first) to the lowest.
func orderMoves(p *position.Position, moves []Move) []scoredMove {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(p, m)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}
