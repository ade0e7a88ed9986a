/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"github.com/kdrehs/chesscore/internal/movegen"
	"github.com/kdrehs/chesscore/internal/moveslice"
	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

// GenMode selects which subset of legal moves a node's generator serves.
type GenMode int

const (
	// GenAll serves every legal move.
	GenAll GenMode = iota
	// GenNonQuiet serves only captures and promotions, used by qsearch
	// when the side to move is not in check.
	GenNonQuiet
)

// onDemandGen serves the moves of a single search node (one ply, one
// visit) in C9 order: the TT/IID move first, then the remaining legal
// moves by scoreMove, highest first. A fresh instance lives at each ply
// of the search and is rearmed for every node with ResetOnDemand; the
// killer moves it remembers belong to the ply and persist across nodes.
type onDemandGen struct {
	pvMove  Move
	killers [2]Move

	generated bool
	scored    []scoredMove
	idx       int
}

func newOnDemandGen() *onDemandGen {
	return &onDemandGen{}
}

// ResetOnDemand rearms the generator for a new node. Killer moves are
// ply state and are deliberately left untouched.
func (g *onDemandGen) ResetOnDemand() {
	g.pvMove = MoveNone
	g.generated = false
	g.scored = nil
	g.idx = 0
}

// SetPvMove marks move to be served first, ahead of its C9 score.
func (g *onDemandGen) SetPvMove(move Move) {
	g.pvMove = move
}

// PvMove returns the move set by SetPvMove for the current node.
func (g *onDemandGen) PvMove() Move {
	return g.pvMove
}

// KillerMoves returns the two moves that most recently caused a beta
// cutoff at this ply.
func (g *onDemandGen) KillerMoves() *[2]Move {
	return &g.killers
}

// StoreKiller records move as a killer at this ply, most recent first.
func (g *onDemandGen) StoreKiller(move Move) {
	if g.killers[0] == move || g.killers[1] == move {
		return
	}
	g.killers[1] = g.killers[0]
	g.killers[0] = move
}

// GetNextMove lazily generates and C9-orders all legal moves for p on
// its first call for this node, then serves them one at a time. The PV
// move, if set and legal, is served first regardless of its score.
// Returns MoveNone once every move has been served.
func (g *onDemandGen) GetNextMove(p *position.Position, mode GenMode) Move {
	if !g.generated {
		g.generate(p, mode)
	}
	if g.idx >= len(g.scored) {
		return MoveNone
	}
	m := g.scored[g.idx].move
	g.idx++
	return m
}

func (g *onDemandGen) generate(p *position.Position, mode GenMode) {
	g.generated = true
	legal := movegen.GenerateLegalMoves(p)
	candidates := make([]Move, 0, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if mode == GenNonQuiet && !p.IsCapturingMove(m) && !m.IsPromotion() {
			continue
		}
		candidates = append(candidates, m)
	}
	g.scored = orderMoves(p, candidates)
	if g.pvMove != MoveNone {
		for i, sm := range g.scored {
			if sm.move == g.pvMove {
				pv := g.scored[i]
				copy(g.scored[1:i+1], g.scored[:i])
				g.scored[0] = pv
				break
			}
		}
	}
}

// generateLegalMoves returns the moves of mode for p as a plain move
// slice, used for root move generation where no per-node scoring state
// is needed yet.
func generateLegalMoves(p *position.Position, mode GenMode) moveslice.MoveSlice {
	all := movegen.GenerateLegalMoves(p)
	if mode == GenAll {
		return all
	}
	filtered := moveslice.NewMoveSlice(all.Len())
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if p.IsCapturingMove(m) || m.IsPromotion() {
			filtered.PushBack(m)
		}
	}
	return *filtered
}
