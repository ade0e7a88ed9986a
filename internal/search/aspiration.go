/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

// aspirationWindow is the initial half width of the search window around
// the previous iteration's best value, in centipawns. Chosen small enough
// to cut a meaningful share of nodes but wide enough that most positions
// do not need a research.
const aspirationWindow = Value(50)

// aspirationSearch re-searches around the value found in the previous,
// shallower iteration instead of the full [-inf, +inf] window. A narrow
// window lets alpha-beta cut more aggressively; when the true value falls
// outside it, the window is widened on the failing side and the ply is
// searched again.
// https://www.chessprogramming.org/Aspiration_Windows
func (s *Search) aspirationSearch(p *position.Position, depth int, previousValue Value) Value {
	alpha := previousValue - aspirationWindow
	beta := previousValue + aspirationWindow
	if alpha < ValueMin {
		alpha = ValueMin
	}
	if beta > ValueMax {
		beta = ValueMax
	}

	for {
		value := s.rootSearch(p, depth, alpha, beta)
		if s.stopConditions() {
			return value
		}

		switch {
		case value <= alpha:
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("upperbound")
			alpha = ValueMin
			if alpha < value-2*aspirationWindow {
				alpha = value - 2*aspirationWindow
			}
		case value >= beta:
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("lowerbound")
			beta = ValueMax
			if beta > value+2*aspirationWindow {
				beta = value + 2*aspirationWindow
			}
		default:
			return value
		}
	}
}

// mtdf implements MTD(f), a search driver that converges on the minimax
// value using a sequence of zero-width (null window) searches around a
// first guess, tightening the bound after each pass until upper and lower
// bounds meet.
// https://www.chessprogramming.org/MTD(f)
func (s *Search) mtdf(p *position.Position, depth int, firstGuess Value) Value {
	g := firstGuess
	upperBound := ValueMax
	lowerBound := ValueMin

	for lowerBound < upperBound {
		beta := g
		if g == lowerBound {
			beta = g + 1
		}

		g = s.rootSearch(p, depth, beta-1, beta)
		if s.stopConditions() {
			return g
		}

		if g < beta {
			upperBound = g
		} else {
			lowerBound = g
		}
	}
	return g
}
