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

// Package evaluator calculates a static value for a chess position to be
// used as the stand-pat and leaf value in search. A full positional
// evaluation (piece-square tables, pawn structure, king safety) is out of
// scope here; this is material balance only, which is what the search
// contract (quiescence stand-pat, negamax leaf) actually requires.
package evaluator

import (
	"github.com/op/go-logging"

	myLogging "github.com/kdrehs/chesscore/internal/logging"
	"github.com/kdrehs/chesscore/internal/position"
	. "github.com/kdrehs/chesscore/internal/types"
)

// Evaluator computes a material-balance evaluation of a Position.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new Evaluator instance.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns the material balance of p from the perspective of the
// side to move: sum of that side's piece values minus the opponent's.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	us := p.NextPlayer()
	them := us.Flip()

	var ours, theirs Value
	for pt := Pawn; pt <= Queen; pt++ {
		count := Value(p.PieceTypeBb(us, pt).PopCount())
		ours += count * pt.ValueOf()
		count = Value(p.PieceTypeBb(them, pt).PopCount())
		theirs += count * pt.ValueOf()
	}
	return ours - theirs
}
