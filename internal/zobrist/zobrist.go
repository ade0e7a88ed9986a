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

// Package zobrist holds the random key tables used to incrementally hash a
// position (C6). Keys are generated once from a fixed seed at process start
// so the same position always hashes to the same key across runs, which the
// transposition table and repetition detection both depend on.
package zobrist

import (
	"math/rand"

	. "github.com/kdrehs/chesscore/internal/types"
)

// Pieces holds one key per (piece, square) pair, indexed [Piece][Square].
var Pieces [PieceLength][SqLength]Key

// Castling holds one key per possible 4-bit castling rights mask.
var Castling [16]Key

// EnPassantFile holds one key per file an en-passant capture can happen on.
var EnPassantFile [8]Key

// SideToMove is XORed into the key whenever it is Black's turn to move.
var SideToMove Key

// seed is fixed so Zobrist keys are reproducible across runs; the exact
// numbers don't matter, only that they never change once chosen.
const seed = 1070372

func init() {
	r := rand.New(rand.NewSource(seed))
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			Pieces[pc][sq] = Key(r.Uint64())
		}
	}
	for cr := 0; cr < 16; cr++ {
		Castling[cr] = Key(r.Uint64())
	}
	for f := FileA; f <= FileH; f++ {
		EnPassantFile[f] = Key(r.Uint64())
	}
	SideToMove = Key(r.Uint64())
}
