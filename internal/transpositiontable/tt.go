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

// Package transpositiontable implements the transposition table (C7): a
// fixed-size, power-of-two-addressed cache of search results keyed by
// Zobrist hash, plus the per-key visit counter search uses to detect
// repeated positions along the current search path.
//
// TtTable is not thread safe and must not be resized or cleared while a
// search is using it concurrently.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kdrehs/chesscore/internal/logging"
	. "github.com/kdrehs/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// MB is one megabyte in bytes.
const MB = 1024 * 1024

// MaxSizeInMB is the largest table size callers may request.
const MaxSizeInMB = 65_536

// TtTable is the transposition table.
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds counters on table usage for UCI info output and tuning.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a table sized to the largest power-of-two entry count
// that fits within sizeInMByte megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table to fit within sizeInMByte, discarding all
// entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.log.Info(out.Sprintf("TT size %d MB, capacity %d entries (%d bytes each), requested %d MB",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
}

func (tt *TtTable) hash(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// Probe returns a pointer to the entry matching key, or nil if the slot is
// empty or holds a different position (a hash collision). Tracks hit/miss
// statistics; does not mutate the entry.
func (tt *TtTable) Probe(key Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key && !e.IsEmpty() {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result for key. Replacement is strict: an empty
// slot or a slot for a different key is always overwritten; a slot
// already holding this same key is overwritten only when the new result
// was searched to a strictly greater depth. This is simpler than a
// depth+age/generation scheme -- it never refreshes a shallower result
// just because it's newer, which keeps replacement behavior easy to
// reason about and test.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, bound Bound, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfPuts++
	e := &tt.data[tt.hash(key)]

	if e.IsEmpty() {
		tt.numberOfEntries++
		*e = TtEntry{Key: key, BestMove: move, Eval: eval, Value: value, Depth: depth, Bound: bound, VisitCount: e.VisitCount}
		return
	}
	if e.Key != key {
		tt.Stats.numberOfCollisions++
		if depth > e.Depth {
			tt.Stats.numberOfOverwrites++
			*e = TtEntry{Key: key, BestMove: move, Eval: eval, Value: value, Depth: depth, Bound: bound}
		}
		return
	}
	// same key: only refresh if strictly deeper
	if depth > e.Depth {
		tt.Stats.numberOfUpdates++
		e.BestMove = move
		e.Eval = eval
		e.Value = value
		e.Depth = depth
		e.Bound = bound
	}
}

// IncrementVisits marks key as being on the current search path, for
// repetition detection independent of Position's own key history (useful
// when search explores lines the Position object hasn't actually played).
// A TTEntry is created on first visit, per C7's lifecycle: the slot gets
// the key and the documented uninitialized depth of -1, with no stored
// move or bound yet, so a later Put for the same key still looks like a
// normal first store (its depth, lacking any TT depth to beat, always
// wins the strictly-greater-depth replacement check).
func (tt *TtTable) IncrementVisits(key Key) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	e := &tt.data[tt.hash(key)]
	if e.Key != key {
		if e.IsEmpty() {
			tt.numberOfEntries++
		}
		*e = TtEntry{Key: key, Depth: -1}
	}
	e.VisitCount++
}

// DecrementVisits undoes IncrementVisits when search backs out of a node.
func (tt *TtTable) DecrementVisits(key Key) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	e := &tt.data[tt.hash(key)]
	if e.Key != key || e.VisitCount == 0 {
		return
	}
	e.VisitCount--
}

// Visits returns the current visit count recorded for key, 0 if key has
// no entry or the entry belongs to a different key.
func (tt *TtTable) Visits(key Key) uint32 {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	e := &tt.data[tt.hash(key)]
	if e.Key != key {
		return 0
	}
	return e.VisitCount
}

// Clear empties the table without changing its size.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the table is, in permille, as reported by the
// UCI "hashfull" info field.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied entries.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB, entries %d of %d (%d%%), puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		tt.sizeInByte/MB, tt.numberOfEntries, tt.maxNumberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, tt.Stats.numberOfMisses)
}
