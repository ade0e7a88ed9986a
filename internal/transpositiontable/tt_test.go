/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kdrehs/chesscore/internal/types"
)

func TestResizeIsPowerOfTwoEntries(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, tt.maxNumberOfEntries&(tt.maxNumberOfEntries-1), uint64(0))
	assert.Greater(t, tt.maxNumberOfEntries, uint64(0))
}

func TestPutThenProbeFindsEntry(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(12345)
	tt.Put(key, NewMove(SqE2, SqE4, PawnDoublePush), 4, Value(100), BoundExact, Value(90))

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, Value(100), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(Key(999)))
}

func TestPutDoesNotOverwriteSameKeyWithShallowerDepth(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(55)
	tt.Put(key, NewMove(SqE2, SqE4, PawnDoublePush), 6, Value(50), BoundExact, Value(40))
	tt.Put(key, NewMove(SqD2, SqD4, PawnDoublePush), 3, Value(-10), BoundExact, Value(-5))

	e := tt.Probe(key)
	assert.Equal(t, int8(6), e.Depth)
	assert.Equal(t, Value(50), e.Value)
}

func TestPutOverwritesSameKeyWithDeeperDepth(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(55)
	tt.Put(key, NewMove(SqE2, SqE4, PawnDoublePush), 3, Value(50), BoundExact, Value(40))
	tt.Put(key, NewMove(SqD2, SqD4, PawnDoublePush), 6, Value(-10), BoundExact, Value(-5))

	e := tt.Probe(key)
	assert.Equal(t, int8(6), e.Depth)
	assert.Equal(t, Value(-10), e.Value)
}

func TestClearRemovesAllEntries(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(1), MoveNone, 2, Value(0), BoundExact, Value(0))
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(Key(1)))
}

func TestIncrementDecrementVisits(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(7)
	tt.Put(key, MoveNone, 1, Value(0), BoundExact, Value(0))
	tt.IncrementVisits(key)
	tt.IncrementVisits(key)
	assert.Equal(t, uint32(2), tt.Visits(key))
	tt.DecrementVisits(key)
	assert.Equal(t, uint32(1), tt.Visits(key))
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	tt.Put(Key(1), MoveNone, 1, Value(0), BoundExact, Value(0))
	assert.Greater(t, tt.Hashfull(), 0)
}

func TestZeroSizeTableIsInert(t *testing.T) {
	tt := NewTtTable(0)
	tt.Put(Key(1), MoveNone, 5, Value(10), BoundExact, Value(10))
	assert.Nil(t, tt.Probe(Key(1)))
	assert.Equal(t, 0, tt.Hashfull())
}
