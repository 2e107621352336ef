package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/DraughtsGo/internal/zobrist"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := NewTtTable(16)
	_, ok := tt.Probe(zobrist.Key(42))
	assert.False(t, ok)
}

func TestStoreThenProbeHits(t *testing.T) {
	tt := NewTtTable(16)
	tt.Store(zobrist.Key(42), 100, 5, Exact, 2)
	e, ok := tt.Probe(zobrist.Key(42))
	assert.True(t, ok)
	assert.Equal(t, 100, e.Score)
	assert.Equal(t, 5, e.Depth)
	assert.Equal(t, Exact, e.Kind)
	assert.Equal(t, 2, e.BestMoveIndex)
}

func TestStoreIsReplaceAlways(t *testing.T) {
	tt := NewTtTable(1) // single slot, forces a collision
	tt.Store(zobrist.Key(1), 10, 3, LowerBound, 0)
	tt.Store(zobrist.Key(2), 20, 1, UpperBound, 1)
	e, ok := tt.Probe(zobrist.Key(2))
	assert.True(t, ok)
	assert.Equal(t, 20, e.Score)
	_, ok = tt.Probe(zobrist.Key(1))
	assert.False(t, ok)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(16)
	tt.Store(zobrist.Key(42), 100, 5, Exact, 0)
	tt.Clear()
	_, ok := tt.Probe(zobrist.Key(42))
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Hashfull())
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTtTable(10)
	for i := 0; i < 5; i++ {
		tt.Store(zobrist.Key(i), i, 1, Exact, 0)
	}
	assert.Equal(t, 500, tt.Hashfull())
}
