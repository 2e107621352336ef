// Package transpositiontable implements a fixed-size, replace-always
// transposition table for the search kernel: a flat array of entries
// indexed by the Zobrist key modulo the table length, with no allocation
// on the hot Probe/Store path.
package transpositiontable

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/frankkopp/DraughtsGo/internal/assert"
	myLogging "github.com/frankkopp/DraughtsGo/internal/logging"
	"github.com/frankkopp/DraughtsGo/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// DefaultSize is the table length NewTtTable falls back to when asked for
// a size that is not positive.
const DefaultSize = 1 << 16

// TtTable is a fixed-length, replace-always transposition table. It is
// not safe for concurrent use; a search owns one instance for its
// lifetime.
type TtTable struct {
	entries []TtEntry
	puts    uint64
	probes  uint64
	hits    uint64
}

// NewTtTable creates a table with exactly size slots, or DefaultSize slots
// if size is not positive.
func NewTtTable(size int) *TtTable {
	if size <= 0 {
		size = DefaultSize
	}
	tt := &TtTable{entries: make([]TtEntry, size)}
	log.Debugf("allocated transposition table with %d entries", size)
	return tt
}

func (tt *TtTable) index(key zobrist.Key) int {
	return int(uint64(key) % uint64(len(tt.entries)))
}

// Probe returns the entry stored for key and true, or the zero entry and
// false if the slot holds a different key (or nothing).
func (tt *TtTable) Probe(key zobrist.Key) (TtEntry, bool) {
	tt.probes++
	e := tt.entries[tt.index(key)]
	if e.Kind == None || e.Key != key {
		return TtEntry{}, false
	}
	tt.hits++
	return e, true
}

// Store writes entry unconditionally into its slot, overwriting whatever
// was there before.
func (tt *TtTable) Store(key zobrist.Key, score, depth int, kind Kind, bestMoveIndex int) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "TT Store: depth must be >= 0, got %d", depth)
		assert.Assert(kind != None, "TT Store: kind must not be None")
	}
	tt.puts++
	tt.entries[tt.index(key)] = TtEntry{
		Key:           key,
		Score:         score,
		Depth:         depth,
		Kind:          kind,
		BestMoveIndex: bestMoveIndex,
	}
}

// Clear resets every slot to empty.
func (tt *TtTable) Clear() {
	tt.entries = make([]TtEntry, len(tt.entries))
	tt.puts, tt.probes, tt.hits = 0, 0, 0
}

// Len returns the table's fixed capacity.
func (tt *TtTable) Len() int {
	return len(tt.entries)
}

// Hashfull returns the share of slots that hold an entry, in permille. A
// slot overwritten several times counts once.
func (tt *TtTable) Hashfull() int {
	if len(tt.entries) == 0 {
		return 0
	}
	occupied := 0
	for i := range tt.entries {
		if tt.entries[i].Kind != None {
			occupied++
		}
	}
	return (1000 * occupied) / len(tt.entries)
}

// String reports basic usage statistics, mirroring the kind of summary
// line the search prints after a timed run.
func (tt *TtTable) String() string {
	hitRate := 0
	if tt.probes > 0 {
		hitRate = int((tt.hits * 100) / tt.probes)
	}
	return fmt.Sprintf("tt entries=%d puts=%d probes=%d hits=%d (%d%%)",
		len(tt.entries), tt.puts, tt.probes, tt.hits, hitRate)
}
