// Package txid generates unique, roughly time-ordered transaction
// identifiers using a Snowflake-style layout: 41+ bits of milliseconds since
// a fixed epoch, 10 bits of machine id, 12 bits of per-millisecond sequence.
package txid

import (
	"strconv"
	"sync"
	"time"
)

// Epoch is the fixed origin of the timestamp component, 2024-01-01T00:00:00Z
// in Unix milliseconds. Changing it invalidates the ordering of previously
// issued ids.
const Epoch int64 = 1704067200000

const (
	machineIDBits = 10
	sequenceBits  = 12

	machineIDMask = (1 << machineIDBits) - 1
	sequenceMask  = (1 << sequenceBits) - 1

	timestampShift = machineIDBits + sequenceBits
)

// Generator issues transaction ids. A single Generator instance per process
// guarantees uniqueness; two processes sharing a machine id do not. It is
// safe for concurrent use.
type Generator struct {
	mu        sync.Mutex
	machineID int64
	lastMs    int64
	sequence  int64

	now func() int64
}

// NewGenerator returns a Generator for the given machine id. The id is
// masked to its lower 10 bits to bound its contribution to the composed
// value.
func NewGenerator(machineID int64) *Generator {
	return &Generator{
		machineID: machineID & machineIDMask,
		now:       func() int64 { return time.Now().UnixMilli() },
	}
}

// Generate returns the next transaction id as a decimal string. Ids issued
// at increasing wall-clock times compare increasing numerically. When the
// 4096-id budget of a single millisecond is exhausted, Generate spins until
// the clock advances; a frozen clock therefore blocks it indefinitely.
// System clock rollback is an operational fault and is not handled here.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now()

	if ms == g.lastMs {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			for ms <= g.lastMs {
				ms = g.now()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastMs = ms

	id := (ms-Epoch)<<timestampShift | g.machineID<<sequenceBits | g.sequence

	return strconv.FormatInt(id, 10)
}
