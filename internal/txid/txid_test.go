package txid

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseID(t *testing.T, id string) int64 {
	t.Helper()

	n, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err, "id must be a decimal string")

	return n
}

func TestGenerateIsUniqueAndIncreasing(t *testing.T) {
	gen := NewGenerator(1)

	seen := make(map[string]bool)
	var prev int64

	for i := 0; i < 10_000; i++ {
		id := gen.Generate()

		require.False(t, seen[id], "duplicate id %s after %d ids", id, i)
		seen[id] = true

		n := parseID(t, id)
		require.Greater(t, n, prev, "ids must increase numerically")
		prev = n
	}
}

func TestGenerateWithinSameMillisecond(t *testing.T) {
	gen := NewGenerator(3)
	gen.now = func() int64 { return Epoch + 500 }

	first := parseID(t, gen.Generate())
	second := parseID(t, gen.Generate())
	third := parseID(t, gen.Generate())

	// Same millisecond, so ids differ only in the sequence component.
	assert.Equal(t, int64(500)<<timestampShift|3<<sequenceBits|0, first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestGenerateWaitsOutExhaustedMillisecond(t *testing.T) {
	gen := NewGenerator(1)

	calls := 0
	gen.now = func() int64 {
		calls++
		// Stay in the same millisecond long enough to exhaust the
		// 4096-id sequence budget, then let the clock advance.
		if calls <= sequenceMask+2 {
			return Epoch + 1
		}
		return Epoch + 2
	}

	seen := make(map[string]bool)
	for i := 0; i < sequenceMask+2; i++ {
		id := gen.Generate()
		require.False(t, seen[id], "duplicate id %s at call %d", id, i)
		seen[id] = true
	}
}

func TestMachineIDIsMaskedToTenBits(t *testing.T) {
	gen := NewGenerator(machineIDMask + 1 + 7) // overflows into bit 10
	gen.now = func() int64 { return Epoch + 1 }

	id := parseID(t, gen.Generate())

	assert.Equal(t, int64(7), (id>>sequenceBits)&machineIDMask)
}

func TestGenerateConcurrently(t *testing.T) {
	gen := NewGenerator(1)

	const workers = 8
	const perWorker = 500

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ids := make([]string, 0, perWorker)
			for range perWorker {
				ids = append(ids, gen.Generate())
			}

			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				assert.False(t, seen[id], "duplicate id %s", id)
				seen[id] = true
			}
		}()
	}

	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
