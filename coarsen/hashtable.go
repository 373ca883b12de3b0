package coarsen

// edgeAccum is an open-addressing hash table mapping a coarse neighbour
// index to an accumulated edge load, keyed by int32 with linear probing
// (spec.md §4.E.2: "coalescing uses a per-worker open-addressing hash
// table keyed by the coarse neighbour index"). Contract sizes it once per
// call to a power of two at least twice the largest possible
// coarse-vertex degree (2*MaxDegree) and resets it per coarse vertex, so
// load stays at or under 0.5 and probe chains stay short.
type edgeAccum struct {
	keys  []int32 // emptyKey sentinel marks a free slot
	loads []int64
	used  []int32 // slots touched since the last reset, for O(used) clearing
}

const emptyKey int32 = -1

func newEdgeAccum(capacityHint int) *edgeAccum {
	size := 8
	for size < capacityHint*2 {
		size *= 2
	}
	t := &edgeAccum{keys: make([]int32, size), loads: make([]int64, size)}
	for i := range t.keys {
		t.keys[i] = emptyKey
	}
	return t
}

func (t *edgeAccum) hash(key int32) int {
	u := uint32(key)
	u ^= u >> 16
	u *= 0x85ebca6b
	u ^= u >> 13
	return int(u) % len(t.keys)
}

// Add accumulates load onto key, inserting a fresh slot if key is new.
func (t *edgeAccum) Add(key int32, load int32) {
	i := t.hash(key)
	for {
		if t.keys[i] == emptyKey {
			t.keys[i] = key
			t.loads[i] = int64(load)
			t.used = append(t.used, int32(i))
			return
		}
		if t.keys[i] == key {
			t.loads[i] += int64(load)
			return
		}
		i = (i + 1) % len(t.keys)
	}
}

// Entries returns every (key, accumulated load) pair touched since the
// last Reset, in no particular order.
func (t *edgeAccum) Entries() (keys []int32, loads []int64) {
	keys = make([]int32, len(t.used))
	loads = make([]int64, len(t.used))
	for i, slot := range t.used {
		keys[i] = t.keys[slot]
		loads[i] = t.loads[slot]
	}
	return keys, loads
}

// Reset clears every slot touched since the last Reset/construction
// (spec.md: "the hash table is reset between the counting and filling
// phases"), in O(touched) rather than O(capacity).
func (t *edgeAccum) Reset() {
	for _, slot := range t.used {
		t.keys[slot] = emptyKey
		t.loads[slot] = 0
	}
	t.used = t.used[:0]
}
