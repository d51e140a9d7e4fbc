package truss

import "math/rand"

// levelBuckets files every live edge under its current support level.
//
// items[l] holds the edge IDs at level l; pos[e] is the index of e inside
// its bucket, so insert, remove and pop are O(1). An edge is in at most one
// bucket at a time.
type levelBuckets struct {
	items [][]int
	pos   []int
}

// newLevelBuckets allocates levels 0..maxLevel for edges 0..edges-1.
func newLevelBuckets(maxLevel, edges int) *levelBuckets {
	return &levelBuckets{
		items: make([][]int, maxLevel+1),
		pos:   make([]int, edges),
	}
}

// insert files e under level.
func (b *levelBuckets) insert(level, e int) {
	b.pos[e] = len(b.items[level])
	b.items[level] = append(b.items[level], e)
}

// remove takes e out of level by swapping in the bucket's last entry.
func (b *levelBuckets) remove(level, e int) {
	bucket := b.items[level]
	i, last := b.pos[e], len(bucket)-1
	moved := bucket[last]
	bucket[i] = moved
	b.pos[moved] = i
	b.items[level] = bucket[:last]
}

// move re-files e from one level to another.
func (b *levelBuckets) move(from, to, e int) {
	b.remove(from, e)
	b.insert(to, e)
}

// pop removes and returns an edge of level; ok is false when the bucket is empty.
// With a nil rng the last entry is taken.
func (b *levelBuckets) pop(level int, rng *rand.Rand) (e int, ok bool) {
	bucket := b.items[level]
	if len(bucket) == 0 {
		return 0, false
	}
	e = bucket[len(bucket)-1]
	if rng != nil {
		e = bucket[rng.Intn(len(bucket))]
	}
	b.remove(level, e)

	return e, true
}

// size returns the number of edges filed under level.
func (b *levelBuckets) size(level int) int {
	return len(b.items[level])
}
