package scene

// BlockID is a stable, generation-checked handle into the block arena.
// The zero value is the nil handle and never resolves to a block.
//
// A BlockID stays valid for exactly as long as its block is alive; when
// the block is removed the slot's generation is bumped, so a retained
// stale handle resolves to nil instead of aliasing a later block.
// BlockIDs are cheap to copy and never transfer ownership.
type BlockID struct {
	index      uint32
	generation uint32
}

// IsNil reports whether the handle is the zero (invalid) handle.
func (id BlockID) IsNil() bool { return id.generation == 0 }

// slot is one arena cell. generation starts at 1 and is incremented on
// each removal; a zero generation therefore never matches a live handle.
type slot struct {
	block      *RuntimeBlock
	generation uint32
}

// arena is a slot-map style store for blocks: stable indices, a free
// list for reuse, and per-slot generations for use-after-free safety.
type arena struct {
	slots []slot
	free  []uint32
	count int
}

// insert stores a block and returns its handle. The block's ID field is
// set by the caller after insert returns the handle.
func (a *arena) insert(b *RuntimeBlock) BlockID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].block = b
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{block: b, generation: 1})
	}
	a.count++
	return BlockID{index: idx, generation: a.slots[idx].generation}
}

// get resolves a handle to its block, or nil when the handle is nil,
// stale, or out of range.
func (a *arena) get(id BlockID) *RuntimeBlock {
	if id.IsNil() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if s.generation != id.generation {
		return nil
	}
	return s.block
}

// remove frees the block behind the handle and invalidates the handle by
// bumping the slot's generation. It reports whether the handle was live.
func (a *arena) remove(id BlockID) bool {
	if a.get(id) == nil {
		return false
	}
	s := &a.slots[id.index]
	s.block = nil
	s.generation++
	a.free = append(a.free, id.index)
	a.count--
	return true
}

// len returns the number of live blocks.
func (a *arena) len() int { return a.count }
