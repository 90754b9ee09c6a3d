package search

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// depthKey packs a board hash and a search depth into a single uint64 via
// xxhash, for the "(hash|depth)" dedup keying §9 calls for in BFS, GBFS,
// A*, and Enhanced A*. This is unrelated to the canonical MurmurHash2
// identity hash in internal/board: that one names a board state; this one
// names a (state, depth) visited-set entry, and a fast, allocation-light
// map key is all that's needed for it.
func depthKey(stateHash uint64, depth int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], stateHash)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(depth))
	return xxhash.Sum64(buf[:])
}
