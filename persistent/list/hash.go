package list

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher is implemented by element types bringing their own hash function.
// Hash64 must return equal values for elements which are equal.
type Hasher interface {
	Hash64() uint64
}

// Hash returns a hash value for l, derived from the elements of l in head-to-tail
// order. Lists which are Equal have equal hash values, given the same seed.
// Elements are hashed with maphash.Comparable.
func Hash[T comparable](l List[T], seed maphash.Seed) uint64 {
	return HashFunc(l, func(v T) uint64 {
		return maphash.Comparable(seed, v)
	})
}

// Hash64 returns a hash value for a list of elements which implement Hasher.
func Hash64[T Hasher](l List[T]) uint64 {
	return HashFunc(l, func(v T) uint64 {
		return v.Hash64()
	})
}

// HashFunc returns a hash value for l, combining the hash values which hash
// returns for the elements of l. Element hashes are combined in head-to-tail
// order, thus lists holding the same elements in a different order will (very
// likely) hash differently.
func HashFunc[T any](l List[T], hash func(T) uint64) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	it := l.cursor()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		binary.LittleEndian.PutUint64(buf[:], hash(v))
		digest.Write(buf[:])
	}
	return digest.Sum64()
}
