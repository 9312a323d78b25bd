package common

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the Keccak-256 digest of the given data.
func Keccak256(data []byte) Hash {
	if len(data) == 0 {
		return EmptyKeccak256Hash
	}
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

// EmptyKeccak256Hash is the Keccak-256 digest of the empty byte sequence.
var EmptyKeccak256Hash = func() Hash {
	hasher := sha3.NewLegacyKeccak256().(keccakHasher)
	var res Hash
	hasher.Read(res[:])
	return res
}()

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// keccakHasher is the subset of sha3 state operations needed for hashing.
// The Read method provides the resulting hash without the final-state copy
// the regular Sum method would impose.
type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}
