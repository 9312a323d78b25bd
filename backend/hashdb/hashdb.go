// Package hashdb defines the interface of a content-addressed node database
// as used by trie and Merkle-proof implementations. Values are indexed by
// the digest of their content, optionally disambiguated by a caller-supplied
// context prefix, and insertions are reference counted: a value inserted N
// times must be removed N times before it is considered dead.
package hashdb

//go:generate mockgen -source hashdb.go -destination hashdb_mocks.go -package hashdb

import (
	"github.com/figaro-db/figaro/common"
)

// Hasher is the hashing capability consumed by the database. Implementations
// must be deterministic and are assumed to be collision resistant.
type Hasher interface {
	// Hash computes the digest of the given data.
	Hash(data []byte) common.Hash
}

// Prefix is an opaque, caller-supplied byte sequence identifying the logical
// role or location of a value, typically the nibble path from the trie root
// to the node. It is consulted by prefixed key derivation only; two
// byte-identical values inserted under distinct prefixes are stored and
// reference counted independently.
type Prefix []byte

// EmptyPrefix can be used wherever the context of a value is irrelevant or
// unknown, such as for trie root nodes.
var EmptyPrefix = Prefix{}

// HashDB is a mutable database of byte values keyed by content digest.
//
// All operations are synchronous, in-memory computations; none of them can
// fail. The database is designed for exclusive single-threaded ownership and
// must be wrapped with external synchronization if shared across threads.
type HashDB interface {
	// Get returns the value stored for the given digest and prefix, or
	// (nil, false) if no live value is known. The digest of the null node
	// always resolves to its well-known encoding, without prior insert.
	Get(hash common.Hash, prefix Prefix) ([]byte, bool)

	// Contains tests whether a live value is stored for the given digest
	// and prefix. It agrees with Get.
	Contains(hash common.Hash, prefix Prefix) bool

	// Insert stores the given value and returns its digest as a handle for
	// later lookups. Repeated insertions of the same value under the same
	// prefix increment its reference count instead of duplicating storage.
	Insert(prefix Prefix, value []byte) common.Hash

	// Emplace is Insert for callers that already know the digest of the
	// value, skipping the hashing step. Supplying a digest that is not the
	// hash of the value is a contract violation; the entry would be
	// unreachable through regular digest-based lookups.
	Emplace(hash common.Hash, prefix Prefix, value []byte)

	// Remove decrements the reference count of the addressed value. When the
	// count reaches zero the value is no longer visible through Get or
	// Contains. Removals may be speculative: removing a digest before its
	// value is inserted is recorded as a debt to be settled by a future
	// insert, not an error.
	Remove(hash common.Hash, prefix Prefix)
}

// Keccak256Hasher is the default Hasher, producing Keccak-256 digests as
// used by Ethereum-style Merkle-Patricia tries.
type Keccak256Hasher struct{}

func (Keccak256Hasher) Hash(data []byte) common.Hash {
	return common.Keccak256(data)
}
