package hashdb

import (
	"github.com/figaro-db/figaro/common"
	"github.com/figaro-db/figaro/common/immutable"
)

// KeyScheme derives the storage key under which a value is filed from its
// digest and context prefix. Derivation is a pure function; the same
// (digest, prefix) pair always yields the same key. The scheme of a database
// is selected at construction time and fixed for its lifetime, which is why
// the variants are modelled as stateless types resolved through a generic
// type parameter rather than through runtime configuration.
type KeyScheme interface {
	// DeriveKey computes the storage key for the given digest and prefix.
	DeriveKey(hash common.Hash, prefix Prefix) immutable.Bytes
}

// PlainKey files values directly under their digest, ignoring the context
// prefix. It is the fastest scheme, but only safe when callers guarantee
// that no value needs to be tracked under two distinct contexts at once.
type PlainKey struct{}

func (PlainKey) DeriveKey(hash common.Hash, prefix Prefix) immutable.Bytes {
	return immutable.NewBytes(hash[:])
}

// PrefixedKey files values under the concatenation of their context prefix
// and digest. Byte-identical values appearing in different logical roles
// thus never alias in storage, at the cost of a longer key.
type PrefixedKey struct{}

func (PrefixedKey) DeriveKey(hash common.Hash, prefix Prefix) immutable.Bytes {
	return immutable.NewBytesFromParts(prefix, hash[:])
}
