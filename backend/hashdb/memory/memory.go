// Package memory provides MemoryDB, an in-memory, reference-counted
// implementation of the hashdb.HashDB interface. It is the storage backend
// of choice for unit tests and benchmarks of trie algorithms, serving as a
// deterministic stand-in for persistent node databases. All data is held in
// memory; contents can be migrated elsewhere using Drain.
package memory

import (
	"bytes"
	"fmt"
	"unsafe"

	"golang.org/x/exp/slices"

	"github.com/figaro-db/figaro/backend/hashdb"
	"github.com/figaro-db/figaro/common"
	"github.com/figaro-db/figaro/common/immutable"
)

// ErrInconsistentContent is reported by Verify when a stored value does not
// hash to the digest portion of its storage key.
const ErrInconsistentContent = common.ConstError("value does not match its digest")

// entry is a stored value together with the number of its logical owners.
// A non-positive count marks the entry as dead: it is invisible to lookups
// but physically retained until the next Purge so that the count can be
// balanced by later inserts.
type entry struct {
	value immutable.Bytes
	refs  int
}

// MemoryDB is an in-memory hashdb.HashDB implementation mapping storage keys
// to reference-counted values. The key-derivation scheme S is fixed at
// construction time.
//
// The database is owned by a single logical caller; there is no internal
// locking. Embedders sharing an instance across threads must guard every
// operation with external synchronization.
type MemoryDB[S hashdb.KeyScheme] struct {
	hasher   hashdb.Hasher
	data     map[immutable.Bytes]entry
	nullHash common.Hash
	nullData immutable.Bytes
}

// NewMemoryDB creates an empty database using the given hasher. The null
// node is the empty byte sequence; its digest is recognized by all
// operations and resolved without storage.
func NewMemoryDB[S hashdb.KeyScheme](hasher hashdb.Hasher) *MemoryDB[S] {
	return NewMemoryDBWithNullNode[S](hasher, []byte{})
}

// NewMemoryDBWithNullNode creates an empty database whose null node is the
// given encoding, for trie formats where the canonical empty node is not the
// empty byte sequence (for instance the RLP encoding of an empty string in
// Ethereum-style tries).
func NewMemoryDBWithNullNode[S hashdb.KeyScheme](hasher hashdb.Hasher, nullNode []byte) *MemoryDB[S] {
	return &MemoryDB[S]{
		hasher:   hasher,
		data:     map[immutable.Bytes]entry{},
		nullHash: hasher.Hash(nullNode),
		nullData: immutable.NewBytes(nullNode),
	}
}

// deriveKey resolves the storage key of a digest/prefix pair using the
// database's key scheme.
func (m *MemoryDB[S]) deriveKey(hash common.Hash, prefix hashdb.Prefix) immutable.Bytes {
	var scheme S
	return scheme.DeriveKey(hash, prefix)
}

// Get implements hashdb.HashDB. The returned slice is a copy owned by the
// caller.
func (m *MemoryDB[S]) Get(hash common.Hash, prefix hashdb.Prefix) ([]byte, bool) {
	if hash == m.nullHash {
		return m.nullData.ToBytes(), true
	}
	e, exists := m.data[m.deriveKey(hash, prefix)]
	if !exists || e.refs <= 0 {
		return nil, false
	}
	return e.value.ToBytes(), true
}

// Contains implements hashdb.HashDB.
func (m *MemoryDB[S]) Contains(hash common.Hash, prefix hashdb.Prefix) bool {
	if hash == m.nullHash {
		return true
	}
	e, exists := m.data[m.deriveKey(hash, prefix)]
	return exists && e.refs > 0
}

// Insert implements hashdb.HashDB. Inserting the null node is a no-op
// beyond returning its digest.
func (m *MemoryDB[S]) Insert(prefix hashdb.Prefix, value []byte) common.Hash {
	hash := m.hasher.Hash(value)
	if hash == m.nullHash {
		return hash
	}
	m.reference(m.deriveKey(hash, prefix), value)
	return hash
}

// Emplace implements hashdb.HashDB.
func (m *MemoryDB[S]) Emplace(hash common.Hash, prefix hashdb.Prefix, value []byte) {
	if hash == m.nullHash {
		return
	}
	m.reference(m.deriveKey(hash, prefix), value)
}

// reference adds one owner for the value stored under the given key. The
// value bytes are only retained when the entry is created or was dead; a
// live entry keeps its current content since key uniqueness guarantees it
// is identical.
func (m *MemoryDB[S]) reference(key immutable.Bytes, value []byte) {
	e, exists := m.data[key]
	if !exists {
		m.data[key] = entry{value: immutable.NewBytes(value), refs: 1}
		return
	}
	if e.refs <= 0 {
		e.value = immutable.NewBytes(value)
	}
	e.refs++
	m.data[key] = e
}

// Remove implements hashdb.HashDB. Removing a key that was never inserted
// records a negative reference count, to be settled by future inserts of
// the same key. Removing the null node is a no-op.
func (m *MemoryDB[S]) Remove(hash common.Hash, prefix hashdb.Prefix) {
	if hash == m.nullHash {
		return
	}
	key := m.deriveKey(hash, prefix)
	e := m.data[key]
	e.refs--
	m.data[key] = e
}

// Purge physically discards every entry whose reference count is zero or
// negative. Entries with live owners are never touched. Purging is
// idempotent.
func (m *MemoryDB[S]) Purge() {
	for key, e := range m.data {
		if e.refs <= 0 {
			delete(m.data, key)
		}
	}
}

// Entry is a single drained storage record.
type Entry struct {
	Key   immutable.Bytes
	Value []byte
	Refs  int
}

// Drain extracts all physical entries, including dead and owed ones, and
// leaves the database empty. It is typically used to migrate contents into
// a persistent backend. Entries are listed in storage-key order to keep the
// migration deterministic.
func (m *MemoryDB[S]) Drain() []Entry {
	res := make([]Entry, 0, len(m.data))
	for key, e := range m.data {
		res = append(res, Entry{Key: key, Value: e.value.ToBytes(), Refs: e.refs})
	}
	m.data = map[immutable.Bytes]entry{}
	slices.SortFunc(res, func(a, b Entry) int {
		return bytes.Compare(a.Key.ToBytes(), b.Key.ToBytes())
	})
	return res
}

// Consolidate merges the contents of the given database into this one,
// adding reference counts entry-wise, and leaves the donor empty. Both
// databases must use the same hasher.
func (m *MemoryDB[S]) Consolidate(other *MemoryDB[S]) {
	for _, drained := range other.Drain() {
		e, exists := m.data[drained.Key]
		if !exists {
			m.data[drained.Key] = entry{value: immutable.NewBytes(drained.Value), refs: drained.Refs}
			continue
		}
		if e.refs <= 0 && drained.Refs > 0 {
			e.value = immutable.NewBytes(drained.Value)
		}
		e.refs += drained.Refs
		m.data[drained.Key] = e
	}
}

// Keys provides a diagnostic view of all physical entries, dead ones
// included, mapping each storage key to its current reference count.
func (m *MemoryDB[S]) Keys() map[immutable.Bytes]int {
	res := make(map[immutable.Bytes]int, len(m.data))
	for key, e := range m.data {
		res[key] = e.refs
	}
	return res
}

// ForEach iterates over all live entries, presenting the storage key and a
// read-only view of the value. The value slice must not be modified or
// retained beyond the call.
func (m *MemoryDB[S]) ForEach(op func(key immutable.Bytes, value []byte)) {
	for key, e := range m.data {
		if e.refs > 0 {
			op(key, e.value.ToBytes())
		}
	}
}

// Raw provides the stored value and reference count for the given digest
// and prefix regardless of liveness, for diagnostics. The null node reports
// its encoding with a count of 1.
func (m *MemoryDB[S]) Raw(hash common.Hash, prefix hashdb.Prefix) ([]byte, int, bool) {
	if hash == m.nullHash {
		return m.nullData.ToBytes(), 1, true
	}
	e, exists := m.data[m.deriveKey(hash, prefix)]
	if !exists {
		return nil, 0, false
	}
	return e.value.ToBytes(), e.refs, true
}

// Size provides the number of physical entries, dead ones included.
func (m *MemoryDB[S]) Size() int {
	return len(m.data)
}

// Equal tests whether two databases hold the same live content. Only keys
// and values of entries with positive reference counts are compared; the
// counts themselves and any dead entries are irrelevant.
func (m *MemoryDB[S]) Equal(other *MemoryDB[S]) bool {
	liveCount := func(db *MemoryDB[S]) (count int) {
		for _, e := range db.data {
			if e.refs > 0 {
				count++
			}
		}
		return count
	}
	if liveCount(m) != liveCount(other) {
		return false
	}
	for key, e := range m.data {
		if e.refs <= 0 {
			continue
		}
		o, exists := other.data[key]
		if !exists || o.refs <= 0 || o.value != e.value {
			return false
		}
	}
	return true
}

// Verify re-hashes every live value and checks the result against the
// digest portion of its storage key. It is intended for debugging sessions
// hunting Emplace contract violations and has linear cost in the stored
// data volume.
func (m *MemoryDB[S]) Verify() error {
	for key, e := range m.data {
		if e.refs <= 0 {
			continue
		}
		raw := key.ToBytes()
		if len(raw) < common.HashSize {
			return fmt.Errorf("%w: key %v is shorter than a digest", ErrInconsistentContent, key)
		}
		digest := raw[len(raw)-common.HashSize:]
		if hash := m.hasher.Hash(e.value.ToBytes()); !bytes.Equal(hash[:], digest) {
			return fmt.Errorf("%w: key %v holds value hashing to %v", ErrInconsistentContent, key, hash)
		}
	}
	return nil
}

// GetMemoryFootprint provides the approximate memory usage of the database.
func (m *MemoryDB[S]) GetMemoryFootprint() *common.MemoryFootprint {
	size := uintptr(len(m.data)) * (unsafe.Sizeof(immutable.Bytes{}) + unsafe.Sizeof(entry{}))
	for key, e := range m.data {
		size += uintptr(key.Length() + e.value.Length())
	}
	res := common.NewMemoryFootprint(unsafe.Sizeof(*m))
	res.AddChild("data", common.NewMemoryFootprint(size))
	return res
}
