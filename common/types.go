package common

import "fmt"

// HashSize is the number of bytes in a Hash.
const HashSize = 32

// Hash is a fixed-width cryptographic digest used as a content address.
type Hash [HashSize]byte

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// HashFromBytes creates a Hash from the given slice. The slice must be
// exactly HashSize bytes long.
func HashFromBytes(data []byte) Hash {
	var h Hash
	copy(h[:], data)
	return h
}

// ConstError is an error type allowing errors to be defined as immutable
// constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}
