package immutable

import "fmt"

// Bytes is an immutable slice of bytes that can be trivially cloned and
// compared, making it suitable as a map key.
type Bytes struct {
	data string
}

// NewBytes creates a new Bytes copying the given slice.
func NewBytes(data []byte) Bytes {
	return Bytes{data: string(data)}
}

// NewBytesFromParts creates a new Bytes holding the concatenation of the
// given slices.
func NewBytesFromParts(parts ...[]byte) Bytes {
	length := 0
	for _, part := range parts {
		length += len(part)
	}
	data := make([]byte, 0, length)
	for _, part := range parts {
		data = append(data, part...)
	}
	return Bytes{data: string(data)}
}

// ToBytes provides a mutable copy of the retained data.
func (b Bytes) ToBytes() []byte {
	return []byte(b.data)
}

// Length provides the number of retained bytes.
func (b Bytes) Length() int {
	return len(b.data)
}

func (b Bytes) String() string {
	return fmt.Sprintf("0x%x", b.data)
}
