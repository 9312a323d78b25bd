package common

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestKeccak256_ProducesSameHashAsEthereum(t *testing.T) {
	tests := [][]byte{
		nil,
		{},
		{1, 2, 3},
		[]byte("foo"),
		make([]byte, 128),
		make([]byte, 1024),
	}
	for _, test := range tests {
		want := Hash(crypto.Keccak256Hash(test))
		got := Keccak256(test)
		if want != got {
			t.Errorf("unexpected hash for %v, wanted %v, got %v", test, want, got)
		}
	}
}

func TestKeccak256_EmptyInputHashMatchesPrecomputedConstant(t *testing.T) {
	if got, want := Keccak256([]byte{}), Hash(crypto.Keccak256Hash(nil)); got != want {
		t.Errorf("invalid hash of empty input, wanted %v, got %v", want, got)
	}
	if got, want := EmptyKeccak256Hash.String(), "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"; got != want {
		t.Errorf("invalid empty-input hash constant, wanted %s, got %s", want, got)
	}
}

func TestKeccak256_IsDeterministic(t *testing.T) {
	data := []byte("some node content")
	first := Keccak256(data)
	for i := 0; i < 10; i++ {
		if got := Keccak256(data); got != first {
			t.Fatalf("hashing is not deterministic, got %v and %v", first, got)
		}
	}
}

func BenchmarkKeccak256(b *testing.B) {
	for i := 1; i < 1<<22; i <<= 3 {
		b.Run(fmt.Sprintf("size=%d", i), func(b *testing.B) {
			data := make([]byte, i)
			for i := 0; i < b.N; i++ {
				Keccak256(data)
			}
		})
	}
}
