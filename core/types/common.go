// Package types defines the data model shared by the interpreter: fixed-size
// hashes and addresses, and the little bit of hex plumbing needed to print
// them.
package types

import (
	"encoding/hex"
	"fmt"
)

const (
	// HashLength is the number of bytes in a Hash (256-bit keccak output).
	HashLength = 32
	// AddressLength is the number of bytes in an Address (the low 160 bits
	// of a Word).
	AddressLength = 20
)

// Hash represents a 32-byte keccak256 digest.
type Hash [HashLength]byte

// Address represents a 20-byte account address.
type Address [AddressLength]byte

// BytesToHash converts b to a Hash, right-aligning (left-padding with
// zeroes) when b is shorter than HashLength and truncating from the left
// when it is longer.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash parses a 0x-prefixed (or bare) hex string into a Hash.
func HexToHash(s string) Hash {
	return BytesToHash(fromHex(s))
}

// Bytes returns the big-endian byte representation of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the 0x-prefixed hex representation of the hash.
func (h Hash) Hex() string { return fmt.Sprintf("0x%x", h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// SetBytes sets the hash from b, right-aligning it within the 32 bytes.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	*h = Hash{}
	copy(h[HashLength-len(b):], b)
}

// IsZero reports whether every byte of the hash is zero.
func (h Hash) IsZero() bool { return h == Hash{} }

// BytesToAddress converts b to an Address, right-aligning (left-padding
// with zeroes) when b is shorter than AddressLength.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress parses a 0x-prefixed (or bare) hex string into an Address.
func HexToAddress(s string) Address {
	return BytesToAddress(fromHex(s))
}

// Bytes returns the big-endian byte representation of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the 0x-prefixed hex representation of the address.
func (a Address) Hex() string { return fmt.Sprintf("0x%x", a[:]) }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

// SetBytes sets the address from b, right-aligning it within the 20 bytes.
// Any bytes beyond the low 20 (the top 96 bits of a Word) are discarded,
// matching the platform's address-from-Word truncation rule.
func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	*a = Address{}
	copy(a[AddressLength-len(b):], b)
}

// IsZero reports whether every byte of the address is zero.
func (a Address) IsZero() bool { return a == Address{} }

func fromHex(s string) []byte {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}
