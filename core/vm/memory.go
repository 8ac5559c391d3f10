package vm

import "github.com/holiman/uint256"

// Memory is the interpreter's byte-addressable volatile memory. It starts
// empty and silently grows (zero-filled, rounded up to whole 32-byte words)
// through Resize, Set and Set32. Get reads bytes past the current length as
// zeroes without growing memory; MLOAD resizes explicitly before reading.
type Memory struct {
	store []byte
}

// NewMemory returns a new, empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Resize grows memory so it is at least size bytes long, rounding up to the
// next whole 32-byte word. It never shrinks memory.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	words := (size + 31) / 32
	target := words * 32
	m.store = append(m.store, make([]byte, target-uint64(len(m.store)))...)
}

// Set copies value into memory at offset, growing memory first if needed.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	m.Resize(offset + size)
	copy(m.store[offset:offset+size], value)
}

// Set32 writes val as a 32-byte big-endian word at offset, growing memory
// first if needed.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	m.Resize(offset + 32)
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// Get returns a freshly copied slice of memory at [offset, offset+size),
// zero-extending past the current length rather than panicking.
func (m *Memory) Get(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	if offset < uint64(len(m.store)) {
		n := copy(out, m.store[offset:])
		_ = n
	}
	return out
}

// GetPtr returns a direct slice reference into memory at [offset,
// offset+size). The caller must have already ensured memory is large
// enough (e.g. via Resize) when it needs to write through the slice.
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Len returns the current length of memory in bytes (always a multiple of
// 32 once anything has been written).
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the full backing slice.
func (m *Memory) Data() []byte {
	return m.store
}
