package vm

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryResizeRoundsToWord(t *testing.T) {
	m := NewMemory()
	m.Resize(1)
	if m.Len() != 32 {
		t.Fatalf("Len() = %d, want 32 (rounded up to one word)", m.Len())
	}
	m.Resize(32)
	if m.Len() != 32 {
		t.Fatalf("Resize should never shrink: Len() = %d", m.Len())
	}
	m.Resize(33)
	if m.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", m.Len())
	}
}

func TestMemorySetAndGet(t *testing.T) {
	m := NewMemory()
	m.Set(0, 3, []byte{0x01, 0x02, 0x03})
	got := m.Get(0, 3)
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Get(0,3) = %x, want 010203", got)
	}
}

func TestMemoryGetZeroExtends(t *testing.T) {
	m := NewMemory()
	got := m.Get(0, 32)
	want := make([]byte, 32)
	if !bytes.Equal(got, want) {
		t.Fatalf("Get past end of empty memory should zero-extend, got %x", got)
	}
	if m.Len() != 0 {
		t.Fatalf("reading memory should not itself grow it, Len() = %d", m.Len())
	}
}

func TestMemorySet32(t *testing.T) {
	m := NewMemory()
	v := uint256.NewInt(0x42)
	m.Set32(0, v)
	got := m.Get(0, 32)
	want := make([]byte, 32)
	want[31] = 0x42
	if !bytes.Equal(got, want) {
		t.Fatalf("Set32 then Get = %x, want %x", got, want)
	}
}
