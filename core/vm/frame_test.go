package vm

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

func TestFrameGetOpPastEndIsStop(t *testing.T) {
	fr := NewFrame(types.Address{}, types.Address{}, []byte{byte(ADD)}, nil, new(uint256.Int), 100)
	if fr.GetOp(0) != ADD {
		t.Fatalf("GetOp(0) = %v, want ADD", fr.GetOp(0))
	}
	if fr.GetOp(1) != STOP {
		t.Fatalf("GetOp past end = %v, want implicit STOP", fr.GetOp(1))
	}
}

func TestFrameUseGas(t *testing.T) {
	fr := NewFrame(types.Address{}, types.Address{}, nil, nil, new(uint256.Int), 10)
	if !fr.UseGas(7) {
		t.Fatal("UseGas(7) should succeed with 10 available")
	}
	if fr.Gas != 3 {
		t.Fatalf("Gas = %d, want 3", fr.Gas)
	}
	if fr.UseGas(4) {
		t.Fatal("UseGas(4) should fail with only 3 remaining")
	}
	if fr.Gas != 3 {
		t.Fatalf("failed UseGas must not change Gas, got %d", fr.Gas)
	}
}

func TestValidJumpdestRejectsPushImmediateData(t *testing.T) {
	// PUSH1 0x5B JUMPDEST: the 0x5B byte at index 1 is PUSH1's immediate
	// operand, not a genuine JUMPDEST, even though it matches the byte value.
	code := []byte{byte(PUSH1), byte(JUMPDEST), byte(JUMPDEST)}
	fr := NewFrame(types.Address{}, types.Address{}, code, nil, new(uint256.Int), 100)

	fake := uint256.NewInt(1)
	if fr.validJumpdest(fake) {
		t.Fatal("byte at index 1 is PUSH1 immediate data, must not be a valid JUMPDEST")
	}

	real := uint256.NewInt(2)
	if !fr.validJumpdest(real) {
		t.Fatal("byte at index 2 is a genuine JUMPDEST")
	}
}

func TestValidJumpdestOutOfRange(t *testing.T) {
	fr := NewFrame(types.Address{}, types.Address{}, []byte{byte(STOP)}, nil, new(uint256.Int), 100)
	huge := new(uint256.Int).SetAllOne()
	if fr.validJumpdest(huge) {
		t.Fatal("a destination that doesn't fit in a uint64 can never be valid")
	}
	if fr.validJumpdest(uint256.NewInt(5)) {
		t.Fatal("a destination past the end of code can never be valid")
	}
}
