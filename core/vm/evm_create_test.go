package vm

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// TestCreate2IncrementsCallerNonce ensures CREATE2 bumps the caller's nonce
// on success exactly as CREATE does; spec §4.H describes nonce-increment-
// on-success for the creation engine as a whole, not CREATE alone.
func TestCreate2IncrementsCallerNonce(t *testing.T) {
	evm := newTestEVM()
	caller := types.HexToAddress("0xabc")

	// initcode: PUSH1 1, PUSH1 0, RETURN -- one byte of runtime code.
	initCode := []byte{0x60, 0x01, 0x60, 0x00, 0xf3}

	before := evm.World.GetAccount(caller).Nonce
	_, _, _, err := evm.Create2(caller, initCode, 1_000_000, new(uint256.Int), new(uint256.Int), false)
	if err != nil {
		t.Fatalf("Create2 failed: %v", err)
	}
	after := evm.World.GetAccount(caller).Nonce
	if after != before+1 {
		t.Fatalf("caller nonce after Create2 = %d, want %d", after, before+1)
	}
}
