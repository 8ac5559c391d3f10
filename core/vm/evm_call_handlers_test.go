package vm

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// TestDelegateCallPreservesCallerAddress exercises DELEGATECALL end to end
// through the interpreter loop: the callee's code runs against the calling
// frame's own address (ADDRESS inside the callee must see the proxy's
// address, not the target's and not the proxy's own caller's), per spec
// §4.G's table ("child.address = caller's address" for DELEGATECALL).
func TestDelegateCallPreservesCallerAddress(t *testing.T) {
	evm := newTestEVM()

	targetAddr := types.HexToAddress("0x0000000000000000000000000000000000001234")
	proxyAddr := types.HexToAddress("0x0000000000000000000000000000000000005678")
	callerAddr := types.HexToAddress("0x000000000000000000000000000000000000beef")

	// ADDRESS, PUSH1 0, MSTORE, PUSH1 32, PUSH1 0, RETURN: returns the
	// executing frame's own address, left-padded to 32 bytes.
	targetCode := []byte{0x30, 0x60, 0x00, 0x52, 0x60, 0x20, 0x60, 0x00, 0xf3}
	targetAcc := types.NewAccount()
	targetAcc.Code = targetCode
	evm.World.SetAccount(targetAddr, targetAcc)

	var code []byte
	code = append(code, 0x60, 0x20) // PUSH1 32   (ret size)
	code = append(code, 0x60, 0x00) // PUSH1 0    (ret offset)
	code = append(code, 0x60, 0x00) // PUSH1 0    (args size)
	code = append(code, 0x60, 0x00) // PUSH1 0    (args offset)
	code = append(code, 0x60, 0x00) // PUSH1 0    (value, unused by DELEGATECALL)
	code = append(code, 0x73)       // PUSH20
	code = append(code, targetAddr[:]...)
	code = append(code, 0x61, 0xff, 0xff) // PUSH2 0xffff (gas)
	code = append(code, 0xf4)             // DELEGATECALL
	code = append(code, 0x60, 0x20, 0x60, 0x00, 0xf3)

	fr := NewFrame(callerAddr, proxyAddr, code, nil, uint256.NewInt(0), 10_000_000)
	ret, err := evm.Run(fr, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := make([]byte, 32)
	copy(want[12:], proxyAddr[:])
	if !bytes.Equal(ret, want) {
		t.Fatalf("DELEGATECALL callee saw ADDRESS = %x, want proxy address %x", ret, want)
	}
}
