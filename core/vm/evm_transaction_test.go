package vm

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

func TestApplyMessageCallReturnsData(t *testing.T) {
	evm := newTestEVM()
	target := types.HexToAddress("0xbeef")
	// PUSH1 0x42, PUSH1 0, MSTORE, PUSH1 32, PUSH1 0, RETURN.
	code := mustHex(t, "604260005260206000F3")
	evm.World.GetAccount(target).Code = code

	msg := Message{From: types.HexToAddress("0x01"), To: &target, Gas: 1_000_000}
	res := evm.ApplyMessage(msg)
	if !res.Success {
		t.Fatalf("expected success, got failure")
	}
	want := make([]byte, 32)
	want[31] = 0x42
	if !bytes.Equal(res.ReturnData, want) {
		t.Fatalf("returndata = %x, want %x", res.ReturnData, want)
	}
}

func TestApplyMessageCreateInstallsCode(t *testing.T) {
	evm := newTestEVM()
	caller := types.HexToAddress("0xabc")
	// PUSH1 1, PUSH1 0, RETURN: returns one (zero-valued) byte of runtime code.
	initCode := mustHex(t, "60016000F3")

	msg := Message{From: caller, To: nil, Data: initCode, Gas: 1_000_000}
	res := evm.ApplyMessage(msg)
	if !res.Success {
		t.Fatalf("expected creation to succeed")
	}
	if len(evm.World.GetAccount(res.ContractAddr).Code) == 0 {
		t.Fatalf("expected runtime code installed at %x", res.ContractAddr)
	}
}

func TestApplyMessageSweepsSelfDestructedAccounts(t *testing.T) {
	evm := newTestEVM()
	target := types.HexToAddress("0xdead")
	beneficiary := types.HexToAddress("0xb0b")
	evm.World.GetAccount(target).Balance = uint256.NewInt(100)
	// PUSH20 <beneficiary>, SELFDESTRUCT.
	code := append([]byte{byte(PUSH20)}, beneficiary.Bytes()...)
	code = append(code, byte(SELFDESTRUCT))
	evm.World.GetAccount(target).Code = code

	msg := Message{From: types.HexToAddress("0x01"), To: &target, Gas: 1_000_000}
	res := evm.ApplyMessage(msg)
	if !res.Success {
		t.Fatalf("expected success")
	}
	if evm.World.HasAccount(target) {
		t.Fatalf("target account should have been swept by Clean")
	}
	if got := evm.World.GetAccount(beneficiary).Balance; got.Cmp(uint256.NewInt(100)) != 0 {
		t.Fatalf("beneficiary balance = %v, want 100", got)
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test hex: %v", err)
	}
	return b
}
