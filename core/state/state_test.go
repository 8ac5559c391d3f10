package state

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

func TestGetAccountCreatesZeroed(t *testing.T) {
	w := New(&types.BlockHeader{})
	addr := types.HexToAddress("0x01")
	if w.HasAccount(addr) {
		t.Fatal("fresh world should not have account yet")
	}
	acc := w.GetAccount(addr)
	if !acc.Balance.IsZero() || acc.Nonce != 0 {
		t.Fatalf("expected zeroed account, got %+v", acc)
	}
	if !w.HasAccount(addr) {
		t.Fatal("GetAccount should install the account")
	}
}

func TestRegisterDestroyMovesBalance(t *testing.T) {
	w := New(&types.BlockHeader{})
	self := types.HexToAddress("0x01")
	beneficiary := types.HexToAddress("0x02")

	selfAcc := w.GetAccount(self)
	selfAcc.Balance = uint256.NewInt(100)

	w.RegisterDestroy(self, beneficiary)

	if !w.GetAccount(self).Balance.IsZero() {
		t.Fatal("self balance should be zeroed after destroy")
	}
	if got := w.GetAccount(beneficiary).Balance; got.Cmp(uint256.NewInt(100)) != 0 {
		t.Fatalf("beneficiary balance = %v, want 100", got)
	}
}

func TestRegisterDestroyIdempotent(t *testing.T) {
	w := New(&types.BlockHeader{})
	self := types.HexToAddress("0x01")
	beneficiary := types.HexToAddress("0x02")
	w.GetAccount(self).Balance = uint256.NewInt(50)

	w.RegisterDestroy(self, beneficiary)
	w.GetAccount(self).Balance = uint256.NewInt(50) // simulate a later top-up
	w.RegisterDestroy(self, beneficiary)

	// The second registration must not move the top-up: beneficiary only
	// ever receives the balance present at first registration.
	if got := w.GetAccount(beneficiary).Balance; got.Cmp(uint256.NewInt(50)) != 0 {
		t.Fatalf("beneficiary balance = %v, want 50 (only first registration moves funds)", got)
	}
}

func TestCleanRemovesDestroyedAccounts(t *testing.T) {
	w := New(&types.BlockHeader{})
	self := types.HexToAddress("0x01")
	beneficiary := types.HexToAddress("0x02")
	w.GetAccount(self)
	w.RegisterDestroy(self, beneficiary)

	if !w.HasAccount(self) {
		t.Fatal("account should still be readable until Clean")
	}
	w.Clean()
	if w.HasAccount(self) {
		t.Fatal("Clean should have removed the destroyed account")
	}
}

func TestAddLog(t *testing.T) {
	w := New(&types.BlockHeader{})
	w.AddLog(&types.Log{Address: types.HexToAddress("0x01")})
	w.AddLog(&types.Log{Address: types.HexToAddress("0x02")})
	if len(w.Logs()) != 2 {
		t.Fatalf("Logs() = %d entries, want 2", len(w.Logs()))
	}
}
