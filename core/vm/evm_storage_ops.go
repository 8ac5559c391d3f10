// evm_storage_ops.go implements SLOAD/SSTORE against per-account storage.
// Both charge a single fixed gas cost (see gas.go); there is no cold/warm
// access-list surcharge and no dynamic SSTORE refund accounting.
package vm

import (
	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// sload reads the value at key from addr's storage, defaulting to zero for
// a key that has never been written.
func (evm *EVM) sload(addr types.Address, key uint256.Int) uint256.Int {
	return evm.World.GetAccount(addr).GetStorage(key)
}

// sstore writes value at key in addr's storage.
func (evm *EVM) sstore(addr types.Address, key, value uint256.Int) {
	evm.World.GetAccount(addr).SetStorage(key, value)
}
