package vm

// evm_create.go implements CREATE/CREATE2: address derivation, collision
// detection, and init code execution. Unlike a production EVM this core
// forwards a fixed internal gas budget to init code rather than the
// parent's available gas minus a reserved fraction, and the caller's nonce
// is only incremented once the creation actually succeeds.

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
	"github.com/tesseract-chain/evmcore/crypto"
	"github.com/tesseract-chain/evmcore/rlp"
)

// ErrCreateCollision is returned when the derived contract address already
// holds a nonce or code, matching the source's "can't deploy over an
// existing contract" rule.
var ErrCreateCollision = errors.New("create: contract address collision")

// createGasBudget is the fixed amount of gas made available to init code,
// independent of how much gas the calling frame has left (beyond simply
// having at least this much).
const createGasBudget = 10000

// createAddress computes the CREATE contract address: the low 20 bytes of
// keccak256(rlp([sender, nonce])).
func createAddress(caller types.Address, nonce uint64) types.Address {
	addrEnc := rlp.EncodeBytes20(caller)
	nonceEnc := rlp.EncodeUint64(nonce)
	payload := append(append([]byte{}, addrEnc...), nonceEnc...)
	data := rlp.WrapList(payload)
	return types.BytesToAddress(crypto.Keccak256(data))
}

// create2Address computes the CREATE2 contract address: the low 20 bytes of
// keccak256(0xff ++ sender ++ salt ++ keccak256(initCode)).
func create2Address(caller types.Address, salt *uint256.Int, initCodeHash []byte) types.Address {
	saltBytes := salt.Bytes32()
	data := make([]byte, 0, 1+types.AddressLength+32+32)
	data = append(data, 0xff)
	data = append(data, caller[:]...)
	data = append(data, saltBytes[:]...)
	data = append(data, initCodeHash...)
	return types.BytesToAddress(crypto.Keccak256(data))
}

// checkCollision reports whether addr is already occupied by a contract (a
// non-zero nonce or non-empty code), in which case creation must fail.
func (evm *EVM) checkCollision(addr types.Address) bool {
	if !evm.World.HasAccount(addr) {
		return false
	}
	acc := evm.World.GetAccount(addr)
	return acc.Nonce != 0 || len(acc.Code) != 0
}

// create is the shared implementation behind Create and Create2: it installs
// the new account, runs the init code with the fixed creation gas budget,
// and on success stores the returned bytes as the new contract's code.
func (evm *EVM) create(caller types.Address, initCode []byte, gas uint64, value *uint256.Int, contractAddr types.Address, static bool) ([]byte, types.Address, uint64, error) {
	if evm.depth >= maxCallDepth {
		return nil, types.Address{}, gas, ErrMaxCallDepth
	}
	if static {
		return nil, types.Address{}, gas, ErrWriteProtection
	}
	if evm.checkCollision(contractAddr) {
		return nil, types.Address{}, gas, ErrCreateCollision
	}
	if gas < createGasBudget {
		return nil, types.Address{}, gas, ErrOutOfGas
	}

	contract := types.NewAccount()
	contract.Nonce = 1
	contract.Balance = value.Clone()
	evm.World.SetAccount(contractAddr, contract)

	fr := NewFrame(caller, contractAddr, initCode, nil, value, createGasBudget)

	evm.depth++
	ret, err := evm.Run(fr, nil)
	evm.depth--

	remaining := gas - createGasBudget + fr.Gas

	if err != nil {
		return ret, types.Address{}, remaining, err
	}

	contract.Code = ret
	evm.World.GetAccount(caller).Nonce++
	return ret, contractAddr, remaining, nil
}

// Create executes CREATE: the new address is derived from the caller's
// current nonce.
func (evm *EVM) Create(caller types.Address, initCode []byte, gas uint64, value *uint256.Int, static bool) ([]byte, types.Address, uint64, error) {
	nonce := evm.World.GetAccount(caller).Nonce
	addr := createAddress(caller, nonce)
	return evm.create(caller, initCode, gas, value, addr, static)
}

// Create2 executes CREATE2: the new address is derived deterministically
// from the caller, salt, and init code hash, independent of nonce.
func (evm *EVM) Create2(caller types.Address, initCode []byte, gas uint64, value *uint256.Int, salt *uint256.Int, static bool) ([]byte, types.Address, uint64, error) {
	codeHash := crypto.Keccak256(initCode)
	addr := create2Address(caller, salt, codeHash)
	return evm.create(caller, initCode, gas, value, addr, static)
}
