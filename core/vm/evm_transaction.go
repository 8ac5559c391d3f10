// evm_transaction.go implements the top-level driver: it turns a Message
// (the transaction envelope's call description) into the outermost Frame,
// runs it to completion, and performs the one piece of end-of-transaction
// bookkeeping the interpreter itself cannot do mid-flight -- sweeping
// self-destructed accounts via state.World.Clean. Everything upstream of
// Message (hex decoding, signature recovery, nonce/intrinsic-gas
// validation) is the host's concern, not this core's.
package vm

import (
	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// Message describes the call a transaction asks the interpreter to make:
// component MSG from the spec's data model, plus the nil-To convention used
// to request contract creation instead of a call.
type Message struct {
	From  types.Address
	To    *types.Address // nil requests CREATE instead of CALL
	Value *uint256.Int
	Data  []byte
	Gas   uint64
}

// ExecutionResult is the top-level driver's return surface: success, the
// returned (or reverted) data, and -- for a creation -- the address that
// was derived and installed.
type ExecutionResult struct {
	Success      bool
	ReturnData   []byte
	ContractAddr types.Address
	RemainingGas uint64
}

// ApplyMessage is the top-level driver named in §6/§7: it builds the
// outermost frame from msg, runs it, and invokes World.Clean() exactly
// once regardless of whether the call tree succeeded -- self-destructs
// registered by any frame that ran before a top-level failure are still
// honoured, per §7's propagation policy.
func (evm *EVM) ApplyMessage(msg Message) ExecutionResult {
	defer evm.World.Clean()

	value := msg.Value
	if value == nil {
		value = new(uint256.Int)
	}

	if msg.To == nil {
		ret, addr, remaining, err := evm.Create(msg.From, msg.Data, msg.Gas, value, false)
		return ExecutionResult{
			Success:      err == nil,
			ReturnData:   ret,
			ContractAddr: addr,
			RemainingGas: remaining,
		}
	}

	ret, remaining, err := evm.Call(msg.From, *msg.To, msg.Data, msg.Gas, value, false)
	return ExecutionResult{
		Success:      err == nil,
		ReturnData:   ret,
		ContractAddr: *msg.To,
		RemainingGas: remaining,
	}
}
