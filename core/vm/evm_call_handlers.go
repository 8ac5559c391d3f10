package vm

// evm_call_handlers.go implements the four CALL-family variants. All four
// share the same operand layout and the same depth/static-write guard; they
// differ only in whose address and code run, whose storage is touched, and
// whether a static restriction is forced on regardless of the caller's own
// frame.
//
// Value transfer between accounts is out of scope for this core: CALL and
// CALLCODE still read the value operand off the stack (matching the source,
// which pops it uniformly for all four variants) but no balance ever moves
// as a result. Balances change in only two places: SELFDESTRUCT moves one
// via state.World.RegisterDestroy, and CREATE/CREATE2 credit the new
// contract with the value operand without debiting the caller.

import (
	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// CallKind identifies which of the four CALL-family semantics to apply.
type CallKind int

const (
	CallKindCall CallKind = iota
	CallKindCallCode
	CallKindDelegateCall
	CallKindStaticCall
)

// call is the shared implementation behind Call, CallCode, DelegateCall, and
// StaticCall. callerValue is the value of the frame issuing the call, used
// only by DelegateCall (which inherits it rather than using the popped
// operand).
func (evm *EVM) call(kind CallKind, caller, target types.Address, input []byte, gas uint64, value *uint256.Int, callerValue *uint256.Int, parentStatic bool) ([]byte, uint64, error) {
	if evm.depth >= maxCallDepth {
		return nil, gas, ErrMaxCallDepth
	}

	static := parentStatic || kind == CallKindStaticCall
	if static && kind != CallKindDelegateCall && value != nil && !value.IsZero() {
		return nil, gas, ErrWriteProtection
	}

	var (
		codeAddr      types.Address
		executionAddr types.Address
		frameValue    *uint256.Int
	)
	switch kind {
	case CallKindCall, CallKindStaticCall:
		codeAddr, executionAddr = target, target
		frameValue = value
	case CallKindCallCode:
		codeAddr, executionAddr = target, caller
		frameValue = value
	case CallKindDelegateCall:
		codeAddr, executionAddr = target, caller
		frameValue = callerValue
	}
	if kind == CallKindStaticCall {
		frameValue = new(uint256.Int)
	}

	code := evm.World.GetAccount(codeAddr).Code
	if len(code) == 0 {
		return nil, gas, nil
	}

	fr := NewFrame(caller, executionAddr, code, input, frameValue, gas)
	fr.Static = static

	evm.depth++
	ret, err := evm.Run(fr, input)
	evm.depth--

	evm.returnData = ret
	return ret, fr.Gas, err
}

// Call executes a CALL: code and storage both belong to target.
func (evm *EVM) Call(caller, target types.Address, input []byte, gas uint64, value *uint256.Int, static bool) ([]byte, uint64, error) {
	return evm.call(CallKindCall, caller, target, input, gas, value, nil, static)
}

// CallCode executes a CALLCODE: target's code runs against the caller's own
// address (storage, balance, ADDRESS all remain the caller's).
func (evm *EVM) CallCode(caller, target types.Address, input []byte, gas uint64, value *uint256.Int, static bool) ([]byte, uint64, error) {
	return evm.call(CallKindCallCode, caller, target, input, gas, value, nil, static)
}

// DelegateCall executes a DELEGATECALL: target's code runs against the
// caller's address and inherits the caller's own callvalue rather than
// using the (still popped, per convention) value operand.
func (evm *EVM) DelegateCall(caller, target types.Address, input []byte, gas uint64, callerValue *uint256.Int, static bool) ([]byte, uint64, error) {
	return evm.call(CallKindDelegateCall, caller, target, input, gas, nil, callerValue, static)
}

// StaticCall executes a STATICCALL: code and storage belong to target, and
// the static restriction is forced on for the callee's entire subtree
// regardless of the caller's own static flag.
func (evm *EVM) StaticCall(caller, target types.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	return evm.call(CallKindStaticCall, caller, target, input, gas, nil, nil, true)
}
