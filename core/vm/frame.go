package vm

import (
	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// Frame bundles one call's execution context (component CTX: who is
// executing, whose code, with what input and value) together with the
// bookkeeping the interpreter loop needs to run that code: remaining gas,
// the cached JUMPDEST analysis, and the static-call restriction inherited
// from an enclosing STATICCALL.
type Frame struct {
	Caller  types.Address
	Address types.Address
	Code    []byte
	Input   []byte
	Gas     uint64
	Value   *uint256.Int

	// Static is true for STATICCALL frames and every frame nested beneath
	// one; state-mutating opcodes fail with ErrWriteProtection while it is
	// set.
	Static bool

	jumpdests map[uint64]bool
}

// NewFrame creates a frame ready to execute code belonging to addr, called
// by caller with the given value and gas allowance.
func NewFrame(caller, addr types.Address, code []byte, input []byte, value *uint256.Int, gas uint64) *Frame {
	return &Frame{
		Caller:  caller,
		Address: addr,
		Code:    code,
		Input:   input,
		Value:   value,
		Gas:     gas,
	}
}

// GetOp returns the opcode at position n, or STOP once n runs past the end
// of the code (so execution falling off the end behaves like an implicit
// STOP).
func (f *Frame) GetOp(n uint64) OpCode {
	if n < uint64(len(f.Code)) {
		return OpCode(f.Code[n])
	}
	return STOP
}

// UseGas attempts to deduct gas from the frame's remaining allowance,
// reporting false (and leaving Gas unchanged) if that would underflow.
func (f *Frame) UseGas(gas uint64) bool {
	if f.Gas < gas {
		return false
	}
	f.Gas -= gas
	return true
}

// validJumpdest reports whether dest names a byte offset that both holds a
// JUMPDEST opcode and is not addressing into a PUSH instruction's immediate
// data, so a crafted jump can never land mid-instruction.
func (f *Frame) validJumpdest(dest *uint256.Int) bool {
	if !dest.IsUint64() {
		return false
	}
	udest := dest.Uint64()
	if udest >= uint64(len(f.Code)) {
		return false
	}
	if OpCode(f.Code[udest]) != JUMPDEST {
		return false
	}
	return f.isCode(udest)
}

// isCode reports whether pos holds a JUMPDEST at a genuine instruction
// start, consulting (and lazily building) the cached JUMPDEST bitmap.
func (f *Frame) isCode(pos uint64) bool {
	if f.jumpdests == nil {
		f.analyzeJumpdests()
	}
	return f.jumpdests[pos]
}

// analyzeJumpdests walks the code once, precomputing which byte offsets are
// valid JUMPDEST targets. Without this, a naive scan for the JUMPDEST byte
// value would misidentify PUSH-data bytes that happen to equal 0x5b as jump
// targets; this walk instead steps over each PUSH instruction's immediate
// operand so only genuine instruction boundaries are recorded.
func (f *Frame) analyzeJumpdests() {
	f.jumpdests = make(map[uint64]bool)
	for i := uint64(0); i < uint64(len(f.Code)); i++ {
		op := OpCode(f.Code[i])
		if op == JUMPDEST {
			f.jumpdests[i] = true
		}
		if op.IsPush() {
			i += uint64(op.PushSize())
		}
	}
}
