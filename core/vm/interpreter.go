package vm

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/state"
	"github.com/tesseract-chain/evmcore/core/types"
	"github.com/tesseract-chain/evmcore/log"
)

// TxContext carries the per-transaction values a running program can read
// through ORIGIN and GASPRICE.
type TxContext struct {
	Origin   types.Address
	GasPrice *uint256.Int
}

// EVM is the execution environment shared by every frame of a single call
// tree: the world state, the transaction context, the block header, and the
// bookkeeping the interpreter loop needs (call depth, instruction table,
// the return data from the most recently completed sub-call).
type EVM struct {
	World     *state.World
	TxContext TxContext

	depth      int
	jumpTable  *JumpTable
	returnData []byte

	Logger *log.Logger
}

// NewEVM returns an EVM ready to execute top-level calls against world.
func NewEVM(world *state.World, tx TxContext) *EVM {
	return &EVM{
		World:     world,
		TxContext: tx,
		jumpTable: newJumpTable(),
		Logger:    log.Default(),
	}
}

// Depth returns the current call-stack depth (0 at the top level).
func (evm *EVM) Depth() int { return evm.depth }

// Run executes fr's code from pc 0, dispatching through the instruction
// table. Gas is charged as a single fixed amount per opcode before it runs;
// there is no dynamic (memory-expansion or access-list) gas component.
// Any error other than ErrExecutionReverted leaves fr with zero gas.
func (evm *EVM) Run(fr *Frame, input []byte) (ret []byte, err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrExecutionReverted) {
			fr.Gas = 0
		}
	}()

	fr.Input = input

	var (
		pc    uint64
		stack = NewStack()
		mem   = NewMemory()
	)

	for {
		op := fr.GetOp(pc)
		inst := evm.jumpTable[op]
		if inst == nil || inst.execute == nil {
			return nil, ErrInvalidOpcode
		}

		if inst.writes && fr.Static {
			return nil, ErrWriteProtection
		}

		sLen := stack.Len()
		if sLen < inst.minStack {
			return nil, ErrStackUnderflow
		}
		if sLen > inst.maxStack {
			return nil, ErrStackOverflow
		}

		if inst.constantGas > 0 && !fr.UseGas(inst.constantGas) {
			return []byte(outOfGasMessage), ErrOutOfGas
		}

		ret, err := inst.execute(&pc, evm, fr, mem, stack)
		if err != nil {
			switch {
			case errors.Is(err, ErrExecutionReverted):
				return ret, err
			case errors.Is(err, ErrInvalidJump):
				return []byte(badJumpMessage), err
			default:
				return nil, err
			}
		}

		if inst.halts {
			return ret, nil
		}
		if inst.jumps {
			continue
		}
		pc++
	}
}
