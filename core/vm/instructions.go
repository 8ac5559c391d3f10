package vm

// instructions.go implements the body of every opcode wired into the
// instruction table in jump_table.go. Arithmetic and bitwise ops operate
// directly on the 256-bit words the stack holds rather than going through a
// big.Int intermediate; the uint256 package's own modular arithmetic
// already wraps at 2^256 the way the EVM's word size requires.

import (
	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
	"github.com/tesseract-chain/evmcore/crypto"
)

func opStop(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, nil
}

func opAdd(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Add(&x, y)
	return nil, nil
}

func opMul(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Mul(&x, y)
	return nil, nil
}

func opSub(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Sub(&x, y)
	return nil, nil
}

func opDiv(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Div(&x, y)
	return nil, nil
}

func opSdiv(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.SDiv(&x, y)
	return nil, nil
}

func opMod(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Mod(&x, y)
	return nil, nil
}

func opSmod(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.SMod(&x, y)
	return nil, nil
}

func opAddmod(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y, z := stack.Pop(), stack.Pop(), stack.Peek()
	z.AddMod(&x, &y, z)
	return nil, nil
}

func opMulmod(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y, z := stack.Pop(), stack.Pop(), stack.Peek()
	z.MulMod(&x, &y, z)
	return nil, nil
}

func opExp(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	base, exponent := stack.Pop(), stack.Peek()
	exponent.Exp(&base, exponent)
	return nil, nil
}

// opSignExtend implements SIGNEXTEND(back, num): num is treated as a signed
// integer occupying back+1 bytes and the result is that value sign-extended
// to the full 256-bit width. A back value of 31 or greater is a no-op since
// the operand already occupies the whole word.
func opSignExtend(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	back, num := stack.Pop(), stack.Peek()
	if back.LtUint64(31) {
		byteIndex := 31 - int(back.Uint64())
		b := num.Bytes32()
		var fill byte
		if b[byteIndex]&0x80 != 0 {
			fill = 0xff
		}
		for i := 0; i < byteIndex; i++ {
			b[i] = fill
		}
		num.SetBytes32(b)
	}
	return nil, nil
}

func opLt(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opGt(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSlt(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opSgt(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opEq(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return nil, nil
}

func opIszero(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return nil, nil
}

func opAnd(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.And(&x, y)
	return nil, nil
}

func opOr(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Or(&x, y)
	return nil, nil
}

func opXor(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x, y := stack.Pop(), stack.Peek()
	y.Xor(&x, y)
	return nil, nil
}

func opNot(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	x.Not(x)
	return nil, nil
}

func opByte(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	th, val := stack.Pop(), stack.Peek()
	if th.LtUint64(32) {
		b := val.Bytes32()
		val.SetUint64(uint64(b[th.Uint64()]))
	} else {
		val.Clear()
	}
	return nil, nil
}

func opShl(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	shift, value := stack.Pop(), stack.Peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil, nil
}

func opShr(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	shift, value := stack.Pop(), stack.Peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return nil, nil
}

func opSar(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	shift, value := stack.Pop(), stack.Peek()
	if shift.LtUint64(256) {
		value.SRsh(value, uint(shift.Uint64()))
		return nil, nil
	}
	b := value.Bytes32()
	if b[0]&0x80 != 0 {
		value.SetAllOne()
	} else {
		value.Clear()
	}
	return nil, nil
}

// opSha3 implements the SHA3 opcode: hash the memory region named by
// offset/size with Keccak-256 and push the digest.
func opSha3(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Peek()
	data := mem.Get(offset.Uint64(), size.Uint64())
	hash := crypto.Keccak256(data)
	size.SetBytes(hash)
	return nil, nil
}

func opAddress(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(fr.Address.Bytes())
	stack.Push(&v)
	return nil, nil
}

func opBalance(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	slot := stack.Peek()
	addr := types.BytesToAddress(slot.Bytes())
	*slot = *evm.World.GetAccount(addr).Balance
	return nil, nil
}

func opOrigin(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(evm.TxContext.Origin.Bytes())
	stack.Push(&v)
	return nil, nil
}

func opCaller(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	v.SetBytes(fr.Caller.Bytes())
	stack.Push(&v)
	return nil, nil
}

func opCallvalue(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	v := new(uint256.Int)
	if fr.Value != nil {
		v.Set(fr.Value)
	}
	stack.Push(v)
	return nil, nil
}

func opCalldataload(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	x := stack.Peek()
	data := make([]byte, 32)
	if x.IsUint64() {
		offset := x.Uint64()
		if offset < uint64(len(fr.Input)) {
			copy(data, fr.Input[offset:])
		}
	}
	x.SetBytes(data)
	return nil, nil
}

func opCalldatasize(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(len(fr.Input))))
	return nil, nil
}

func opCalldatacopy(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	memOffset, dataOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	data := make([]byte, l)
	if dataOffset.IsUint64() {
		if dOff := dataOffset.Uint64(); dOff < uint64(len(fr.Input)) {
			copy(data, fr.Input[dOff:])
		}
	}
	mem.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opCodesize(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(len(fr.Code))))
	return nil, nil
}

func opCodecopy(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	memOffset, codeOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	data := make([]byte, l)
	if codeOffset.IsUint64() {
		if cOff := codeOffset.Uint64(); cOff < uint64(len(fr.Code)) {
			copy(data, fr.Code[cOff:])
		}
	}
	mem.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opGasprice(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	v := new(uint256.Int)
	if evm.TxContext.GasPrice != nil {
		v.Set(evm.TxContext.GasPrice)
	}
	stack.Push(v)
	return nil, nil
}

func opExtcodesize(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	slot := stack.Peek()
	addr := types.BytesToAddress(slot.Bytes())
	slot.SetUint64(uint64(len(evm.World.GetAccount(addr).Code)))
	return nil, nil
}

func opExtcodecopy(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	addrVal := stack.Pop()
	memOffset, codeOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	addr := types.BytesToAddress(addrVal.Bytes())
	code := evm.World.GetAccount(addr).Code
	data := make([]byte, l)
	if codeOffset.IsUint64() {
		if cOff := codeOffset.Uint64(); cOff < uint64(len(code)) {
			copy(data, code[cOff:])
		}
	}
	mem.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opReturndatasize(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(len(evm.returnData))))
	return nil, nil
}

// opReturndatacopy implements RETURNDATACOPY. Unlike CALLDATACOPY/CODECOPY,
// a slice that runs past the end of the last sub-call's return data is an
// error rather than a silent zero-fill: a contract has no way to learn the
// size of return data it didn't ask for.
func opReturndatacopy(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	memOffset, dataOffset, length := stack.Pop(), stack.Pop(), stack.Pop()
	l := length.Uint64()
	if l == 0 {
		return nil, nil
	}
	if !dataOffset.IsUint64() {
		return nil, ErrReturnDataOutOfBounds
	}
	dOff := dataOffset.Uint64()
	end := dOff + l
	if end < dOff || end > uint64(len(evm.returnData)) {
		return nil, ErrReturnDataOutOfBounds
	}
	data := make([]byte, l)
	copy(data, evm.returnData[dOff:end])
	mem.Set(memOffset.Uint64(), l, data)
	return nil, nil
}

func opExtcodehash(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	slot := stack.Peek()
	addr := types.BytesToAddress(slot.Bytes())
	if !evm.World.HasAccount(addr) {
		slot.Clear()
		return nil, nil
	}
	hash := crypto.Keccak256(evm.World.GetAccount(addr).Code)
	slot.SetBytes(hash)
	return nil, nil
}

// opBlockhash returns the current block's hash when asked for the current
// block's number, and zero for every other number: this core exposes only
// the single current block header, not a history of ancestors.
func opBlockhash(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	num := stack.Peek()
	block := evm.World.CurrentBlock()
	if block != nil && block.Number != nil && num.Eq(block.Number) {
		num.SetBytes(block.BlockHash.Bytes())
	} else {
		num.Clear()
	}
	return nil, nil
}

func opCoinbase(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	var v uint256.Int
	if block := evm.World.CurrentBlock(); block != nil {
		v.SetBytes(block.Coinbase.Bytes())
	}
	stack.Push(&v)
	return nil, nil
}

func opTimestamp(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(blockWord(evm, func(b *types.BlockHeader) *uint256.Int { return b.Timestamp }))
	return nil, nil
}

func opNumber(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(blockWord(evm, func(b *types.BlockHeader) *uint256.Int { return b.Number }))
	return nil, nil
}

func opDifficulty(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(blockWord(evm, func(b *types.BlockHeader) *uint256.Int { return b.Difficulty }))
	return nil, nil
}

func opGaslimit(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(blockWord(evm, func(b *types.BlockHeader) *uint256.Int { return b.GasLimit }))
	return nil, nil
}

func opChainid(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(blockWord(evm, func(b *types.BlockHeader) *uint256.Int { return b.ChainID }))
	return nil, nil
}

func opSelfbalance(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	v := new(uint256.Int).Set(evm.World.GetAccount(fr.Address).Balance)
	stack.Push(v)
	return nil, nil
}

func opBasefee(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(blockWord(evm, func(b *types.BlockHeader) *uint256.Int { return b.BaseFee }))
	return nil, nil
}

// blockWord reads one *uint256.Int field off the current block header via
// get, returning a fresh zero value when there is no current block or the
// field was never set.
func blockWord(evm *EVM, get func(*types.BlockHeader) *uint256.Int) *uint256.Int {
	v := new(uint256.Int)
	if block := evm.World.CurrentBlock(); block != nil {
		if f := get(block); f != nil {
			v.Set(f)
		}
	}
	return v
}

func opPop(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Pop()
	return nil, nil
}

func opMload(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	offset := stack.Peek()
	mem.Resize(offset.Uint64() + 32)
	data := mem.Get(offset.Uint64(), 32)
	offset.SetBytes(data)
	return nil, nil
}

func opMstore(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	offset, val := stack.Pop(), stack.Pop()
	mem.Set32(offset.Uint64(), &val)
	return nil, nil
}

func opMstore8(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	offset, val := stack.Pop(), stack.Pop()
	mem.Set(offset.Uint64(), 1, []byte{byte(val.Uint64())})
	return nil, nil
}

func opSload(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	loc := stack.Peek()
	val := evm.sload(fr.Address, *loc)
	*loc = val
	return nil, nil
}

func opSstore(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	key, val := stack.Pop(), stack.Pop()
	evm.sstore(fr.Address, key, val)
	return nil, nil
}

// opJump implements JUMP: pop the destination and, if it names a genuine
// JUMPDEST, move pc there instead of letting the interpreter loop advance it.
func opJump(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	dest := stack.Pop()
	if !fr.validJumpdest(&dest) {
		return nil, ErrInvalidJump
	}
	*pc = dest.Uint64()
	return nil, nil
}

func opJumpi(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	dest, cond := stack.Pop(), stack.Pop()
	if !cond.IsZero() {
		if !fr.validJumpdest(&dest) {
			return nil, ErrInvalidJump
		}
		*pc = dest.Uint64()
	} else {
		*pc++
	}
	return nil, nil
}

func opJumpdest(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, nil
}

func opPc(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(*pc))
	return nil, nil
}

func opMsize(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(uint64(mem.Len())))
	return nil, nil
}

func opGas(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	stack.Push(uint256.NewInt(fr.Gas))
	return nil, nil
}

func opPush0(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	if err := stack.Push(new(uint256.Int)); err != nil {
		return nil, err
	}
	return nil, nil
}

// makePush returns an executionFunc that reads size immediate bytes
// following the opcode and pushes them as a left-padded 256-bit word.
func makePush(size int) executionFunc {
	return func(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
		start := *pc + 1
		codeLen := uint64(len(fr.Code))

		var data []byte
		if start >= codeLen {
			data = make([]byte, size)
		} else {
			end := start + uint64(size)
			if end > codeLen {
				data = make([]byte, size)
				copy(data, fr.Code[start:codeLen])
			} else {
				data = fr.Code[start:end]
			}
		}

		var v uint256.Int
		v.SetBytes(data)
		if err := stack.Push(&v); err != nil {
			return nil, err
		}
		*pc += uint64(size)
		return nil, nil
	}
}

// makeDup returns an executionFunc that duplicates the nth stack item.
func makeDup(n int) executionFunc {
	return func(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
		if err := stack.Dup(n); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// makeSwap returns an executionFunc that swaps the top item with the nth
// item below it.
func makeSwap(n int) executionFunc {
	return func(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
		stack.Swap(n)
		return nil, nil
	}
}

// makeLog returns an executionFunc for LOG0..LOGn: n is the topic count.
func makeLog(n int) executionFunc {
	return func(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
		offset, size := stack.Pop(), stack.Pop()
		topics := make([]types.Hash, n)
		for i := 0; i < n; i++ {
			t := stack.Pop()
			topics[i] = types.BytesToHash(t.Bytes())
		}
		data := mem.Get(offset.Uint64(), size.Uint64())
		if err := evm.emitLog(fr.Address, topics, data); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func opReturn(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Pop()
	return mem.Get(offset.Uint64(), size.Uint64()), nil
}

func opRevert(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	offset, size := stack.Pop(), stack.Pop()
	return mem.Get(offset.Uint64(), size.Uint64()), ErrExecutionReverted
}

func opInvalid(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	return nil, ErrInvalidOpcode
}

// callGasFor caps the requested gas operand at what fr actually has left,
// treating an operand too large to fit in a uint64 as "all of it".
func callGasFor(fr *Frame, requested *uint256.Int) uint64 {
	var want uint64
	if requested.IsUint64() {
		want = requested.Uint64()
	} else {
		want = fr.Gas
	}
	if want > fr.Gas {
		want = fr.Gas
	}
	return want
}

// writeCallResult copies up to retSize bytes of ret into memory at
// retOffset and pushes the CALL-family success flag (1 on success, 0 on
// error) for every variant except CREATE/CREATE2.
func writeCallResult(mem *Memory, ret []byte, retOffset, retSize uint64, stack *Stack, err error) {
	if retSize > 0 && len(ret) > 0 {
		n := retSize
		if uint64(len(ret)) < n {
			n = uint64(len(ret))
		}
		mem.Set(retOffset, n, ret[:n])
	}
	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		stack.Push(uint256.NewInt(1))
	}
}

// opCall implements CALL. Stack (top to bottom): gas, addr, value,
// argsOffset, argsSize, retOffset, retSize.
func opCall(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addrVal := stack.Pop()
	value := stack.Pop()
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	if fr.Static && !value.IsZero() {
		return nil, ErrWriteProtection
	}

	addr := types.BytesToAddress(addrVal.Bytes())
	args := mem.Get(inOffset.Uint64(), inSize.Uint64())
	callGas := callGasFor(fr, &gasVal)
	fr.Gas -= callGas

	ret, returnGas, err := evm.Call(fr.Address, addr, args, callGas, &value, fr.Static)
	fr.Gas += returnGas

	writeCallResult(mem, ret, retOffset.Uint64(), retSize.Uint64(), stack, err)
	return nil, nil
}

// opCallCode implements CALLCODE: target's code runs with the caller's own
// address, storage and balance.
func opCallCode(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addrVal := stack.Pop()
	value := stack.Pop()
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	if fr.Static && !value.IsZero() {
		return nil, ErrWriteProtection
	}

	addr := types.BytesToAddress(addrVal.Bytes())
	args := mem.Get(inOffset.Uint64(), inSize.Uint64())
	callGas := callGasFor(fr, &gasVal)
	fr.Gas -= callGas

	ret, returnGas, err := evm.CallCode(fr.Address, addr, args, callGas, &value, fr.Static)
	fr.Gas += returnGas

	writeCallResult(mem, ret, retOffset.Uint64(), retSize.Uint64(), stack, err)
	return nil, nil
}

// opDelegateCall implements DELEGATECALL. It pops the same seven operands as
// every other CALL-family opcode, but the popped value is discarded: the
// callee inherits the current frame's own callvalue instead.
func opDelegateCall(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addrVal := stack.Pop()
	_ = stack.Pop() // value: popped for stack-layout parity, unused
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	addr := types.BytesToAddress(addrVal.Bytes())
	args := mem.Get(inOffset.Uint64(), inSize.Uint64())
	callGas := callGasFor(fr, &gasVal)
	fr.Gas -= callGas

	ret, returnGas, err := evm.DelegateCall(fr.Address, addr, args, callGas, fr.Value, fr.Static)
	fr.Gas += returnGas

	writeCallResult(mem, ret, retOffset.Uint64(), retSize.Uint64(), stack, err)
	return nil, nil
}

// opStaticCall implements STATICCALL. Like DELEGATECALL it pops a value
// operand for stack-layout parity, but here it is not even meaningful since
// the callee always executes with a zero callvalue.
func opStaticCall(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	gasVal := stack.Pop()
	addrVal := stack.Pop()
	_ = stack.Pop() // value: popped for stack-layout parity, unused
	inOffset, inSize := stack.Pop(), stack.Pop()
	retOffset, retSize := stack.Pop(), stack.Pop()

	addr := types.BytesToAddress(addrVal.Bytes())
	args := mem.Get(inOffset.Uint64(), inSize.Uint64())
	callGas := callGasFor(fr, &gasVal)
	fr.Gas -= callGas

	ret, returnGas, err := evm.StaticCall(fr.Address, addr, args, callGas)
	fr.Gas += returnGas

	writeCallResult(mem, ret, retOffset.Uint64(), retSize.Uint64(), stack, err)
	return nil, nil
}

// opCreate implements CREATE. Stack (top to bottom): value, offset, length.
// Pushes the new contract's address on success, 0 on failure.
func opCreate(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	value := stack.Pop()
	offset, size := stack.Pop(), stack.Pop()
	initCode := mem.Get(offset.Uint64(), size.Uint64())

	ret, addr, remaining, err := evm.Create(fr.Address, initCode, fr.Gas, &value, fr.Static)
	fr.Gas = remaining
	evm.returnData = ret

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		var v uint256.Int
		v.SetBytes(addr.Bytes())
		stack.Push(&v)
	}
	return nil, nil
}

// opCreate2 implements CREATE2. Stack (top to bottom): value, offset,
// length, salt.
func opCreate2(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	value := stack.Pop()
	offset, size := stack.Pop(), stack.Pop()
	salt := stack.Pop()
	initCode := mem.Get(offset.Uint64(), size.Uint64())

	ret, addr, remaining, err := evm.Create2(fr.Address, initCode, fr.Gas, &value, &salt, fr.Static)
	fr.Gas = remaining
	evm.returnData = ret

	if err != nil {
		stack.Push(new(uint256.Int))
	} else {
		var v uint256.Int
		v.SetBytes(addr.Bytes())
		stack.Push(&v)
	}
	return nil, nil
}

// opSelfdestruct implements SELFDESTRUCT: the entire balance of the current
// account moves to beneficiary and the account is swept once the
// outermost call completes (state.World.Clean). Registration is idempotent,
// so a contract that somehow reaches SELFDESTRUCT twice in one call tree
// only transfers its balance the first time.
func opSelfdestruct(pc *uint64, evm *EVM, fr *Frame, mem *Memory, stack *Stack) ([]byte, error) {
	beneficiary := types.BytesToAddress(stack.Pop().Bytes())
	evm.World.RegisterDestroy(fr.Address, beneficiary)
	return nil, nil
}
