package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestStackPushPop(t *testing.T) {
	st := NewStack()
	a := uint256.NewInt(1)
	b := uint256.NewInt(2)
	if err := st.Push(a); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := st.Push(b); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", st.Len())
	}
	top := st.Pop()
	if top.Cmp(b) != 0 {
		t.Fatalf("Pop() = %v, want %v", top, b)
	}
	if st.Len() != 1 {
		t.Fatalf("Len() after Pop = %d, want 1", st.Len())
	}
}

func TestStackOverflow(t *testing.T) {
	st := NewStack()
	one := uint256.NewInt(1)
	for i := 0; i < stackLimit; i++ {
		if err := st.Push(one); err != nil {
			t.Fatalf("unexpected error at push %d: %v", i, err)
		}
	}
	if err := st.Push(one); err != ErrStackOverflow {
		t.Fatalf("Push past limit = %v, want ErrStackOverflow", err)
	}
}

func TestStackDupSwap(t *testing.T) {
	st := NewStack()
	st.Push(uint256.NewInt(1))
	st.Push(uint256.NewInt(2))
	st.Push(uint256.NewInt(3))

	st.Dup(1) // duplicate top (3)
	if st.Len() != 4 || st.Peek().Uint64() != 3 {
		t.Fatalf("Dup(1) failed: len=%d top=%v", st.Len(), st.Peek())
	}

	st.Swap(1) // swap top (3) with item below it (3, dup'd)
	if st.Peek().Uint64() != 3 {
		t.Fatalf("Swap(1) unexpected top: %v", st.Peek())
	}
}

// TestJumpTableMaxStackAllowsFullDepthArithmetic exercises the interpreter
// loop's stack-bounds check directly: a 2-pop/1-push opcode like ADD must
// stay runnable with the stack completely full (net push is negative), and
// a 0-pop/1-push opcode like PUSH1 must be rejected one item earlier, since
// it would otherwise overflow stackLimit.
func TestJumpTableMaxStackAllowsFullDepthArithmetic(t *testing.T) {
	tbl := newJumpTable()

	addOp := tbl[ADD]
	if addOp.maxStack != stackLimit+1 {
		t.Fatalf("ADD.maxStack = %d, want %d", addOp.maxStack, stackLimit+1)
	}
	push1Op := tbl[PUSH1]
	if push1Op.maxStack != stackLimit-1 {
		t.Fatalf("PUSH1.maxStack = %d, want %d", push1Op.maxStack, stackLimit-1)
	}
	dupOp := tbl[DUP1]
	if dupOp.maxStack != stackLimit-1 {
		t.Fatalf("DUP1.maxStack = %d, want %d", dupOp.maxStack, stackLimit-1)
	}
	swapOp := tbl[SWAP1]
	if swapOp.maxStack != stackLimit {
		t.Fatalf("SWAP1.maxStack = %d, want %d", swapOp.maxStack, stackLimit)
	}

	st := NewStack()
	for i := 0; i < stackLimit; i++ {
		if err := st.Push(uint256.NewInt(1)); err != nil {
			t.Fatalf("unexpected error filling stack: %v", err)
		}
	}
	// A full stack must still satisfy ADD's bounds check (it nets -1).
	if st.Len() > addOp.maxStack {
		t.Fatalf("full stack (%d) exceeds ADD.maxStack (%d)", st.Len(), addOp.maxStack)
	}
	// But it must fail PUSH1's bounds check (it nets +1).
	if st.Len() <= push1Op.maxStack {
		t.Fatalf("full stack (%d) should exceed PUSH1.maxStack (%d)", st.Len(), push1Op.maxStack)
	}
}

func TestStackBack(t *testing.T) {
	st := NewStack()
	st.Push(uint256.NewInt(10))
	st.Push(uint256.NewInt(20))
	st.Push(uint256.NewInt(30))
	if st.Back(0).Uint64() != 30 {
		t.Fatalf("Back(0) = %v, want 30", st.Back(0))
	}
	if st.Back(2).Uint64() != 10 {
		t.Fatalf("Back(2) = %v, want 10", st.Back(2))
	}
}
