// Package state implements the world state the interpreter reads and
// writes: the account set, the single queryable block header, the
// append-only log sequence, and self-destruct bookkeeping.
package state

import (
	"github.com/holiman/uint256"

	"github.com/tesseract-chain/evmcore/core/types"
)

// World is the full state visible to a running interpreter.
type World struct {
	accounts map[types.Address]*types.Account
	block    *types.BlockHeader
	logs     []*types.Log

	// destroyed tracks addresses that SELFDESTRUCT has registered for
	// removal. Registration is idempotent: an address may appear in a
	// SELFDESTRUCT instruction any number of times but is swept only once.
	destroyed map[types.Address]bool
	order     []types.Address
}

// New returns an empty world state with the given current block header.
func New(block *types.BlockHeader) *World {
	return &World{
		accounts:  make(map[types.Address]*types.Account),
		block:     block,
		destroyed: make(map[types.Address]bool),
	}
}

// GetAccount returns the account at addr, creating and installing a fresh
// zeroed account if none exists yet. The returned pointer is live: callers
// mutate balance, nonce, code, and storage directly through it.
func (w *World) GetAccount(addr types.Address) *types.Account {
	if a, ok := w.accounts[addr]; ok {
		return a
	}
	a := types.NewAccount()
	w.accounts[addr] = a
	return a
}

// HasAccount reports whether addr has ever been touched (as distinct from
// GetAccount, which always succeeds by creating one).
func (w *World) HasAccount(addr types.Address) bool {
	_, ok := w.accounts[addr]
	return ok
}

// SetAccount installs acc at addr, replacing whatever was there. Used by the
// creation engine to install a freshly derived contract account.
func (w *World) SetAccount(addr types.Address, acc *types.Account) {
	w.accounts[addr] = acc
}

// CurrentBlock returns the single block header the BLOCKHASH..BASEFEE
// opcodes may query.
func (w *World) CurrentBlock() *types.BlockHeader {
	return w.block
}

// AddLog appends entry to the world's log sequence. Logs are never removed,
// even when the frame that emitted them later fails: this core does not
// roll back state on a reverted sub-call.
func (w *World) AddLog(entry *types.Log) {
	w.logs = append(w.logs, entry)
}

// Logs returns every log emitted so far, oldest first.
func (w *World) Logs() []*types.Log {
	return w.logs
}

// RegisterDestroy records that self should be swept by Clean, moving its
// entire balance to beneficiary immediately. Calling it more than once for
// the same self is a no-op after the first call, matching SELFDESTRUCT's
// idempotent registration semantics.
func (w *World) RegisterDestroy(self, beneficiary types.Address) {
	if w.destroyed[self] {
		return
	}
	w.destroyed[self] = true
	w.order = append(w.order, self)

	src := w.GetAccount(self)
	if self != beneficiary {
		dst := w.GetAccount(beneficiary)
		dst.Balance = new(uint256.Int).Add(dst.Balance, src.Balance)
		src.Balance = new(uint256.Int)
	}
}

// IsDestroyed reports whether self has been registered for destruction.
func (w *World) IsDestroyed(self types.Address) bool {
	return w.destroyed[self]
}

// Clean deletes every account registered via RegisterDestroy from the
// account map. It is deferred rather than immediate so a contract that
// self-destructs can still be read (e.g. by EXTCODESIZE from a sibling
// call) for the remainder of the outermost call that triggered it.
func (w *World) Clean() {
	for _, addr := range w.order {
		delete(w.accounts, addr)
	}
	w.order = nil
}
