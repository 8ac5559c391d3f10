// account.go and the accompanying header type implement the two pieces of
// §3's data model that aren't plain fixed-size values: per-account storage
// and the single queryable block header.
package types

import "github.com/holiman/uint256"

// Account holds the per-address state the interpreter can read and write:
// balance, nonce, immutable code, and a key/value storage mapping. An
// account from NewAccount is the "absent account": zero balance and nonce,
// nil code, and a storage map that returns zero for every key. The zero
// value Account differs from it only in having a nil Balance.
type Account struct {
	Nonce   uint64
	Balance *uint256.Int
	Code    []byte
	Storage map[uint256.Int]uint256.Int
}

// NewAccount returns a freshly zeroed account, ready to be installed in the
// world state's account map.
func NewAccount() *Account {
	return &Account{
		Balance: new(uint256.Int),
		Storage: make(map[uint256.Int]uint256.Int),
	}
}

// GetStorage returns the value stored at key, or zero if key has never
// been written (or was last written as zero).
func (a *Account) GetStorage(key uint256.Int) uint256.Int {
	if a.Storage == nil {
		return uint256.Int{}
	}
	return a.Storage[key]
}

// SetStorage writes value at key, deleting the entry when value is zero so
// the storage map never grows to hold explicit zeroes.
func (a *Account) SetStorage(key, value uint256.Int) {
	if value.IsZero() {
		delete(a.Storage, key)
		return
	}
	if a.Storage == nil {
		a.Storage = make(map[uint256.Int]uint256.Int)
	}
	a.Storage[key] = value
}

// BlockHeader is the subset of block-header fields the BLOCKHASH..BASEFEE
// opcodes expose. Only the current (latest) header is queryable per §3.
type BlockHeader struct {
	BlockHash  Hash
	Coinbase   Address
	Timestamp  *uint256.Int
	Number     *uint256.Int
	Difficulty *uint256.Int
	GasLimit   *uint256.Int
	ChainID    *uint256.Int
	BaseFee    *uint256.Int
}
