// evm_log_ops.go implements LOG0..LOG4: build a log entry from the popped
// topics and the memory region named by offset/size, and append it to the
// world state. Gas for these opcodes is entirely accounted for by the
// jump table's fixed per-opcode cost (375 plus 375 per topic); there is no
// per-byte data charge or memory-expansion charge in this core.
package vm

import (
	"errors"

	"github.com/tesseract-chain/evmcore/core/types"
)

// ErrLogTopicCount is returned if a LOG handler is ever asked to build an
// entry with more than the four topics LOG4 allows.
var ErrLogTopicCount = errors.New("log: invalid topic count, must be 0-4")

// buildLog constructs a types.Log from contractAddr, the provided topics,
// and a fresh copy of data (so later memory writes cannot alias it).
func buildLog(contractAddr types.Address, topics []types.Hash, data []byte) (*types.Log, error) {
	if len(topics) > types.MaxLogTopics {
		return nil, ErrLogTopicCount
	}
	topicsCopy := make([]types.Hash, len(topics))
	copy(topicsCopy, topics)
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return &types.Log{Address: contractAddr, Topics: topicsCopy, Data: dataCopy}, nil
}

// emitLog builds and appends a log entry to the world state.
func (evm *EVM) emitLog(contractAddr types.Address, topics []types.Hash, data []byte) error {
	entry, err := buildLog(contractAddr, topics, data)
	if err != nil {
		return err
	}
	evm.World.AddLog(entry)
	return nil
}
