// log.go defines the log entry emitted by LOG0..LOG4.
package types

// MaxLogTopics is the maximum number of indexed topics a single log entry
// may carry (LOG0 has zero, LOG4 has four).
const MaxLogTopics = 4

// Log is a single entry appended to the world state's log sequence by a
// LOGn opcode.
type Log struct {
	// Address is the account (ctx.address) that emitted the log.
	Address Address
	// Topics is the ordered sequence of 0..4 indexed words.
	Topics []Hash
	// Data is the unindexed log payload, copied out of memory at emission
	// time so later memory writes cannot mutate it.
	Data []byte
}
