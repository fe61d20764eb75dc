package cpu

const (
	WORD_BITS   = 4                // Bits in a machine word.
	WORD_MASK   = 1<<WORD_BITS - 1 // Mask of a machine word.
	MEMORY_SIZE = 1 << WORD_BITS   // Number of addressable memory slots.

	carryBit    = 1 << WORD_BITS       // Carry out of a word.
	negativeBit = 1 << (WORD_BITS - 1) // Sign bit of a word.
)

// Word is a 4-bit machine word. The upper bits of the byte are always zero.
type Word uint8

// Wrap reduces a wide intermediate result to a machine word (modulo 16).
// It is the only place where values are reduced.
func Wrap(value uint8) Word {
	return Word(value & WORD_MASK)
}
