package sequence

// startPosition marks the state before the first key press. Layouts hold at
// most keypad.MaxKeys keys, so no real key index collides with it.
const startPosition = 0xFF

// memoKey packs (position, remaining length, vowel budget) into one integer:
//
//	bits 0-7   position or startPosition
//	bits 8-15  vowel budget
//	bits 16-63 remaining length
type memoKey uint64

func packKey(position, length, budget int) memoKey {
	return memoKey(uint64(length)<<16 | uint64(budget&0xFF)<<8 | uint64(position&0xFF))
}

func (k memoKey) position() int { return int(k & 0xFF) }
func (k memoKey) budget() int   { return int(k>>8&0xFF) }
func (k memoKey) length() int   { return int(k >> 16) }
