package keyscan

import "math/bits"

// Keymap is a bitmask of pressed keys: bit n is set while the key with
// index n is held down. The zero value means no keys pressed.
type Keymap uint32

// KeymapWidth is the number of keys a Keymap can represent.
const KeymapWidth = 32

// Test reports whether bit n is set. Indexes outside [0, KeymapWidth)
// read as false.
func (k Keymap) Test(n uint) bool {
	if n >= KeymapWidth {
		return false
	}
	return k&(1<<n) != 0
}

// Set sets bit n. Out-of-range indexes are ignored: a matrix with more
// keys than the map can hold silently loses the overflow keys.
func (k *Keymap) Set(n uint) {
	if n < KeymapWidth {
		*k |= 1 << n
	}
}

// Clear clears bit n. Out-of-range indexes are ignored.
func (k *Keymap) Clear(n uint) {
	if n < KeymapWidth {
		*k &^= 1 << n
	}
}

// Count returns the number of pressed keys.
func (k Keymap) Count() int {
	return bits.OnesCount32(uint32(k))
}
