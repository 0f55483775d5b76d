// Package keyscan reads a keypad wired as a row/column matrix on GPIO
// lines and reports the pressed keys as a 32-bit map.
//
// Rows are driven outputs and columns are pulled-up inputs. A scan walks
// the rows, pulling each one low in turn, letting the lines settle, and
// sampling every column; a column reading low while its row is driven
// means the key at that intersection is closed. Key index r*cols+c is the
// bit position in the resulting Keymap.
//
// A single scan is one instantaneous sample per key. Debouncing across
// time, and serializing concurrent callers, is up to the caller; the
// firmware polls from one goroutine and diffs successive maps.
package keyscan
