package keyscan

import (
	"errors"
	"fmt"
)

// ErrTooManyLines indicates the configured rows and columns together
// exceed the width of a Keymap.
var ErrTooManyLines = errors.New("keyscan: row and column count exceeds keymap width")

// HardwareError reports a failed GPIO operation: acquiring a line,
// switching its mode, or reading or writing its level. It carries the pin
// address and the operation so wiring and permission problems can be
// diagnosed from the message alone.
type HardwareError struct {
	Op  string // "open", "configure-input", "configure-output", "write" or "read"
	Pin uint8  // BCM pin address; meaningless when Op is "open"
	Err error
}

func (e *HardwareError) Error() string {
	if e.Op == "open" {
		return fmt.Sprintf("keyscan: open gpio: %v", e.Err)
	}
	return fmt.Sprintf("keyscan: %s gpio %d: %v", e.Op, e.Pin, e.Err)
}

func (e *HardwareError) Unwrap() error { return e.Err }
