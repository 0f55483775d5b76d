package keyscan_test

import (
	"errors"
	"testing"

	"bast-security/keypad-firmware/keyscan"
)

// Wiring used by most tests: the 8x3 pad of the reference design.
var (
	testRows = []uint8{13, 12, 16, 17, 20, 22, 23, 24}
	testCols = []uint8{25, 26, 27}
)

type pinMode int

const (
	modeUnset pinMode = iota
	modeInput
	modeOutput
)

var errClaimed = errors.New("line already claimed")

// simDriver fakes the GPIO header in memory. Output pins remember the
// level they were driven to; reading a column consults the closed
// switches against every low row, like the real pull-up network would.
type simDriver struct {
	t *testing.T

	modes  map[uint8]pinMode
	pulls  map[uint8]keyscan.Pull
	levels map[uint8]keyscan.Level
	keys   map[[2]uint8]bool // [row pin, col pin] -> switch closed

	claimed  map[uint8]bool // pins that fail to configure
	readErr  map[uint8]error
	writeErr map[uint8]error

	reads      int
	badSamples int // column samples taken with != 1 row driven low
	shutDown   bool
}

func newSimDriver(t *testing.T) *simDriver {
	return &simDriver{
		t:        t,
		modes:    make(map[uint8]pinMode),
		pulls:    make(map[uint8]keyscan.Pull),
		levels:   make(map[uint8]keyscan.Level),
		keys:     make(map[[2]uint8]bool),
		claimed:  make(map[uint8]bool),
		readErr:  make(map[uint8]error),
		writeErr: make(map[uint8]error),
	}
}

// press closes the switch between testRows[r] and testCols[c].
func (d *simDriver) press(r, c int) {
	d.keys[[2]uint8{testRows[r], testCols[c]}] = true
}

func (d *simDriver) release(r, c int) {
	delete(d.keys, [2]uint8{testRows[r], testCols[c]})
}

func (d *simDriver) ConfigureInput(pin uint8, pull keyscan.Pull) error {
	if d.claimed[pin] {
		return errClaimed
	}
	d.modes[pin] = modeInput
	d.pulls[pin] = pull
	return nil
}

func (d *simDriver) ConfigureOutput(pin uint8) error {
	if d.claimed[pin] {
		return errClaimed
	}
	d.modes[pin] = modeOutput
	return nil
}

func (d *simDriver) Write(pin uint8, level keyscan.Level) error {
	if err := d.writeErr[pin]; err != nil {
		return err
	}
	if d.modes[pin] != modeOutput {
		d.t.Errorf("write to gpio %d which is not an output", pin)
	}
	d.levels[pin] = level
	return nil
}

func (d *simDriver) Read(pin uint8) (keyscan.Level, error) {
	if err := d.readErr[pin]; err != nil {
		return keyscan.Low, err
	}
	if d.modes[pin] != modeInput {
		d.t.Errorf("read from gpio %d which is not an input", pin)
	}
	d.reads++
	if d.lowRows() != 1 {
		d.badSamples++
	}
	for sw := range d.keys {
		if sw[1] == pin && d.modes[sw[0]] == modeOutput && d.levels[sw[0]] == keyscan.Low {
			return keyscan.Low, nil
		}
	}
	// The pull-up keeps an open column high.
	return keyscan.High, nil
}

// lowRows counts the output pins currently driven low.
func (d *simDriver) lowRows() int {
	n := 0
	for pin, mode := range d.modes {
		if mode == modeOutput && d.levels[pin] == keyscan.Low {
			n++
		}
	}
	return n
}

func (d *simDriver) Close() error {
	d.shutDown = true
	return nil
}
