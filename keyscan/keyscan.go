package keyscan

import "time"

// DefaultSettle is how long a driven row is left to stabilize before its
// columns are sampled. The value suits the reference keypad wiring;
// different matrix wiring needs its own measurement.
const DefaultSettle = 10 * time.Microsecond

// Config describes the matrix wiring. Rows are driven outputs and Cols
// are sensed inputs, both addressed by BCM pin number, in the order keys
// are numbered. A pin must not appear as both a row and a column; that is
// a wiring invariant, not something checked here.
type Config struct {
	Rows []uint8
	Cols []uint8
	// Settle overrides DefaultSettle when non-zero. Too short a delay
	// risks sampling a column still transitioning from the previous
	// row's drive, which shows up as ghost presses.
	Settle time.Duration
}

// Scanner reads a key matrix wired row/column onto GPIO lines. Sensing is
// active-low: a scan drives one row low at a time and a column reading
// low means the key at that intersection is closed.
//
// A Scanner holds its lines for the life of the process; call Close to
// park the rows and release them. Scan keeps no state between calls, but
// concurrent Scans must be serialized by the caller: two rows driven low
// at once would short unrelated columns together and corrupt the reading.
type Scanner struct {
	drv    LineDriver
	rows   []uint8
	cols   []uint8
	settle time.Duration
}

// New builds a Scanner over the given driver and wiring. It fails with
// ErrTooManyLines when the matrix has more lines than a Keymap can
// represent; keys beyond the Keymap width would be lost.
func New(drv LineDriver, cfg Config) (*Scanner, error) {
	if len(cfg.Rows)+len(cfg.Cols) > KeymapWidth {
		return nil, ErrTooManyLines
	}
	settle := cfg.Settle
	if settle == 0 {
		settle = DefaultSettle
	}
	return &Scanner{
		drv:    drv,
		rows:   append([]uint8(nil), cfg.Rows...),
		cols:   append([]uint8(nil), cfg.Cols...),
		settle: settle,
	}, nil
}

// Rows returns the number of matrix rows.
func (s *Scanner) Rows() int { return len(s.rows) }

// Cols returns the number of matrix columns.
func (s *Scanner) Cols() int { return len(s.cols) }

// Init claims and configures every line: columns as pulled-up inputs, so
// an open intersection reads released, then rows as outputs parked high.
// The configuration is durable between scans; nothing is reverted on
// failure, and any failure means the whole matrix is unusable.
func (s *Scanner) Init() error {
	for _, col := range s.cols {
		if err := s.drv.ConfigureInput(col, PullUp); err != nil {
			return &HardwareError{Op: "configure-input", Pin: col, Err: err}
		}
	}
	for _, row := range s.rows {
		if err := s.drv.ConfigureOutput(row); err != nil {
			return &HardwareError{Op: "configure-output", Pin: row, Err: err}
		}
		if err := s.drv.Write(row, High); err != nil {
			return &HardwareError{Op: "write", Pin: row, Err: err}
		}
	}
	return nil
}

// Scan drives each row low in turn, blocks for the settle delay, samples
// every column and accumulates the pressed keys into a Keymap: bit
// r*Cols()+c is set while the key at row r, column c is held. Every bit
// is written from the freshly sampled level; nothing carries over between
// calls. Any line access failure aborts the scan immediately.
func (s *Scanner) Scan() (Keymap, error) {
	var keys Keymap
	idx := uint(0)
	for _, row := range s.rows {
		if err := s.drv.Write(row, Low); err != nil {
			return 0, &HardwareError{Op: "write", Pin: row, Err: err}
		}
		time.Sleep(s.settle)

		for _, col := range s.cols {
			level, err := s.drv.Read(col)
			if err != nil {
				return 0, &HardwareError{Op: "read", Pin: col, Err: err}
			}
			if level == Low {
				keys.Set(idx)
			} else {
				keys.Clear(idx)
			}
			idx++
		}

		// Park the row before moving to the next one so no two rows
		// are ever driven at the same time.
		if err := s.drv.Write(row, High); err != nil {
			return 0, &HardwareError{Op: "write", Pin: row, Err: err}
		}
	}
	return keys, nil
}

// Close parks every row at the inactive level and releases the driver.
// The scanner must not be used afterwards.
func (s *Scanner) Close() error {
	for _, row := range s.rows {
		if err := s.drv.Write(row, High); err != nil {
			return &HardwareError{Op: "write", Pin: row, Err: err}
		}
	}
	return s.drv.Close()
}
