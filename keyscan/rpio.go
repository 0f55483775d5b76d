package keyscan

import "github.com/stianeikeland/go-rpio"

// RPiDriver drives the Raspberry Pi GPIO header through go-rpio. All pin
// operations work on the memory-mapped registers and cannot fail once the
// mapping is open, so only OpenRPi and Close return real errors.
type RPiDriver struct{}

// OpenRPi maps the GPIO registers and returns a driver over them. It
// fails when /dev/gpiomem (or /dev/mem) cannot be opened, typically a
// permission problem.
func OpenRPi() (*RPiDriver, error) {
	if err := rpio.Open(); err != nil {
		return nil, &HardwareError{Op: "open", Err: err}
	}
	return &RPiDriver{}, nil
}

func (d *RPiDriver) ConfigureInput(pin uint8, pull Pull) error {
	p := rpio.Pin(pin)
	p.Input()
	if pull == PullDown {
		p.PullDown()
	} else {
		p.PullUp()
	}
	return nil
}

func (d *RPiDriver) ConfigureOutput(pin uint8) error {
	rpio.Pin(pin).Output()
	return nil
}

func (d *RPiDriver) Write(pin uint8, level Level) error {
	if level == High {
		rpio.Pin(pin).High()
	} else {
		rpio.Pin(pin).Low()
	}
	return nil
}

func (d *RPiDriver) Read(pin uint8) (Level, error) {
	if rpio.Pin(pin).Read() == rpio.High {
		return High, nil
	}
	return Low, nil
}

// Close unmaps the GPIO registers. Pin modes and levels are left as they
// are; the lines stay configured for whoever claims them next.
func (d *RPiDriver) Close() error {
	return rpio.Close()
}
