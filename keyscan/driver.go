package keyscan

// Level is the electrical state of a digital line.
type Level int

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Pull selects the internal bias resistor for an input line.
type Pull int

const (
	PullUp Pull = iota
	PullDown
)

// LineDriver gives the scanner access to individual digital lines,
// addressed by BCM pin number. The scanner does not multiplex or debounce
// pins itself; it only configures, drives and samples them through this
// interface. Configuration made through a LineDriver is durable: nothing
// is reverted until Close.
type LineDriver interface {
	ConfigureInput(pin uint8, pull Pull) error
	ConfigureOutput(pin uint8) error
	Write(pin uint8, level Level) error
	Read(pin uint8) (Level, error)
	Close() error
}
