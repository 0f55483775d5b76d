package main

import (
	"time"

	"bast-security/keypad-firmware/keyscan"
)

// buzzer chirps a piezo on every accepted keypress. It shares the line
// driver with the scanner but owns its own pin.
type buzzer struct {
	drv keyscan.LineDriver
	pin uint8
}

func newBuzzer(drv keyscan.LineDriver, pin uint8) (*buzzer, error) {
	if err := drv.ConfigureOutput(pin); err != nil {
		return nil, err
	}
	if err := drv.Write(pin, keyscan.Low); err != nil {
		return nil, err
	}
	return &buzzer{drv: drv, pin: pin}, nil
}

func (b *buzzer) buzz(dur time.Duration) {
	b.drv.Write(b.pin, keyscan.High)
	time.Sleep(dur)
	b.drv.Write(b.pin, keyscan.Low)
}
