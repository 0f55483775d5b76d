package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"bast-security/keypad-firmware/keyscan"
)

//////////Pin Pad wiring, BCM numbering//////////
//		col 1	col 2	col 3
// row 1	1	2	3
// row 2	4	5	6
// row 3	7	8	9
// row 4	*	0	#

var (
	rowPins = []uint8{10, 3, 4, 27}
	colPins = []uint8{22, 9, 17}
)

var legend = [4][3]rune{
	{'1', '2', '3'},
	{'4', '5', '6'},
	{'7', '8', '9'},
	{'*', '0', '#'},
}

const pollInterval = 50 * time.Millisecond

func main() {
	var (
		pinPipe   string
		broker    string
		keypadID  string
		buzzerPin int
		settle    time.Duration
	)

	flag.StringVar(&pinPipe, "pin-pipe", "pin-pipe", "Named pipe the lock firmware reads pin codes from")
	flag.StringVar(&broker, "broker", "", "MQTT broker URI, e.g. tcp://localhost:1883; empty disables publishing")
	flag.StringVar(&keypadID, "id", "keypad0", "Keypad identifier used in MQTT topics")
	flag.IntVar(&buzzerPin, "buzzer", -1, "BCM pin of the feedback buzzer; -1 disables it")
	flag.DurationVar(&settle, "settle", keyscan.DefaultSettle, "Row settle delay before sampling columns")
	flag.Parse()

	driver, err := keyscan.OpenRPi()
	if err != nil {
		log.Fatal(err)
	}

	scanner, err := keyscan.New(driver, keyscan.Config{Rows: rowPins, Cols: colPins, Settle: settle})
	if err != nil {
		log.Fatal(err)
	}
	if err := scanner.Init(); err != nil {
		log.Fatal(err)
	}
	defer scanner.Close()

	var bz *buzzer
	if buzzerPin >= 0 {
		bz, err = newBuzzer(driver, uint8(buzzerPin))
		if err != nil {
			log.Fatal(err)
		}
	}

	var pub *publisher
	if broker != "" {
		pub, err = connectPublisher(broker, keypadID)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.stop()
		fmt.Println("Publishing to", broker)
	}

	pipe, err := os.OpenFile(pinPipe, os.O_WRONLY, os.ModeNamedPipe)
	if err != nil {
		log.Fatal(err)
	}
	defer pipe.Close()

	fmt.Println("Keypad running, sending codes to", pinPipe)

	var last keyscan.Keymap
	code := ""
	numKeys := uint(len(rowPins) * len(colPins))

	for {
		keys, err := scanner.Scan()
		if err != nil {
			log.Println(err)
			time.Sleep(pollInterval)
			continue
		}

		for n := uint(0); n < numKeys; n++ {
			// Only react to keys going down since the last poll; a
			// held key counts once per press.
			if !keys.Test(n) || last.Test(n) {
				continue
			}

			key := legend[n/uint(len(colPins))][n%uint(len(colPins))]
			if bz != nil {
				bz.buzz(30 * time.Millisecond)
			}
			if pub != nil {
				pub.publishKey(key)
			}

			switch key {
			case '#':
				if code == "" {
					continue
				}
				if err := deliver(pipe, pub, code); err != nil {
					log.Println(err)
				}
				code = ""
			case '*':
				code = ""
			default:
				code += string(key)
			}
		}
		last = keys

		time.Sleep(pollInterval)
	}
}

// deliver hands a completed code to the lock firmware through its pin
// pipe and, when connected, to the controller over MQTT.
func deliver(pipe io.Writer, pub *publisher, code string) error {
	if _, err := fmt.Fprintln(pipe, code); err != nil {
		return fmt.Errorf("pin pipe: %w", err)
	}
	if pub != nil {
		if err := pub.publishCode(code); err != nil {
			return fmt.Errorf("publish code: %w", err)
		}
	}
	return nil
}
