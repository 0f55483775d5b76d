// matrix-monitor scans a key matrix in a loop and redraws its state as a
// grid of x/o markers whenever it changes. Useful for checking new keypad
// wiring: press every key once and watch the seen counter reach the full
// key count.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"bast-security/keypad-firmware/keyscan"
)

func main() {
	var (
		rowsFlag string
		colsFlag string
		settle   time.Duration
	)

	flag.StringVar(&rowsFlag, "rows", "13,12,16,17,20,22,23,24", "Comma-separated BCM pins of the matrix rows")
	flag.StringVar(&colsFlag, "cols", "25,26,27", "Comma-separated BCM pins of the matrix columns")
	flag.DurationVar(&settle, "settle", keyscan.DefaultSettle, "Row settle delay before sampling columns")
	flag.Parse()

	rows, err := parsePins(rowsFlag)
	if err != nil {
		log.Fatal(err)
	}
	cols, err := parsePins(colsFlag)
	if err != nil {
		log.Fatal(err)
	}

	driver, err := keyscan.OpenRPi()
	if err != nil {
		log.Fatal(err)
	}

	scanner, err := keyscan.New(driver, keyscan.Config{Rows: rows, Cols: cols, Settle: settle})
	if err != nil {
		log.Fatal(err)
	}
	if err := scanner.Init(); err != nil {
		log.Fatal(err)
	}
	defer scanner.Close()

	fmt.Println("Press keys; the grid redraws on every change. Ctrl-C to quit.")

	var last, seen keyscan.Keymap
	total := len(rows) * len(cols)

	for {
		keys, err := scanner.Scan()
		if err != nil {
			log.Fatal(err)
		}
		seen |= keys

		if keys != last {
			fmt.Println()
			fmt.Print(keyscan.Render(keys, len(rows), len(cols)))
			fmt.Printf("pressed: %08x  seen %d/%d keys\n", uint32(keys), seen.Count(), total)
			last = keys
		}

		time.Sleep(50 * time.Millisecond)
	}
}

func parsePins(list string) ([]uint8, error) {
	var pins []uint8
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad pin %q: %w", field, err)
		}
		pins = append(pins, uint8(n))
	}
	return pins, nil
}
