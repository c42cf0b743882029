package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var (
	errInterrupted = errors.New("interrupted")
	errTerminated  = errors.New("terminated")
)

// signalErr maps SIGINT to errInterrupted and every other signal to
// errTerminated.
func signalErr(sig os.Signal) error {
	if sig == unix.SIGINT {
		return errInterrupted
	}
	return fmt.Errorf("%w by %s", errTerminated, sig)
}

type app struct {
	out     io.Writer
	input   *lineReader
	signals <-chan os.Signal
	clock   clock
	pal     palette
}

// run alternates between the selection menu and the clock display until the
// user quits, input ends, or a signal arrives while the menu is showing.
func (a *app) run(ctx context.Context) error {
	for {
		a.drawMenu()
		z, ok, err := a.choose(ctx)
		if err != nil {
			return err
		}
		if !ok {
			a.pal.farewell(a.out)
			return nil
		}
		if err := a.showClock(ctx, z); err != nil {
			if errors.Is(err, errTerminated) {
				a.pal.farewell(a.out)
				return nil
			}
			return err
		}
	}
}

func (a *app) drawMenu() {
	p := a.pal
	fmt.Fprint(a.out, p.clear)
	p.header(a.out)
	fmt.Fprintln(a.out, p.bold+p.magenta+"Available Timezones:"+p.reset)
	fmt.Fprintln(a.out, p.cyan+strings.Repeat("-", screenWidth)+p.reset)

	keys := sortedKeys()
	for i := 0; i < len(keys); i += 2 {
		left := menuItem(keys[i])
		if i+1 == len(keys) {
			fmt.Fprintln(a.out, left)
			continue
		}
		fmt.Fprintf(a.out, "%-35s %s\n", left, menuItem(keys[i+1]))
	}

	fmt.Fprintln(a.out, p.cyan+strings.Repeat("-", screenWidth)+p.reset)
	fmt.Fprintln(a.out)
}

func menuItem(key string) string {
	return fmt.Sprintf("%2s. %s", key, zones[key].name)
}

// choose prompts until it reads a valid key (ok is true) or the user quits,
// input ends, or a signal arrives (ok is false).
func (a *app) choose(ctx context.Context) (z zone, ok bool, err error) {
	p := a.pal
	for {
		fmt.Fprint(a.out, p.bold+"Enter timezone number (or 'q' to quit): "+p.reset)
		select {
		case line, more := <-a.input.lines:
			if !more {
				fmt.Fprintln(a.out)
				if err := a.input.err; err != nil {
					return zone{}, false, fmt.Errorf("reading input: %w", err)
				}
				return zone{}, false, nil
			}
			if isQuit(line) {
				return zone{}, false, nil
			}
			if z, ok := lookupZone(line); ok {
				return z, true, nil
			}
			fmt.Fprintln(a.out, p.yellow+"Invalid choice! Please enter a number from the list."+p.reset)
			fmt.Fprintln(a.out)
		case <-a.signals:
			fmt.Fprintln(a.out)
			return zone{}, false, nil
		case <-ctx.Done():
			return zone{}, false, ctx.Err()
		}
	}
}
