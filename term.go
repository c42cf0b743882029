package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const screenWidth = 60

type palette struct {
	reset   string
	bold    string
	green   string
	cyan    string
	yellow  string
	magenta string
	white   string
	bgBlack string

	// clear is written before each full redraw.
	clear string
}

var ansiPalette = palette{
	reset:   "\033[0m",
	bold:    "\033[1m",
	green:   "\033[92m",
	cyan:    "\033[96m",
	yellow:  "\033[93m",
	magenta: "\033[95m",
	white:   "\033[97m",
	bgBlack: "\033[40m",
	clear:   "\033[H\033[2J",
}

// plainPalette is used when stdout is not a color-capable terminal. Frames
// are separated by a blank line instead of a clear.
var plainPalette = palette{clear: "\n"}

// detectPalette picks colors for f based on whether it is a terminal and on
// the NO_COLOR and TERM environment variables.
func detectPalette(f *os.File) palette {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return plainPalette
	}
	if os.Getenv("TERM") == "dumb" {
		return plainPalette
	}
	if !term.IsTerminal(int(f.Fd())) {
		return plainPalette
	}
	return ansiPalette
}

func (p palette) rule(w io.Writer, ch string) {
	fmt.Fprintln(w, p.bold+p.cyan+strings.Repeat(ch, screenWidth)+p.reset)
}

func (p palette) header(w io.Writer) {
	p.rule(w, "=")
	fmt.Fprintln(w, p.bold+p.yellow+strings.Repeat(" ", 18)+"WORLD CLOCK"+p.reset)
	p.rule(w, "=")
	fmt.Fprintln(w)
}

func (p palette) farewell(w io.Writer) {
	fmt.Fprintln(w)
	p.rule(w, "=")
	fmt.Fprintln(w, p.bold+p.yellow+strings.Repeat(" ", 15)+"Thank you for using World Clock!"+p.reset)
	p.rule(w, "=")
	fmt.Fprintln(w)
}
