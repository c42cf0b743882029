package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/cespare/subcmd"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"
)

var cmds = []subcmd.Command{
	{
		Name:        "list",
		Description: "print the timezone table",
		Do:          cmdList,
	},
	{
		Name:        "show",
		Description: "show a live clock for one timezone",
		Do:          cmdShow,
	},
	{
		Name:        "bar",
		Description: "print status bar lines for one or more timezones",
		Do:          cmdBar,
	},
}

func main() {
	log.SetFlags(0)

	// Subcommands are optional; with no arguments the interactive menu runs.
	if len(os.Args) > 1 {
		subcmd.Run(cmds)
		return
	}

	a := newApp()
	defer func() {
		if r := recover(); r != nil {
			reportError(a.out, a.pal, fmt.Errorf("%v", r))
		}
	}()
	if err := a.run(context.Background()); err != nil {
		reportError(a.out, a.pal, err)
	}
}

func newApp() *app {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	return &app{
		out:     os.Stdout,
		input:   readLines(os.Stdin),
		signals: sigs,
		clock:   systemClock{},
		pal:     detectPalette(os.Stdout),
	}
}

func reportError(w io.Writer, p palette, err error) {
	fmt.Fprintln(w, p.yellow+"\nAn error occurred: "+err.Error()+p.reset)
	fmt.Fprintln(w)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  worldclock list

The list command prints every timezone key with its name and UTC offset.
`)
	}
	fs.Parse(args)
	if fs.NArg() > 0 {
		fs.Usage()
		os.Exit(1)
	}
	printList(os.Stdout)
}

func printList(w io.Writer) {
	for _, key := range sortedKeys() {
		z := zones[key]
		fmt.Fprintf(w, "%2s. %-30s UTC %s\n", key, z.name, formatOffset(z.offsetHours))
	}
}

func cmdShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  worldclock show <key>

The show command displays a live clock for the timezone with the given key
(see worldclock list) until interrupted.
`)
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	z, ok := lookupZone(fs.Arg(0))
	if !ok {
		log.Fatalf("Unknown timezone key %q (see worldclock list)", fs.Arg(0))
	}

	a := newApp()
	if err := a.showClock(context.Background(), z); err != nil && !errors.Is(err, errTerminated) {
		log.Fatalln("Error:", err)
	}
}

func cmdBar(args []string) {
	fs := flag.NewFlagSet("bar", flag.ExitOnError)
	secs := fs.Bool("secs", false, "Use second resolution")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage:

  worldclock bar [flags...] <key>...

where the flags are:
`)
		fs.PrintDefaults()
		fmt.Fprint(os.Stderr, `
The bar command prints one line per minute (or per second with -secs) showing
the time in each of the given timezones, suitable for a status bar.
`)
	}
	fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}
	barZones, err := parseZoneKeys(fs.Args())
	if err != nil {
		log.Fatal(err)
	}

	resolution := time.Minute
	if *secs {
		resolution = time.Second
	}
	for {
		t := time.Now().Truncate(resolution)
		printBar(os.Stdout, t, resolution, barZones)
		t = t.Add(resolution)
		time.Sleep(time.Until(t))
	}
}

// parseZoneKeys resolves keys in order, dropping duplicates.
func parseZoneKeys(keys []string) ([]zone, error) {
	var seen []string
	var zs []zone
	for _, key := range keys {
		if slices.Contains(seen, key) {
			continue
		}
		z, ok := lookupZone(key)
		if !ok {
			return nil, fmt.Errorf("unknown timezone key %q", key)
		}
		seen = append(seen, key)
		zs = append(zs, z)
	}
	return zs, nil
}

// printBar writes one status line. The first zone carries the date; later
// zones only show it when their day differs from the first.
func printBar(w io.Writer, t time.Time, res time.Duration, zs []zone) {
	tailFormat := "15:04"
	if res == time.Second {
		tailFormat = "15:04:05"
	}
	dateFormat := "Jan 2 " + tailFormat
	var first time.Time
	for i, z := range zs {
		lt := localTime(t, z)
		format := dateFormat
		if i == 0 {
			first = lt
		} else {
			fmt.Fprint(w, " • ")
			if lt.Day() == first.Day() {
				format = tailFormat
			}
		}
		fmt.Fprintf(w, "%s %s", z.label(), lt.Format(format))
	}
	fmt.Fprintln(w)
}
