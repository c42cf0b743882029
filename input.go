package main

import (
	"bufio"
	"io"
	"strings"
)

// A lineReader scans r on its own goroutine so that callers can select on
// the next line alongside signals and timers.
type lineReader struct {
	lines chan string
	err   error // valid once lines is closed
}

func readLines(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		s := bufio.NewScanner(r)
		for s.Scan() {
			lr.lines <- s.Text()
		}
		lr.err = s.Err()
		close(lr.lines)
	}()
	return lr
}

func isQuit(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
