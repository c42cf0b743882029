package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type zone struct {
	name        string
	offsetHours float64
}

// zones is fixed at build time. Offsets are standard time only.
var zones = map[string]zone{
	"1":  {"UTC (Universal Time)", 0},
	"2":  {"India (IST)", 5.5},
	"3":  {"Japan (JST)", 9},
	"4":  {"China (CST)", 8},
	"5":  {"Singapore (SGT)", 8},
	"6":  {"UAE (GST)", 4},
	"7":  {"South Korea (KST)", 9},
	"8":  {"Thailand (ICT)", 7},
	"9":  {"Indonesia (WIB)", 7},
	"10": {"Pakistan (PKT)", 5},
	"11": {"Bangladesh (BST)", 6},
	"12": {"United Kingdom (GMT)", 0},
	"13": {"Germany (CET)", 1},
	"14": {"France (CET)", 1},
	"15": {"Italy (CET)", 1},
	"16": {"Spain (CET)", 1},
	"17": {"Russia - Moscow (MSK)", 3},
	"18": {"Turkey (TRT)", 3},
	"19": {"Greece (EET)", 2},
	"20": {"Poland (CET)", 1},
	"21": {"Netherlands (CET)", 1},
	"22": {"USA - Eastern (EST)", -5},
	"23": {"USA - Central (CST)", -6},
	"24": {"USA - Mountain (MST)", -7},
	"25": {"USA - Pacific (PST)", -8},
	"26": {"Canada - Eastern (EST)", -5},
	"27": {"Canada - Pacific (PST)", -8},
	"28": {"Brazil - Sao Paulo (BRT)", -3},
	"29": {"Mexico City (CST)", -6},
	"30": {"Argentina (ART)", -3},
	"31": {"Chile (CLT)", -3},
	"32": {"Australia - Sydney (AEDT)", 11},
	"33": {"Australia - Melbourne (AEDT)", 11},
	"34": {"Australia - Perth (AWST)", 8},
	"35": {"New Zealand (NZDT)", 13},
	"36": {"South Africa (SAST)", 2},
	"37": {"Egypt (EET)", 2},
	"38": {"Nigeria (WAT)", 1},
	"39": {"Kenya (EAT)", 3},
	"40": {"Saudi Arabia (AST)", 3},
	"41": {"Israel (IST)", 2},
}

// sortedKeys returns the table keys in numeric order.
func sortedKeys() []string {
	keys := maps.Keys(zones)
	slices.SortFunc(keys, func(a, b string) bool {
		return keyNum(a) < keyNum(b)
	})
	return keys
}

func keyNum(key string) int {
	n, err := strconv.Atoi(key)
	if err != nil {
		return math.MaxInt
	}
	return n
}

func lookupZone(key string) (zone, bool) {
	z, ok := zones[strings.TrimSpace(key)]
	return z, ok
}

// label is the zone name without the trailing abbreviation,
// e.g. "India" for "India (IST)".
func (z zone) label() string {
	if i := strings.Index(z.name, " ("); i >= 0 {
		return z.name[:i]
	}
	return z.name
}

func (z zone) offset() time.Duration {
	return time.Duration(math.Round(z.offsetHours*60)) * time.Minute
}

func (z zone) location() *time.Location {
	return time.FixedZone(z.label(), int(z.offset()/time.Second))
}

// localTime converts now to the zone's wall clock at second resolution.
func localTime(now time.Time, z zone) time.Time {
	return now.UTC().Truncate(time.Second).In(z.location())
}

// formatOffset renders an hour offset as a signed H:MM string.
func formatOffset(hours float64) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
	}
	mins := int(math.Round(math.Abs(hours) * 60))
	return fmt.Sprintf("%s%d:%02d", sign, mins/60, mins%60)
}
