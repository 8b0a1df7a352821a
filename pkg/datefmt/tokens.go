package datefmt

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

// TokenFunc extracts one field of t, using l for named fields.
type TokenFunc func(t time.Time, l locale.Data) Value

// tokens is the fixed token table. It is never modified after package init.
var tokens = map[string]TokenFunc{
	"YYYY": func(t time.Time, _ locale.Data) Value { return Number(t.Year()) },
	"YY":   func(t time.Time, _ locale.Data) Value { return Text(Pad((t.Year()%100+100)%100, 2)) },

	"MMMM": func(t time.Time, l locale.Data) Value { return Text(l.Months[t.Month()-1]) },
	"MMM":  func(t time.Time, l locale.Data) Value { return Text(l.MonthsShort[t.Month()-1]) },
	"MM":   func(t time.Time, _ locale.Data) Value { return Text(Pad(int(t.Month()), 2)) },
	"M":    func(t time.Time, _ locale.Data) Value { return Number(int(t.Month())) },

	"DDD": func(t time.Time, l locale.Data) Value { return Text(l.Weekdays[t.Weekday()]) },
	"DD":  func(t time.Time, l locale.Data) Value { return Text(l.WeekdaysShort[t.Weekday()]) },
	"D":   func(t time.Time, l locale.Data) Value { return Text(l.WeekdaysMin[t.Weekday()]) },

	"dd": func(t time.Time, _ locale.Data) Value { return Text(Pad(t.Day(), 2)) },
	"d":  func(t time.Time, _ locale.Data) Value { return Number(t.Day()) },

	"HH": func(t time.Time, _ locale.Data) Value { return Text(Pad(t.Hour(), 2)) },
	"H":  func(t time.Time, _ locale.Data) Value { return Number(t.Hour()) },
	"hh": func(t time.Time, _ locale.Data) Value { return Text(Pad(hour12(t), 2)) },
	"h":  func(t time.Time, _ locale.Data) Value { return Number(hour12(t)) },

	"mm": func(t time.Time, _ locale.Data) Value { return Text(Pad(t.Minute(), 2)) },
	"m":  func(t time.Time, _ locale.Data) Value { return Number(t.Minute()) },

	"ss": func(t time.Time, _ locale.Data) Value { return Text(Pad(t.Second(), 2)) },
	"s":  func(t time.Time, _ locale.Data) Value { return Number(t.Second()) },

	"ff": func(t time.Time, _ locale.Data) Value { return Text(Pad(millisecond(t), 3)) },
	"f":  func(t time.Time, _ locale.Data) Value { return Number(millisecond(t)) },

	"A": func(t time.Time, l locale.Data) Value { return Text(meridiem(t, l.Meridiem.Upper)) },
	"a": func(t time.Time, l locale.Data) Value { return Text(meridiem(t, l.Meridiem.Lower)) },

	"ZZ": func(t time.Time, _ locale.Data) Value { return Text(zoneOffset(t, "")) },
	"Z":  func(t time.Time, _ locale.Data) Value { return Text(zoneOffset(t, ":")) },
}

// tokenNames holds every token name, longest first, so the first prefix match
// while scanning a template is the longest one.
var tokenNames = sortedTokenNames()

func sortedTokenNames() []string {
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

// LookupToken returns the extractor registered for name. Names are case-sensitive.
func LookupToken(name string) (TokenFunc, bool) {
	fn, ok := tokens[name]
	return fn, ok
}

// TokenNames returns all token names, longest first.
func TokenNames() []string {
	return slices.Clone(tokenNames)
}

// hour12 maps 0-23 onto the 12-hour clock, where both midnight and noon are 12.
func hour12(t time.Time) int {
	if h := t.Hour() % 12; h != 0 {
		return h
	}
	return 12
}

func millisecond(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}

func meridiem(t time.Time, labels locale.Pair) string {
	if t.Hour() < 12 {
		return labels.AM
	}
	return labels.PM
}

// zoneOffset renders the UTC offset of t's location as ±HH<sep>MM.
// Go reports offsets east of UTC as positive, which is the sign printed.
func zoneOffset(t time.Time, sep string) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	minutes := offset / 60
	return sign + Pad(minutes/60, 2) + sep + Pad(minutes%60, 2)
}
