package locale

import (
	"fmt"
	"slices"
)

const (
	monthsInYear = 12
	daysInWeek   = 7
)

// Pair holds the ante meridiem and post meridiem labels.
type Pair struct {
	AM string `yaml:"am" json:"am"`
	PM string `yaml:"pm" json:"pm"`
}

// Meridiem holds upper and lower case meridiem labels.
type Meridiem struct {
	Upper Pair `yaml:"upper" json:"upper"`
	Lower Pair `yaml:"lower" json:"lower"`
}

// Data is the set of name tables for one language.
// Month tables are indexed by month-1, weekday tables by time.Weekday (Sunday = 0).
type Data struct {
	Name          string   `yaml:"name" json:"name"`
	Months        []string `yaml:"months" json:"months"`
	MonthsShort   []string `yaml:"months_short" json:"months_short"`
	Weekdays      []string `yaml:"weekdays" json:"weekdays"`
	WeekdaysShort []string `yaml:"weekdays_short" json:"weekdays_short"`
	WeekdaysMin   []string `yaml:"weekdays_min" json:"weekdays_min"`
	Meridiem      Meridiem `yaml:"meridiem" json:"meridiem"`
}

// Validate reports whether every table has exactly the expected number of entries
// and all meridiem labels are set.
func (d Data) Validate() error {
	tables := []struct {
		name string
		got  []string
		want int
	}{
		{"months", d.Months, monthsInYear},
		{"months_short", d.MonthsShort, monthsInYear},
		{"weekdays", d.Weekdays, daysInWeek},
		{"weekdays_short", d.WeekdaysShort, daysInWeek},
		{"weekdays_min", d.WeekdaysMin, daysInWeek},
	}
	for _, tbl := range tables {
		if len(tbl.got) != tbl.want {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrInvalidData, tbl.name, len(tbl.got), tbl.want)
		}
		if slices.Contains(tbl.got, "") {
			return fmt.Errorf("%w: %s contains an empty entry", ErrInvalidData, tbl.name)
		}
	}

	m := d.Meridiem
	if m.Upper.AM == "" || m.Upper.PM == "" || m.Lower.AM == "" || m.Lower.PM == "" {
		return fmt.Errorf("%w: meridiem labels must not be empty", ErrInvalidData)
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate tables held by a formatter.
func (d Data) Clone() Data {
	d.Months = slices.Clone(d.Months)
	d.MonthsShort = slices.Clone(d.MonthsShort)
	d.Weekdays = slices.Clone(d.Weekdays)
	d.WeekdaysShort = slices.Clone(d.WeekdaysShort)
	d.WeekdaysMin = slices.Clone(d.WeekdaysMin)
	return d
}

// English is the built-in English table, always available without resolution.
var English = Data{
	Name: "English",
	Months: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays:      []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Meridiem: Meridiem{
		Upper: Pair{AM: "AM", PM: "PM"},
		Lower: Pair{AM: "am", PM: "pm"},
	},
}
