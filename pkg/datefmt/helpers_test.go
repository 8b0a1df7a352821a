package datefmt_test

import (
	"time"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

// cest is a fixed UTC+2 zone, the offset the reference scenarios are written for.
var cest = time.FixedZone("CEST", 2*60*60)

// testDate is Tuesday 2024-07-23 14:35:45.123 at UTC+2.
var testDate = time.Date(2024, time.July, 23, 14, 35, 45, 123_000_000, cest)

// polish mirrors the tables a caller would supply from its own locale module.
var polish = locale.Data{
	Name: "Polski",
	Months: []string{
		"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
		"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
	},
	MonthsShort:   []string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
	Weekdays:      []string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
	WeekdaysShort: []string{"ndz", "pon", "wt", "śr", "czw", "pt", "sob"},
	WeekdaysMin:   []string{"Nd", "Pn", "Wt", "Śr", "Cz", "Pt", "So"},
	Meridiem: locale.Meridiem{
		Upper: locale.Pair{AM: "AM", PM: "PM"},
		Lower: locale.Pair{AM: "am", PM: "pm"},
	},
}
