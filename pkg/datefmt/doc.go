// Package datefmt formats dates from short token templates with swappable locale data
// and user-registered named formatters.
//
// A template mixes literal text with tokens such as YYYY, MMMM or HH. At every position the
// longest known token wins, so "MMMM" is the full month name rather than four month numbers.
// Characters that start no token are copied verbatim; unknown letters are never an error.
//
//	s, err := datefmt.Format("DDD, MMMM d, YYYY", time.Now())
//	// "Tuesday, July 23, 2024"
//
// # Tokens
//
//	YYYY  full year (number)            YY    two-digit year
//	MMMM  full month name               MMM   abbreviated month name
//	MM    month, zero padded            M     month (number)
//	DDD   full weekday name             DD    abbreviated weekday name
//	D     two-letter weekday name
//	dd    day of month, zero padded     d     day of month (number)
//	HH    24-hour, zero padded          H     24-hour (number)
//	hh    12-hour, zero padded          h     12-hour (number)
//	mm    minutes, zero padded          m     minutes (number)
//	ss    seconds, zero padded          s     seconds (number)
//	ff    milliseconds, width 3         f     milliseconds (number)
//	A     AM/PM                         a     am/pm
//	ZZ    UTC offset as +0200           Z     UTC offset as +02:00
//
// Token readings are available directly through Formatter.Token and LookupToken, which
// return a Value that is either a number or text.
//
// # Dates
//
// Format accepts time.Time, *time.Time, Unix timestamps in milliseconds and ISO 8601 strings,
// and uses the current time when the date is omitted. Other inputs fail with
// ErrInvalidArgumentType, unparsable strings with ErrInvalidDate.
//
// # Locales
//
// A Formatter starts with built-in English tables. SetLocale loads other tables through a
// locale.Resolver (the embedded set by default); a failed lookup is logged and leaves the
// active locale untouched. SetLocaleData installs tables supplied by the caller:
//
//	f := datefmt.New()
//	f.SetLocale(ctx, "pl")
//	s, _ := f.Format("DDD, MMMM d, YYYY", t) // "wtorek, lipiec 23, 2024"
//
// # Named Formatters
//
// Register binds a name to a function. When the format argument equals a registered name
// the function's result is returned without any token interpretation. ISODate, ISOTime,
// ISODateTime and ISODateTimeTZ are registered on every new Formatter.
//
// CreateFormatter builds a reusable function that picks a template by the active locale,
// falling back to the "default" entry.
//
// # Package-Level Functions
//
// Format, SetLocale, Register and friends operate on a process-wide Formatter returned by
// Default. Tests can swap it with SetDefault to isolate state.
//
// # Configuration
//
// Config is read from DATEFMT_* environment variables (optionally loaded from .env files)
// with LoadConfig, and NewFromConfig turns it into a Formatter.
package datefmt
