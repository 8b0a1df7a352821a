// Package locale provides the name tables used to render dates in a specific language
// and the resolvers that load them.
//
// A Data record holds month names (full and abbreviated), weekday names (full, abbreviated
// and two-letter) and meridiem labels. Tables are plain data: they can be declared in Go,
// decoded from YAML or JSON files, or taken from the set embedded in this package.
//
// # Resolvers
//
// Locale data is looked up lazily by code through the Resolver interface. Ready-made
// implementations cover an in-memory map, a directory on disk, any fs.FS (including
// embed.FS) and a chain of resolvers tried in order:
//
//	dir := locale.NewDirectoryResolver("./locales")
//	r := locale.ChainResolver{dir, locale.Builtin()}
//
//	data, err := r.Resolve(ctx, "pl-PL")
//	if err != nil {
//		// errors.Is(err, locale.ErrLocaleNotFound)
//	}
//
// Codes are canonicalised with golang.org/x/text/language, so "pl_PL", "pl-pl" and "pl-PL"
// resolve the same way. A region-specific code falls back to its base language when no
// dedicated table exists.
//
// # File Format
//
// Files are named after the locale code (pl.yaml, pt-BR.json) and keyed by code:
//
//	pl:
//	  name: Polski
//	  months: [styczeń, luty, ...]
//	  months_short: [sty, lut, ...]
//	  weekdays: [niedziela, poniedziałek, ...]
//	  weekdays_short: [ndz, pon, ...]
//	  weekdays_min: [Nd, Pn, ...]
//	  meridiem:
//	    upper: {am: AM, pm: PM}
//	    lower: {am: am, pm: pm}
//
// Weekday tables start on Sunday, matching time.Weekday.
package locale
