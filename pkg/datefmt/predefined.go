package datefmt

// Names of the named formatters every Formatter registers unless WithoutBuiltins is used.
const (
	ISODate       = "ISODate"
	ISOTime       = "ISOTime"
	ISODateTime   = "ISODateTime"
	ISODateTimeTZ = "ISODateTimeTZ"
)

var builtinTemplates = []struct {
	name     string
	template string
}{
	{ISODate, "YYYY-MM-dd"},
	{ISOTime, "HH:mm:ss"},
	{ISODateTime, "YYYY-MM-ddTHH:mm:ss"},
	{ISODateTimeTZ, "YYYY-MM-ddTHH:mm:ssZ"},
}

func (f *Formatter) registerBuiltins() {
	for _, b := range builtinTemplates {
		// templates carry a default entry, so registration cannot fail
		_ = f.RegisterTemplates(b.name, Templates{DefaultTemplate: b.template})
	}
}
