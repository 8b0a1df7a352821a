package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Candidates returns the lookup keys for a locale code, most specific first:
// the canonical BCP 47 form of the code followed by its base language.
//
//	Candidates("pt_br") // ["pt-BR", "pt"]
//	Candidates("pl")    // ["pl"]
func Candidates(code string) ([]string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidCode)
	}

	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidCode, code, err)
	}

	canonical := tag.String()
	candidates := []string{canonical}

	if base, conf := tag.Base(); conf != language.No && base.String() != canonical {
		candidates = append(candidates, base.String())
	}

	return candidates, nil
}

// lookup finds the entry for code among parsed locale data, ignoring case and
// separator differences in the keys.
func lookup(m map[string]Data, code string) (Data, bool) {
	if d, ok := m[code]; ok {
		return d, true
	}
	for key, d := range m {
		if strings.EqualFold(strings.ReplaceAll(key, "_", "-"), code) {
			return d, true
		}
	}
	return Data{}, false
}
