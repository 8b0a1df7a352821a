package datefmt

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/datefmt/pkg/locale"
)

// Segment is one piece of a compiled template: either a literal run or a token name.
type Segment struct {
	Literal string
	Token   string
}

// IsToken reports whether the segment refers to a token.
func (s Segment) IsToken() bool {
	return s.Token != ""
}

// compile splits template into literal runs and tokens. At every position the longest
// matching token name wins; characters that start no token are kept as literals.
func compile(template string) []Segment {
	var (
		segments []Segment
		literal  strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(template); {
		if name, ok := matchToken(template[i:]); ok {
			flush()
			segments = append(segments, Segment{Token: name})
			i += len(name)
			continue
		}

		_, size := utf8.DecodeRuneInString(template[i:])
		literal.WriteString(template[i : i+size])
		i += size
	}
	flush()

	return segments
}

func matchToken(s string) (string, bool) {
	for _, name := range tokenNames {
		if strings.HasPrefix(s, name) {
			return name, true
		}
	}
	return "", false
}

// render evaluates segments against t. Numeric token values become decimal strings here.
func render(segments []Segment, t time.Time, l locale.Data) string {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.IsToken() {
			b.WriteString(seg.Literal)
			continue
		}
		b.WriteString(tokens[seg.Token](t, l).String())
	}
	return b.String()
}

// templateCache memoizes compiled templates by their exact text for the owner's lifetime.
// It is unbounded: templates are expected to come from a small developer-authored set.
type templateCache struct {
	enabled bool
	mu      sync.RWMutex
	entries map[string][]Segment
}

func newTemplateCache(enabled bool) *templateCache {
	return &templateCache{
		enabled: enabled,
		entries: make(map[string][]Segment),
	}
}

func (c *templateCache) get(template string) []Segment {
	if !c.enabled {
		return compile(template)
	}

	c.mu.RLock()
	segments, ok := c.entries[template]
	c.mu.RUnlock()
	if ok {
		return segments
	}

	segments = compile(template)

	c.mu.Lock()
	c.entries[template] = segments
	c.mu.Unlock()

	return segments
}

func (c *templateCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
