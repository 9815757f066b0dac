// Duplicate prospect detection. Names coming from forms differ in case,
// accents and spacing ("Hải Yến" vs "hai yen"), so matching runs on a
// normalized form rather than the raw cell value.

package dedup

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, removes diacritics and collapses whitespace.
func Normalize(name string) string {
	out, _, err := transform.String(stripMarks, name)
	if err != nil {
		out = name
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// NameSet tracks normalized names already present in a sheet.
// Mutex is required because Go maps are NOT thread-safe.
type NameSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewNameSet(names ...string) *NameSet {
	s := &NameSet{seen: make(map[string]struct{})}
	s.Add(names...)
	return s
}

// Has checks if an equivalent name was already added.
func (s *NameSet) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.seen[Normalize(name)]
	return exists
}

func (s *NameSet) Add(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.seen[Normalize(name)] = struct{}{}
	}
}
