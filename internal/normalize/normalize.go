package normalize

import "strings"

// DefaultPrefixes are leading descriptors stripped from entity names before
// comparison, checked in order; only the first match is removed.
var DefaultPrefixes = []string{"the ", "restaurant ", "cafe ", "café ", "bistro "}

// DefaultSuffixes are trailing descriptors stripped from entity names before
// comparison, checked in order; only the first match is removed.
var DefaultSuffixes = []string{
	" restaurant", " cafe", " café", " bistro", " kitchen", " bar & grill", " bar and grill",
}

// Normalizer canonicalizes free-form entity names for comparison.
// The zero value is not usable; construct with New.
type Normalizer struct {
	prefixes []string
	suffixes []string
}

// New creates a Normalizer with the given prefix/suffix lists.
// Nil lists fall back to the defaults.
func New(prefixes, suffixes []string) *Normalizer {
	if prefixes == nil {
		prefixes = DefaultPrefixes
	}
	if suffixes == nil {
		suffixes = DefaultSuffixes
	}
	return &Normalizer{prefixes: prefixes, suffixes: suffixes}
}

// Normalize lower-cases the name, strips at most one known prefix and one
// known suffix, folds punctuation and collapses whitespace. It never fails;
// empty input yields an empty string.
func (n *Normalizer) Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	for _, p := range n.prefixes {
		if strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}
	for _, suf := range n.suffixes {
		if strings.HasSuffix(s, suf) {
			s = s[:len(s)-len(suf)]
			break
		}
	}
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
