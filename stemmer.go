package minnow

import "strings"

// Stem reduces a normalized English token to a root form through a fixed,
// ordered rule set: plural removal, past/continuous suffix handling, y->i,
// a derivational suffix rewrite table, a suffix removal list, and a final
// cleanup. Identical input always yields identical output.
func Stem(word string) string {
	w := stemPlural(word)
	w = stemParticiple(w)

	if strings.HasSuffix(w, "y") {
		w = w[:len(w)-1] + "i"
	}

	// First matching derivational rewrite wins and ends stemming.
	for _, r := range derivationalRules {
		if strings.HasSuffix(w, r.suffix) && len(w) > len(r.suffix) {
			return w[:len(w)-len(r.suffix)] + r.replacement
		}
	}

	// First matching removable suffix wins and ends stemming.
	for _, suffix := range removableSuffixes {
		if strings.HasSuffix(w, suffix) && len(w) > len(suffix) {
			return w[:len(w)-len(suffix)]
		}
	}

	// Cleanup when nothing above matched.
	if len(w) > 1 && strings.HasSuffix(w, "e") {
		w = w[:len(w)-1]
	}
	if strings.HasSuffix(w, "ll") {
		w = w[:len(w)-1]
	}
	return w
}

func stemPlural(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-4] + "ss"
	case strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "ss"
	case len(w) > 1 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}
	return w
}

func stemParticiple(w string) string {
	if strings.HasSuffix(w, "eedly") {
		return w[:len(w)-5] + "ee"
	}
	if strings.HasSuffix(w, "eed") {
		return w[:len(w)-3] + "ee"
	}
	for _, suffix := range []string{"ingly", "edly", "ing", "ed"} {
		if !strings.HasSuffix(w, suffix) {
			continue
		}
		base := w[:len(w)-len(suffix)]
		if base == "" {
			return w
		}
		switch {
		case hasAnySuffix(base, "at", "bl", "iz"):
			return base + "e"
		case endsDoubledConsonant(base) && !hasAnySuffix(base, "l", "s", "z"):
			return base[:len(base)-1]
		case endsCVC(base):
			return base + "e"
		}
		return base
	}
	return w
}

var derivationalRules = []struct {
	suffix      string
	replacement string
}{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"abli", "able"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
	{"logi", "log"},
	{"icate", "ic"},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
}

// Longer suffixes precede the shorter ones they contain.
var removableSuffixes = []string{
	"ance", "ence", "able", "ible", "ant",
	"ement", "ment", "ent", "ion", "ism",
	"ative", "ate", "iti", "ous", "ive", "ize",
	"ful", "ness", "er", "ic", "al", "ou",
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func endsDoubledConsonant(s string) bool {
	n := len(s)
	return n >= 2 && s[n-1] == s[n-2] && !isVowel(s[n-1])
}

// endsCVC reports a consonant-vowel-consonant tail whose final consonant is
// not w, x or y.
func endsCVC(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	last := s[n-1]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return !isVowel(s[n-3]) && isVowel(s[n-2]) && !isVowel(last)
}
