package carrier

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var (
	containerRe = regexp.MustCompile(`^[A-Z]{3,4}[A-Z0-9]{4,}$`)
	awbDigitsRe = regexp.MustCompile(`^\d{11}$`)
	// Generic UPU S10 shape: two letters, nine digits, two-letter country code.
	upuRe = regexp.MustCompile(`^[A-Z]{2}\d{9}[A-Z]{2}$`)
)

// CleanIdentifier normalizes raw user input into the canonical identifier
// form: full-width characters folded to their narrow equivalents, spaces and
// hyphens stripped, everything upper-cased. Korean users routinely paste
// numbers copied from carrier emails where both forms appear.
func CleanIdentifier(raw string) string {
	folded := width.Narrow.String(raw)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r == ' ' || r == '-' || r == '\t' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ContainsHangul reports whether the string carries any Hangul syllable or
// jamo. Identifiers are Latin-script by convention, so Hangul input gets a
// distinct classification instead of a generic failure.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// isContainerShaped reports whether the cleaned identifier matches the
// container / bill-of-lading shape.
func isContainerShaped(id string) bool {
	return containerRe.MatchString(id)
}

// splitAWB splits an 11-digit air waybill into its airline prefix and serial.
// The second return is false when the identifier is not AWB-shaped.
func splitAWB(id string) (prefix, serial string, ok bool) {
	if !awbDigitsRe.MatchString(id) {
		return "", "", false
	}
	return id[:3], id[3:], true
}

// leadingLetters returns the run of leading A-Z characters, capped at max.
func leadingLetters(id string, max int) string {
	n := 0
	for _, r := range id {
		if r < 'A' || r > 'Z' || n == max {
			break
		}
		n++
	}
	return id[:n]
}

// containerPrefix extracts the owner prefix of a container-shaped identifier,
// preferring the four-letter form and falling back to three letters.
// A prefix is only usable when the run of leading letters is long enough.
func containerPrefix(id string) (code string, ok bool) {
	letters := 0
	for _, r := range id {
		if r < 'A' || r > 'Z' {
			break
		}
		letters++
	}
	if letters >= 4 {
		if mapped, found := containerPrefixes[id[:4]]; found {
			return mapped, true
		}
	}
	if letters >= 3 {
		if mapped, found := containerPrefixes[id[:3]]; found {
			return mapped, true
		}
	}
	return "", false
}
