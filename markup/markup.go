package markup

import (
	"strings"
	"unicode"
)

const (
	// Code introduces an inline code in configuration values, as in "&cError".
	Code = '&'
	// Section is the character Legacy rewrites codes to, as in "§cError".
	Section = '§'
)

const codes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// Translator rewrites inline markup into the representation the consumer displays.
type Translator func(string) string

// Legacy rewrites every Code followed by a valid code character into Section
// followed by the lowercased code. Scanning is left to right and a rewritten
// pair is never rescanned, so "&&c" becomes "&§c".
func Legacy(s string) string {
	if !strings.ContainsRune(s, Code) {
		return s
	}

	runes := []rune(s)

	var out strings.Builder

	out.Grow(len(s) + 1)

	for i := 0; i < len(runes); i++ {
		if runes[i] == Code && i+1 < len(runes) && IsCode(runes[i+1]) {
			out.WriteRune(Section)
			out.WriteRune(unicode.ToLower(runes[i+1]))
			i++

			continue
		}

		out.WriteRune(runes[i])
	}

	return out.String()
}

// Identity leaves text unchanged.
func Identity(s string) string {
	return s
}

// Strip removes codes in both the Code and Section forms.
func Strip(s string) string {
	if !strings.ContainsRune(s, Code) && !strings.ContainsRune(s, Section) {
		return s
	}

	runes := []rune(s)

	var out strings.Builder

	out.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		if isMarker(runes[i]) && i+1 < len(runes) && IsCode(runes[i+1]) {
			i++

			continue
		}

		out.WriteRune(runes[i])
	}

	return out.String()
}

// IsCode reports whether r is a valid code character.
func IsCode(r rune) bool {
	return r < unicode.MaxASCII && strings.ContainsRune(codes, r)
}

func isMarker(r rune) bool {
	return r == Code || r == Section
}
