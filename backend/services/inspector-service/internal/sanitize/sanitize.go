package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"buildsense/backend/services/inspector-service/internal/fault"
)

// Context selects the escaping rules for the query language a value is
// embedded into.
type Context int

const (
	// GraphLiteral embeds the value inside a quoted graph query string literal.
	GraphLiteral Context = iota
	// RegexFragment embeds the value inside a time-series regex literal,
	// matching only itself.
	RegexFragment
)

// Sanitize validates and escapes one user-influenced string for the given
// context. Every value interpolated into a store query passes through here;
// no other component touches raw input.
func Sanitize(raw string, ctx Context) (string, error) {
	for _, r := range raw {
		if unicode.IsControl(r) {
			return "", fault.Newf(fault.KindInvalidInput, "control character %q in input", r)
		}
	}

	switch ctx {
	case GraphLiteral:
		if strings.ContainsRune(raw, ';') {
			return "", fault.New(fault.KindInvalidInput, "statement separator in input")
		}
		return escapeGraphLiteral(raw), nil
	case RegexFragment:
		return escapeRegexFragment(raw), nil
	default:
		return "", fault.Newf(fault.KindInvalidInput, "unknown sanitize context %d", ctx)
	}
}

func escapeGraphLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '\'', '"':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escapeRegexFragment quotes every regex metacharacter plus the slash that
// would terminate the surrounding regex literal.
func escapeRegexFragment(s string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(s), "/", `\/`)
}
