package mdh

import (
	"strconv"
	"strings"
)

// specials is the set of characters that open marker runs. Everything else
// accumulates into literal runs.
const specials = "#*_~`^![]()\"|:>.\n"

func isSpecial(r rune) bool {
	return r < 0x80 && strings.IndexByte(specials, byte(r)) >= 0
}

// Tokenize splits src into a sequence of literal runs and marker runs. A
// marker run is one or more repetitions of the same special character; a
// literal run contains no special characters. A backslash escapes the
// following character, which is emitted as a standalone decimal character
// reference and never re-read as markup. Every input yields a token
// sequence; there are no error cases.
func Tokenize(src string) []string {
	tokens := make([]string, 0, len(src)/4+1)
	var pending strings.Builder
	inMarker := false
	var marker rune

	flush := func() {
		if pending.Len() > 0 {
			tokens = append(tokens, pending.String())
			pending.Reset()
		}
		inMarker = false
	}

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			flush()
			// A trailing backslash escapes nothing and is dropped.
			if i+1 < len(runes) {
				i++
				tokens = append(tokens, "&#"+strconv.Itoa(int(runes[i]))+";")
			}
			continue
		}
		if isSpecial(r) {
			if !inMarker || marker != r {
				flush()
				inMarker = true
				marker = r
			}
			pending.WriteRune(r)
			continue
		}
		if inMarker {
			flush()
		}
		pending.WriteRune(r)
	}
	flush()
	return tokens
}

// splitFixed partitions s into consecutive chunks of exactly width
// characters; the final chunk holds the remainder.
func splitFixed(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	chunks := make([]string, 0, (len(s)+width-1)/width)
	for len(s) > width {
		chunks = append(chunks, s[:width])
		s = s[width:]
	}
	return append(chunks, s)
}
