package mdh

import (
	"strconv"
	"strings"
)

// resolveDocument resolves block structure over the token stream and returns
// the final HTML. Non-newline tokens accumulate on the stack as-is; each
// newline marker closes the pending line, classifies its leading content,
// and reduces the finished block into a single stack element.
func resolveDocument(tokens []string) string {
	var stack []string
	for idx, tok := range tokens {
		if tok == "" {
			continue
		}
		if tok[0] != '\n' {
			stack = append(stack, tok)
			continue
		}
		if len(stack) == 0 {
			continue
		}

		lineEnd := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if strings.ContainsRune(stack[i], '\n') {
				lineEnd = i
				break
			}
		}
		first := -1
		for i := lineEnd + 1; i < len(stack); i++ {
			if strings.Trim(stack[i], " \t") != "" {
				first = i
				break
			}
		}
		if first < 0 {
			continue
		}

		switch head := stack[first]; {
		case head[0] == '#':
			stack = resolveHeading(stack, lineEnd, first)
		case head == "!":
			stack = resolveImage(stack, first)
		case head == ">":
			// Blockquote lines pass through untransformed.
		case len(tok) == 1 && idx != len(tokens)-1:
			// Soft line break inside an ongoing paragraph.
			stack = append(stack, " ")
			continue
		default:
			stack = resolveParagraph(stack, first)
		}
		stack = append(stack, tok)
	}
	return strings.Join(stack, "")
}

// resolveHeading turns the pending line into <hN>...</hN>, with N capped at
// six, and reduces everything after the previous line boundary into one
// element.
func resolveHeading(stack []string, lineEnd, first int) []string {
	level := len(stack[first])
	if level > 6 {
		level = 6
	}
	n := strconv.Itoa(level)
	stack[first] = "<h" + n + ">"
	stack = append(stack, "</h"+n+">")
	stack = splice(stack, first, len(stack)-first, resolveInline(stack[first:])...)
	return reduce(stack, lineEnd+1)
}

// resolveImage renders a line that starts with a bare ! as an <img /> tag.
// Unlike inline links, both src and alt are mandatory; anything short or
// incomplete is left untouched. No inline resolution runs inside the
// construct.
func resolveImage(stack []string, first int) []string {
	if len(stack)-first < 5 {
		return stack
	}
	res, ok := parseResource(stack[first+1:])
	if !ok || !res.hasSrc || !res.hasAlt {
		return stack
	}
	title := res.title
	if !res.hasTitle {
		title = res.alt
	}
	img := `<img src="` + res.src + `" alt="` + res.alt + `" title="` + title + `" />`
	end := first + 1 + res.consumed + 1
	if end > len(stack) {
		end = len(stack)
	}
	return splice(stack, first, end-first, img)
}

// resolveParagraph wraps the pending line in <p>...</p>, resolves its inline
// markup, and reduces the paragraph into one element.
func resolveParagraph(stack []string, first int) []string {
	stack = splice(stack, first, 0, "<p>")
	stack = append(stack, "</p>")
	stack = splice(stack, first, len(stack)-first, resolveInline(stack[first:])...)
	return reduce(stack, first)
}
