package mdh

import "strings"

// delimTags maps a canonical delimiter run to its tag pair. Runs with no
// entry here (a lone ~) never match and stay literal.
var delimTags = map[string][2]string{
	"**": {"<b>", "</b>"},
	"*":  {"<i>", "</i>"},
	"__": {"<u>", "</u>"},
	"_":  {"<sub>", "</sub>"},
	"~~": {"<s>", "</s>"},
	"`":  {"<code>", "</code>"},
	"^":  {"<sup>", "</sup>"},
}

// delimWidth is the canonical width a marker run of the given character is
// normalized to before matching.
var delimWidth = map[byte]int{'*': 2, '_': 2, '~': 2, '`': 1, '^': 1}

// resolveInline reduces inline delimiter tokens into HTML fragments with a
// single pass over a mutable stack. A marker that matches an earlier stack
// element becomes a tag pair and the span between them collapses into one
// element; an unmatched marker stays on the stack as literal text and
// remains a candidate opening delimiter. There is no auto-closing at end of
// input.
func resolveInline(tokens []string) []string {
	// Oversized-run splitting splices into the token stream, so work on a
	// private copy.
	input := append(make([]string, 0, len(tokens)), tokens...)
	stack := make([]string, 0, len(tokens))

	for i := 0; i < len(input); i++ {
		tok := input[i]
		if tok == "" {
			continue
		}
		if width, ok := delimWidth[tok[0]]; ok {
			if len(tok) > width {
				input = normalizeRun(input, i, width, stack)
				i--
				continue
			}
			pair, ok := delimTags[tok]
			if !ok {
				stack = append(stack, tok)
				continue
			}
			m := lastIndex(stack, tok)
			if m < 0 {
				stack = append(stack, tok)
				continue
			}
			stack[m] = pair[0]
			stack = append(stack, pair[1])
			stack = reduce(stack, m)
			continue
		}
		switch tok {
		case "]":
			stack = append(stack, tok)
			// A following ( defers resolution until its ) arrives.
			if i+1 < len(input) && input[i+1] == "(" {
				continue
			}
			stack = resolveLink(stack)
		case ")":
			stack = append(stack, tok)
			stack = resolveLink(stack)
		default:
			stack = append(stack, tok)
		}
	}
	return stack
}

// normalizeRun splits the oversized marker run at input[i] into
// canonical-width chunks and splices them back into the token stream. The
// chunk order is reversed when the run's tail pairs with a nearer open
// delimiter on the stack than its head does, which minimizes crossed spans.
func normalizeRun(input []string, i, width int, stack []string) []string {
	chunks := splitFixed(input[i], width)
	head := lastIndex(stack, chunks[0])
	tail := lastIndex(stack, chunks[len(chunks)-1])
	if tail > head {
		for l, r := 0, len(chunks)-1; l < r; l, r = l+1, r-1 {
			chunks[l], chunks[r] = chunks[r], chunks[l]
		}
	}
	return splice(input, i, 1, chunks...)
}

// resolveLink renders the nearest open [ construct on the stack as an
// anchor. Image markers (a ! right before the [) are finalized at block
// scope instead; invalid constructs stay as literal stack content.
func resolveLink(stack []string) []string {
	b := lastIndex(stack, "[")
	if b < 0 {
		return stack
	}
	if b > 0 && strings.HasSuffix(stack[b-1], "!") {
		return stack
	}
	res, ok := parseResource(stack[b:])
	if !ok || (!res.hasSrc && !res.hasAlt) {
		return stack
	}
	href := res.src
	if !res.hasSrc {
		href = res.alt
	}
	title := res.title
	switch {
	case res.hasTitle:
	case res.hasSrc:
		title = res.src
	default:
		title = res.alt
	}
	anchor := `<a href="` + href + `" title="` + title + `">` + res.alt + `</a>`
	end := b + res.consumed + 1
	if end > len(stack) {
		end = len(stack)
	}
	return splice(stack, b, end-b, anchor)
}

// lastIndex scans the stack from the end backward for an element equal to s.
func lastIndex(stack []string, s string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == s {
			return i
		}
	}
	return -1
}

// reduce collapses stack[m:] into a single concatenated element. No token
// boundary survives past a reduction.
func reduce(stack []string, m int) []string {
	if m < 0 || m >= len(stack)-1 {
		return stack
	}
	var b strings.Builder
	for _, s := range stack[m:] {
		b.WriteString(s)
	}
	return append(stack[:m], b.String())
}

// splice replaces s[i:i+n] with repl.
func splice(s []string, i, n int, repl ...string) []string {
	out := make([]string, 0, len(s)-n+len(repl))
	out = append(out, s[:i]...)
	out = append(out, repl...)
	out = append(out, s[i+n:]...)
	return out
}
