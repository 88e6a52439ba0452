package mdh

import "strings"

// resource is the parsed target behind a link or image construct. Absent
// fields are tracked separately from empty ones; consumed is the index,
// relative to the parsed slice, of the last slot the parse examined.
type resource struct {
	src      string
	alt      string
	title    string
	hasSrc   bool
	hasAlt   bool
	hasTitle bool
	consumed int
}

// parseResource reads a [alt](src "title") construct from the head of slice.
// The (src "title") part is optional; a bare [alt] is still a valid
// construct, with consumed pointing just past the closing bracket. The
// second return is false when the slice is too short, the alt text is
// unterminated, or an opened (...) never closes.
func parseResource(slice []string) (resource, bool) {
	var res resource
	if len(slice) < 3 {
		return res, false
	}
	if slice[0] != "[" {
		return res, false
	}

	var alt strings.Builder
	i := 1
	closed := false
	for ; i < len(slice); i++ {
		if slice[i] == "]" {
			closed = true
			break
		}
		alt.WriteString(slice[i])
		res.hasAlt = true
	}
	if !closed {
		return res, false
	}
	res.alt = strings.TrimSpace(alt.String())

	i++
	if i >= len(slice) || slice[i] != "(" {
		res.consumed = i
		return res, true
	}

	var src, title strings.Builder
	inTitle := false
	titleDone := false
	closed = false
	for i++; i < len(slice); i++ {
		tok := slice[i]
		if tok == ")" {
			closed = true
			break
		}
		if tok == `"` {
			if inTitle {
				inTitle = false
				titleDone = true
			} else if !titleDone {
				inTitle = true
				res.hasTitle = true
			}
			continue
		}
		switch {
		case inTitle:
			title.WriteString(tok)
		case !titleDone:
			src.WriteString(tok)
			res.hasSrc = true
		}
	}
	if !closed {
		return res, false
	}
	res.src = strings.TrimSpace(src.String())
	res.title = strings.TrimSpace(title.String())
	res.consumed = i
	return res, true
}
