package mdh

import "testing"

func TestParseResourceAltOnly(t *testing.T) {
	res, ok := parseResource([]string{"[", "alt text", "]"})
	if !ok {
		t.Fatalf("expected valid alt-only resource")
	}
	if !res.hasAlt || res.alt != "alt text" {
		t.Fatalf("unexpected alt: %+v", res)
	}
	if res.hasSrc || res.hasTitle {
		t.Fatalf("expected absent src/title: %+v", res)
	}
	if res.consumed != 3 {
		t.Fatalf("consumed=%d want 3 (just past the bracket)", res.consumed)
	}
}

func TestParseResourceFull(t *testing.T) {
	res, ok := parseResource([]string{"[", "a", "]", "(", "s", ")"})
	if !ok {
		t.Fatalf("expected valid resource")
	}
	if res.alt != "a" || res.src != "s" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.hasTitle {
		t.Fatalf("expected absent title: %+v", res)
	}
	if res.consumed != 5 {
		t.Fatalf("consumed=%d want 5", res.consumed)
	}
}

func TestParseResourceTitled(t *testing.T) {
	res, ok := parseResource([]string{"[", "a", "]", "(", "s ", `"`, "T", `"`, ")"})
	if !ok {
		t.Fatalf("expected valid resource")
	}
	if res.src != "s" || res.title != "T" {
		t.Fatalf("unexpected src/title: %+v", res)
	}
	if res.consumed != 8 {
		t.Fatalf("consumed=%d want 8", res.consumed)
	}
}

func TestParseResourceMultiTokenFields(t *testing.T) {
	res, ok := parseResource([]string{"[", "logo", "]", "(", "http", ":", "//a", ".", "png", ")"})
	if !ok {
		t.Fatalf("expected valid resource")
	}
	if res.src != "http://a.png" {
		t.Fatalf("src=%q want %q", res.src, "http://a.png")
	}
}

func TestParseResourceEmptyAlt(t *testing.T) {
	res, ok := parseResource([]string{"[", "]", "(", "s", ")"})
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if res.hasAlt {
		t.Fatalf("expected absent alt: %+v", res)
	}
	if !res.hasSrc || res.src != "s" {
		t.Fatalf("expected src: %+v", res)
	}
}

func TestParseResourceFailures(t *testing.T) {
	cases := [][]string{
		{"[", "a"},                     // too short
		{"x", "a", "]"},                // no opening bracket
		{"[", "a", "("},                // unterminated alt
		{"[", "a", "]", "(", "s"},      // unterminated construct
		{"[", "a", "]", "(", `"`, "T"}, // unterminated title
	}
	for _, slice := range cases {
		if _, ok := parseResource(slice); ok {
			t.Fatalf("expected failure for %q", slice)
		}
	}
}
