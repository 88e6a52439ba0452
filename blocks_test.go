package mdh

import "testing"

func TestHeadingLevels(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"# One\n", "<h1> One</h1>\n"},
		{"## Two\n", "<h2> Two</h2>\n"},
		{"###### Six\n", "<h6> Six</h6>\n"},
	}
	for _, tc := range cases {
		if got := Convert(tc.in); got != tc.want {
			t.Fatalf("Convert(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestHeadingLevelCapped(t *testing.T) {
	got := Convert("####### H\n")
	want := "<h6> H</h6>\n"
	if got != want {
		t.Fatalf("capped heading: got %q want %q", got, want)
	}
}

func TestHeadingResolvesInlineMarkup(t *testing.T) {
	got := Convert("# A *b*\n")
	want := "<h1> A <i>b</i></h1>\n"
	if got != want {
		t.Fatalf("heading inline: got %q want %q", got, want)
	}
}

func TestParagraphs(t *testing.T) {
	got := Convert("a\n\nb\n")
	want := "<p>a</p>\n\n<p>b</p>\n"
	if got != want {
		t.Fatalf("paragraphs: got %q want %q", got, want)
	}
}

func TestSoftLineBreakMergesParagraph(t *testing.T) {
	got := Convert("a\nb\n")
	want := "<p>a b</p>\n"
	if got != want {
		t.Fatalf("soft break: got %q want %q", got, want)
	}
}

func TestParagraphLinkRendering(t *testing.T) {
	got := Convert("[text](http://x \"T\")\n")
	want := `<p><a href="http://x" title="T">text</a></p>` + "\n"
	if got != want {
		t.Fatalf("link paragraph: got %q want %q", got, want)
	}
}

func TestBlockImage(t *testing.T) {
	got := Convert("![logo](a.png)\n")
	want := `<img src="a.png" alt="logo" title="logo" />` + "\n"
	if got != want {
		t.Fatalf("block image: got %q want %q", got, want)
	}
}

func TestBlockImageTitled(t *testing.T) {
	got := Convert("![logo](a.png \"Logo\")\n")
	want := `<img src="a.png" alt="logo" title="Logo" />` + "\n"
	if got != want {
		t.Fatalf("titled block image: got %q want %q", got, want)
	}
}

// An image without alt text is dropped outright, unlike an inline link where
// alt alone can carry the construct.
func TestBlockImageStrictness(t *testing.T) {
	cases := []string{"![](x)\n", "![a]\n", "![a]()\n"}
	for _, in := range cases {
		if got := Convert(in); got != in {
			t.Fatalf("Convert(%q)=%q want untouched literal", in, got)
		}
	}
}

func TestBlockquotePassthrough(t *testing.T) {
	got := Convert("> quoted\n")
	want := "> quoted\n"
	if got != want {
		t.Fatalf("blockquote: got %q want %q", got, want)
	}
}

func TestBlankAndEdgeDocuments(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n\n", ""},
		{"   \n", "   "},
		{"\n\nx\n", "<p>x</p>\n"},
		{"no trailing newline", "no trailing newline"},
	}
	for _, tc := range cases {
		if got := Convert(tc.in); got != tc.want {
			t.Fatalf("Convert(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapedMarkerRendersAsReference(t *testing.T) {
	got := Convert("a \\* b\n")
	want := "<p>a &#42; b</p>\n"
	if got != want {
		t.Fatalf("escape: got %q want %q", got, want)
	}
}
