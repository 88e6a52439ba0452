package mdh

import (
	"strings"
	"testing"
)

var benchDoc = strings.Repeat(
	"# Section\n\n"+
		"A paragraph with *emphasis*, **strong**, `code`, and a "+
		"[link](http://example.com \"Example\") in the middle.\n"+
		"A second line joined by a soft break.\n\n"+
		"![figure](http://example.com/fig.png \"Figure\")\n\n",
	32)

func BenchmarkTokenize(b *testing.B) {
	b.SetBytes(int64(len(benchDoc)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Tokenize(benchDoc)
	}
}

func BenchmarkConvert(b *testing.B) {
	b.SetBytes(int64(len(benchDoc)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Convert(benchDoc)
	}
}
