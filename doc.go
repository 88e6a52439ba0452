// Package mdh converts a restricted markdown dialect into HTML fragments.
//
// The converter is a pure text pipeline: a lexical tokenizer splits input
// into literal and marker runs, a stack-based inline resolver reduces
// delimiter pairs into tags, and a block resolver classifies each line as a
// heading, image, blockquote, or paragraph. Malformed markup degrades to
// literal text; the pipeline is total over all string inputs and never
// fails.
//
// Core properties:
//   - Pure conversion: same input, same output, no state between calls
//   - Single-pass stack reduction instead of an AST
//   - Unmatched delimiters render as their literal marker characters
//
// Example:
//
//	html := mdh.Convert("# Hello\n\nMarkdown in, *HTML* out.\n")
//	fmt.Print(html)
//
// Render wraps Convert for io.Reader/io.Writer pairs, and HTTPRender fetches
// the markdown source over HTTP(S) first.
package mdh
