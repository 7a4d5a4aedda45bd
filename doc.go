// Package texit converts marker-annotated plain text to TeX markup.
//
// Input lines may start with one of a fixed set of markers (-bp, -bf, -br,
// -bbr, -und) that select the TeX expansion for the line; lines without a
// marker become large text. The converted document is bracketed by $$
// math-mode delimiter lines.
//
// Core properties:
//   - Line-oriented: one input line, one output line
//   - Transform is a total, pure function over all strings
//   - Fixed, closed marker table; no runtime configuration
//
// Example:
//
//	reader := strings.NewReader("-bf Title\n-bp first point\n")
//	err := texit.Convert(texit.ConvertRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Conversion can be customized with Options such as balanced brace groups
// for unmarked lines.
package texit
