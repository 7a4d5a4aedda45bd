package texit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Convert reads annotated text line by line, transforms each line, and
// writes the TeX document bracketed by TexDelimiter lines. An input of N
// lines yields exactly N+2 output lines unless wrapping splits lines.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	cfg := applyOptions(req.Options)

	w := bufio.NewWriter(req.Writer)
	if err := writeLine(w, TexDelimiter); err != nil {
		return fmt.Errorf("convert: write output: %w", err)
	}

	r := bufio.NewReader(req.Reader)
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("convert: read input: %w", err)
		}
		if line != "" {
			for _, piece := range splitWrapped(line, cfg.wrap) {
				if werr := writeLine(w, transformLine(piece, cfg)); werr != nil {
					return fmt.Errorf("convert: write output: %w", werr)
				}
			}
		}
		if err == io.EOF {
			break
		}
	}

	if err := writeLine(w, TexDelimiter); err != nil {
		return fmt.Errorf("convert: write output: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("convert: write output: %w", err)
	}
	return nil
}

// splitWrapped word-wraps one raw input line at width and returns the
// resulting lines. Width zero or less passes the line through untouched.
func splitWrapped(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}
	return strings.Split(wordwrap.String(trimLineEnding(line), width), "\n")
}

func writeLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
