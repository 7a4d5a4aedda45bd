package texit

import "strings"

// Transform rewrites one input line into TeX markup. It is total over all
// strings: any input, including the empty string, yields output and no
// error. A trailing line ending is not part of the transformed text; the
// caller appends its own newline.
func Transform(line string, opts ...Option) string {
	cfg := applyOptions(opts)
	return transformLine(line, cfg)
}

func transformLine(line string, cfg config) string {
	marker, text, found := parseLine(line)
	return expand(marker, text, found, cfg)
}

// parseLine splits a line into an optional leading marker, the text after
// any separating spaces, and whether a marker was present. Recognition is
// anchored at the line start and follows markerOrder, so MarkerBigBreak is
// never misread as MarkerBreak.
func parseLine(line string) (marker, text string, found bool) {
	line = trimLineEnding(line)
	for _, m := range markerOrder {
		if strings.HasPrefix(line, m) {
			return m, strings.TrimLeft(line[len(m):], " "), true
		}
	}
	return "", strings.TrimLeft(line, " "), false
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// expand dispatches on the parsed marker. The no-marker branch does not
// close the text group it opens; legacy output depends on that imbalance,
// so only balanced mode emits the closing brace there. A zero-length
// marker is kept distinct from an absent one: it stands for a recognizer
// that matched nothing at the line start, and maps whitespace-only lines
// to an empty math block.
func expand(marker, text string, found bool, cfg config) string {
	var b strings.Builder
	switch {
	case !found:
		b.WriteString(largeText)
		b.WriteString(text)
		if cfg.balanced {
			b.WriteString(braceClose)
		}
		b.WriteString(endSlash)
	case marker == MarkerBreak:
		b.WriteString(expansions[MarkerBreak])
	case marker == MarkerBigBreak:
		b.WriteString(expansions[MarkerBigBreak])
	case marker == "" && text != "":
		b.WriteString(largeText)
		b.WriteString(text)
		b.WriteString(braceClose)
		b.WriteString(endSlash)
	case marker == "":
		b.WriteString(expansions[MarkerBreak])
	default:
		b.WriteString(expansions[marker])
		b.WriteString(text)
		b.WriteString(braceClose)
		if needsSecondClose[marker] {
			b.WriteString(braceClose)
		} else {
			b.WriteString(endSlash)
		}
	}
	return b.String()
}
