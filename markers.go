package texit

import "sort"

// Markers recognized at the start of an input line. The set is fixed and
// closed; lines starting with anything else are treated as plain text.
const (
	// MarkerBullet renders the line as a large-text bullet point.
	MarkerBullet = "-bp"
	// MarkerBold renders the line in large bold text.
	MarkerBold = "-bf"
	// MarkerBreak emits an empty math block; trailing text is discarded.
	MarkerBreak = "-br"
	// MarkerBigBreak emits a spaced math block; trailing text is discarded.
	MarkerBigBreak = "-bbr"
	// MarkerUnderline renders the line as underlined large text.
	MarkerUnderline = "-und"
)

// TeX fragments shared by the expansion templates.
const (
	texLarge   = `\large`
	texText    = `\text`
	braceOpen  = "{"
	braceClose = "}"

	// largeText opens a large-text group; most expansions build on it.
	largeText = texLarge + texText + braceOpen

	// endSlash continues onto the next line within the math block.
	endSlash = `\\`
)

// TexDelimiter is the math-mode delimiter line bracketing the converted
// document.
const TexDelimiter = "$$"

// expansions maps each marker to the TeX fragment it opens with.
var expansions = map[string]string{
	// a bullet point gets a space right after it
	MarkerBullet:    `\bullet` + largeText + " ",
	MarkerBold:      texLarge + `\textbf` + braceOpen,
	MarkerBreak:     TexDelimiter + TexDelimiter,
	MarkerBigBreak:  TexDelimiter + " " + TexDelimiter,
	MarkerUnderline: `\underline` + braceOpen + largeText,
}

// needsSecondClose holds the markers whose expansion opened two nested TeX
// groups; their lines end with a second closing brace instead of endSlash.
var needsSecondClose = map[string]bool{
	MarkerUnderline: true,
}

// markerOrder fixes recognition order. MarkerBigBreak precedes MarkerBreak
// so the longer marker wins; the rest share no prefixes.
var markerOrder = []string{
	MarkerBigBreak,
	MarkerBreak,
	MarkerBullet,
	MarkerBold,
	MarkerUnderline,
}

// Markers returns the recognized marker names in sorted order.
func Markers() []string {
	names := make([]string, 0, len(expansions))
	for name := range expansions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
