package texit

import (
	"path/filepath"
	"strings"
)

// OutputSuffix replaces the input file's extension to form the output file
// name.
const OutputSuffix = "_texit_out.txt"

// OutputPath derives the output path for an input path: the extension is
// stripped, OutputSuffix is appended, and the file stays in the same
// directory as the input.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + OutputSuffix
}
