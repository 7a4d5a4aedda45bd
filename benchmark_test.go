package texit

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func BenchmarkTransform(b *testing.B) {
	lines := []string{
		"-bf Heading line",
		"-bp a bullet point with some text",
		"-und underlined text",
		"plain text without any marker at all",
		"-br",
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Transform(lines[i%len(lines)])
	}
}

func BenchmarkConvertNotes(b *testing.B) {
	data, err := os.ReadFile("testdata/notes.txt")
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_ = Convert(ConvertRequest{
			Reader: reader,
			Writer: io.Discard,
		})
	}
}
