package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/j0zeph/texit"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

// Exit codes follow the legacy converter: 0 success, 1 usage or general
// error (and overwrite declined), 2 input file does not exist.
const (
	exitSuccess      = 0
	exitGeneral      = 1
	exitMissingInput = 2
)

const usageLine = "Usage: texit [flags] <filepath>"

func init() {
	version.SetDefaultModule("github.com/j0zeph/texit")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		outPath     string
		force       bool
		balanced    bool
		wrapWidth   int
		showVersion bool
	)

	flags := pflag.NewFlagSet("texit", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of the derived _texit_out.txt path")
	flags.BoolVarP(&force, "force", "f", false, "Overwrite an existing output file without asking")
	flags.BoolVar(&balanced, "balanced", false, "Close the text group on unmarked lines")
	flags.IntVarP(&wrapWidth, "wrap", "w", 0, "Word-wrap input lines at this width before conversion (0 disables)")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintln(stderr, usageLine)
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSuccess
		}
		return exitGeneral
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitSuccess
	}

	positional := flags.Args()
	if len(positional) != 1 {
		fmt.Fprintln(stdout, usageLine)
		return exitGeneral
	}
	inPath := positional[0]

	if _, err := os.Stat(inPath); err != nil {
		fmt.Fprintf(stdout, "`%s` does not exist.\n", inPath)
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, usageLine)
		return exitMissingInput
	}

	target := outPath
	if target == "" {
		target = texit.OutputPath(inPath)
	}

	overwritten := false
	if _, err := os.Stat(target); err == nil {
		if !force {
			if !confirmOverwrite(target, stdin, stdout, stderr) {
				fmt.Fprintln(stderr, "Nothing has changed, goodbye!")
				return exitGeneral
			}
		}
		overwritten = true
	}

	src, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return exitGeneral
	}
	if err := texit.ValidateInput(src); err != nil {
		fmt.Fprintf(stderr, "refusing to convert %s: %v\n", inPath, err)
		return exitGeneral
	}

	var opts []texit.Option
	if balanced {
		opts = append(opts, texit.WithBalanced(true))
	}
	if wrapWidth > 0 {
		opts = append(opts, texit.WithWrap(wrapWidth))
	}

	if err := writeConverted(target, src, opts); err != nil {
		fmt.Fprintf(stderr, "convert %s: %v\n", inPath, err)
		return exitGeneral
	}

	if overwritten {
		fmt.Fprintln(stdout, "Overwrite successful!")
	}
	printSummary(stdout, inPath, filepath.Base(target), target)
	return exitSuccess
}

func writeConverted(target string, src []byte, opts []texit.Option) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := texit.Convert(texit.ConvertRequest{
		Reader:  bytes.NewReader(src),
		Writer:  out,
		Options: opts,
	}); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// confirmOverwrite asks until it gets a usable answer. Empty input and an
// exhausted stdin both decline, matching the legacy prompt.
func confirmOverwrite(path string, stdin io.Reader, stdout, stderr io.Writer) bool {
	fmt.Fprintf(stdout, "\nThe output file `%s` already exists\n", path)
	if !isTerminal(stdin) {
		fmt.Fprintln(stderr, "stdin is not a terminal; use -f/--force to overwrite without asking")
	}
	reader := bufio.NewReader(stdin)
	for {
		fmt.Fprint(stdout, "Do you want to overwrite it? (y/n): ")
		line, err := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true
		case "", "n":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(stdout, "Enter a 'y' for yes, or 'n' for no.")
	}
}

func printSummary(w io.Writer, inputPath, outputName, outputPath string) {
	const rule = "--------------------"
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "input file: %s\n", inputPath)
	fmt.Fprintf(w, "output file name: %s\n", outputName)
	fmt.Fprintf(w, "output file path: %s\n", outputPath)
	fmt.Fprintln(w, rule)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
