// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"blif/internal/ast"
	"blif/internal/errors"
	"blif/internal/parser"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

// reportable is implemented by parser.ParseError and parser.FileError
type reportable interface {
	Diagnostic() errors.CompilerError
}

func main() {
	summary := flag.Bool("summary", false, "print per-model element counts instead of the netlist")
	verbose := flag.Int("v", 0, "log verbosity (1 = info, 2 = debug)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	explain := flag.String("explain", "", "describe an error code, e.g. E0102")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: blif [flags] <file.blif[.gz]>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	commonlog.Configure(*verbose, nil)

	switch {
	case *showVersion:
		fmt.Println("blif", version)
		return
	case *explain != "":
		os.Exit(explainCode(*explain))
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	modules, err := parser.ParseFile(path)
	formattedDuration := formatDuration(time.Since(startTime))
	if err != nil {
		fmt.Fprint(os.Stderr, report(path, err))
		color.Red("Parsing failed after %s", formattedDuration)
		os.Exit(1)
	}

	if *summary {
		printSummary(modules)
	} else {
		for _, m := range modules {
			fmt.Print(m.String())
		}
	}
	color.Green("Successfully parsed %d models from %s in %s", len(modules), path, formattedDuration)
}

// report renders err with a source excerpt when the source can be read back
func report(path string, err error) string {
	var r reportable
	if !stderrors.As(err, &r) {
		return err.Error() + "\n"
	}
	diag := r.Diagnostic()

	source := ""
	var pe *parser.ParseError
	if stderrors.As(err, &pe) {
		source, _ = parser.ReadSource(path)
	}
	return errors.NewErrorReporter(path, source).FormatError(diag)
}

func printSummary(modules []*ast.Module) {
	bold := color.New(color.Bold).SprintFunc()
	for _, m := range modules {
		stats := m.Stats()
		fmt.Printf("%s  inputs=%d outputs=%d", bold(m.Name), len(m.Inputs), len(m.Outputs))
		for _, kind := range []ast.NodeType{ast.LUT, ast.GATE, ast.LATCH, ast.SUBCKT} {
			fmt.Printf(" %s=%d", strings.ToLower(kind.String()), stats[kind])
		}
		fmt.Println()
	}
}

func explainCode(code string) int {
	description := errors.GetErrorDescription(code)
	if description == "Unknown error code" {
		color.Red("Unknown error code %s", code)
		return 1
	}
	fmt.Printf("%s [%s]: %s\n", code, errors.GetErrorCategory(code), description)
	return 0
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
