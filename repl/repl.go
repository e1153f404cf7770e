// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"blif/internal/ast"
	"blif/internal/errors"
	"blif/internal/parser"
	"github.com/fatih/color"
	"github.com/peterh/liner"
)

const (
	PROMPT   = "blif> "
	CONTINUE = "....> "

	historyFile = ".blif_history"
	sourceName  = "<repl>"
)

// Start runs an interactive session on the terminal. Statements are collected
// until an empty line and then parsed as one block. It returns on EOF or :quit.
func Start(out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var block []string
	for {
		prompt := PROMPT
		if len(block) > 0 {
			prompt = CONTINUE
		}

		line, err := ln.Prompt(prompt)
		switch {
		case stderrors.Is(err, io.EOF):
			if len(block) > 0 {
				Eval(out, strings.Join(block, "\n"))
			}
			return nil
		case stderrors.Is(err, liner.ErrPromptAborted):
			// Ctrl-C drops the pending block
			block = block[:0]
			continue
		case err != nil:
			return err
		}

		trimmed := strings.TrimSpace(line)
		if len(block) == 0 && trimmed == ":quit" {
			return nil
		}
		if trimmed != "" {
			ln.AppendHistory(line)
			block = append(block, line)
			continue
		}
		if len(block) > 0 {
			Eval(out, strings.Join(block, "\n"))
			block = block[:0]
		}
	}
}

// Eval parses source as a statement sequence and writes each element's kind
// and BLIF form to out, or the formatted error.
func Eval(out io.Writer, source string) {
	elems, err := parser.ParseStatements(sourceName, source+"\n")
	if err != nil {
		var pe *parser.ParseError
		if stderrors.As(err, &pe) {
			fmt.Fprint(out, errors.NewErrorReporter(sourceName, source).FormatError(pe.Diagnostic()))
			return
		}
		fmt.Fprintln(out, color.RedString(err.Error()))
		return
	}

	if len(elems) == 0 {
		fmt.Fprintln(out, color.YellowString("no elements"))
		return
	}
	for _, elem := range elems {
		fmt.Fprintf(out, "%s\n%s\n", color.CyanString(ast.KindOf(elem).String()), elem.String())
	}
}
