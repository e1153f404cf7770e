package parser

import (
	"io"
	"os"
	"strings"

	"blif/internal/ast"
	"github.com/klauspost/compress/gzip"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("blif.parser")

// minModuleLen is the shortest remaining input still worth parsing as a model
const minModuleLen = 5

// ParseFile reads a BLIF file and parses every model in it. Files ending in
// .gz are decompressed first. Read failures come back as *FileError, grammar
// failures as *ParseError.
func ParseFile(path string) ([]*ast.Module, error) {
	source, err := ReadSource(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	return ParseSource(path, source)
}

// ReadSource returns the text of a BLIF file, decompressing .gz files
func ReadSource(path string) (string, error) {
	if !strings.HasSuffix(path, ".gz") {
		source, err := os.ReadFile(path)
		return string(source), err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	source, err := io.ReadAll(zr)
	return string(source), err
}

// ParseSource parses the models of a BLIF source in file order. Any error
// aborts the parse and no models are returned.
func ParseSource(sourceName string, source string) ([]*ast.Module, error) {
	c := newCursor(sourceName, source)
	c.skipBlank()

	var modules []*ast.Module
	for len(strings.TrimSpace(c.rest())) >= minModuleLen {
		m, err := parseModule(c)
		if err != nil {
			return nil, err
		}
		log.Debugf("%s: parsed model %s with %d elements", sourceName, m.Name, len(m.Elems))
		modules = append(modules, m)
		c.skipBlank()
	}

	return modules, nil
}

// ParseStatements parses a bare sequence of body statements, as found
// between the port lines and `.end` of a model. A `.end` line stops it.
func ParseStatements(sourceName string, source string) ([]ast.Element, error) {
	elems, _, err := parseBody(newCursor(sourceName, source))
	return elems, err
}
