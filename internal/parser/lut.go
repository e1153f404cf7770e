package parser

import (
	"slices"
	"strings"

	"blif/internal/ast"
	"blif/internal/errors"
)

// parseLut parses a `.names` statement: the port line already tokenised in
// stmt, then every following line up to the next statement as a table row.
// Inputs tied to $true or $false are folded out of the table.
func parseLut(c *cursor, stmt statement) (*ast.Lut, error) {
	if len(stmt.args) == 0 {
		return nil, parseError(errors.MissingField(kwNames, "output net", stmt.keywordPos()))
	}

	ports := stmt.args
	inputs := make([]ast.Net, len(ports)-1)
	for i, p := range ports[:len(ports)-1] {
		inputs[i] = ast.ParseNet(p.text)
	}
	output := ports[len(ports)-1].text

	var table [][]uint8
	for !c.atEnd() {
		if strings.HasPrefix(strings.TrimLeft(c.peek(), " \t"), ".") {
			break
		}
		line, pos := c.next()
		if isBlank(line) {
			continue
		}
		row, err := parseRow(newStatement(line, pos), len(inputs))
		if err != nil {
			return nil, err
		}
		table = append(table, row)
	}

	var constant []int
	for i, in := range inputs {
		if in.IsConst() {
			constant = append(constant, i)
		}
	}
	// Descending, so earlier indices stay valid
	for _, col := range slices.Backward(constant) {
		for r := range table {
			table[r] = slices.Delete(table[r], col, col+1)
		}
		inputs = slices.Delete(inputs, col, col+1)
	}

	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
	}

	return &ast.Lut{
		Pos:    stmt.keywordPos(),
		Inputs: names,
		Output: output,
		Table:  table,
	}, nil
}

// parseRow decodes one truth-table row. The row is tokenised like a
// statement, so keyword holds the input pattern and args[0] the output
// column. A LUT without inputs has rows made of the output column alone.
func parseRow(row statement, width int) ([]uint8, error) {
	pattern := field{text: row.keyword, col: row.kwCol}
	var out field
	switch {
	case len(row.args) > 0:
		out = row.args[0]
	case width == 0:
		out, pattern = pattern, field{col: row.kwCol}
	default:
		return nil, parseError(errors.MissingField("truth-table row", "output column", row.at(row.kwCol)))
	}

	bits, err := decodeBits(row, pattern)
	if err != nil {
		return nil, err
	}
	if len(bits) != width {
		return nil, parseError(errors.RowWidth(len(bits), width, row.at(pattern.col)))
	}

	// The output column is validated but not kept: every row is on-set
	if _, err := decodeBits(row, out); err != nil {
		return nil, err
	}
	if len(out.text) != 1 {
		return nil, parseError(errors.NewError(errors.ErrorInvalidBit,
			"output column must be a single 0 or 1", row.at(out.col)).WithLength(len(out.text)).Build())
	}

	return bits, nil
}

func decodeBits(row statement, f field) ([]uint8, error) {
	bits := make([]uint8, len(f.text))
	for i := 0; i < len(f.text); i++ {
		switch ch := f.text[i]; ch {
		case '0', '1':
			bits[i] = ch - '0'
		default:
			return nil, parseError(errors.InvalidBit(ch, row.at(f.col+i)))
		}
	}
	return bits, nil
}
