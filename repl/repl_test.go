package repl

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestEvalPrintsElements(t *testing.T) {
	var out strings.Builder
	Eval(&out, ".names a b y\n11 1\n.latch y q re clk 0")

	assert.Equal(t, "LUT\n.names a b y\n11 1\nLATCH\n.latch y q re clk 0\n", out.String())
}

func TestEvalReportsErrors(t *testing.T) {
	var out strings.Builder
	Eval(&out, ".subckt adder a=x oops")

	got := out.String()
	assert.Contains(t, got, "error[E0105]")
	assert.Contains(t, got, "<repl>:1:19")
	assert.Contains(t, got, ".subckt adder a=x oops")
}

func TestEvalEmptyBlock(t *testing.T) {
	var out strings.Builder
	Eval(&out, ".attr keep 1")

	assert.Equal(t, "no elements\n", out.String())
}
