package truthtable

import (
	"fmt"
	"io"
	"strings"

	"github.com/formula-tools/boolkit/internal/ansi"
	"github.com/formula-tools/boolkit/pkg/expr"
)

// Renderer writes a formula's truth table as a Markdown-like grid:
// a header of variable letters plus '=', a '---' separator, then one
// row per assignment in canonical order.
type Renderer struct {
	// Workers is the number of goroutines formatting rows. Values
	// below 2 select the serial path. Each worker parses its own copy
	// of the formula: trees share their variable cells internally, so
	// a shared tree would need a lock around every binding.
	Workers int
	// Color enables ANSI escapes: red for 0, green for 1, blue for
	// the column separators.
	Color bool
}

// Render writes the table of the given formula to w.
func (r Renderer) Render(w io.Writer, formula string) error {
	tree, err := expr.Parse(formula)
	if err != nil {
		return err
	}
	letters := tree.Letters()
	rows := 1 << len(letters)
	if err := r.writeHeader(w, letters); err != nil {
		return err
	}
	if r.Workers < 2 || rows < 2*r.Workers {
		for i := 0; i < rows; i++ {
			bind(tree, letters, i)
			if _, err := io.WriteString(w, r.formatRow(letters, i, tree.Eval())); err != nil {
				return err
			}
		}
		return nil
	}
	return r.renderParallel(w, formula, letters, rows)
}

// renderParallel deals each worker a half-open slice of assignment
// indices. Workers send formatted rows on bounded channels; the main
// goroutine drains the channels in worker order, so rows come out
// strictly ordered by assignment index.
func (r Renderer) renderParallel(w io.Writer, formula string, letters []byte, rows int) error {
	workers := r.Workers
	chunk := (rows + workers - 1) / workers
	outs := make([]chan string, workers)
	for k := 0; k < workers; k++ {
		lo := k * chunk
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		out := make(chan string, 16)
		outs[k] = out
		go func(lo, hi int, out chan<- string) {
			defer close(out)
			tree, err := expr.Parse(formula)
			if err != nil {
				return // already parsed once by Render
			}
			for i := lo; i < hi; i++ {
				bind(tree, letters, i)
				out <- r.formatRow(letters, i, tree.Eval())
			}
		}(lo, hi, out)
	}
	for _, out := range outs {
		for row := range out {
			if _, err := io.WriteString(w, row); err != nil {
				// Keep draining so the workers can exit.
				for range out {
				}
				for _, rest := range outs {
					for range rest {
					}
				}
				return err
			}
		}
	}
	return nil
}

func (r Renderer) sep() string {
	if r.Color {
		return ansi.Blue + "|" + ansi.Reset
	}
	return "|"
}

func (r Renderer) cell(b bool) string {
	if b {
		if r.Color {
			return ansi.Green + "1" + ansi.Reset
		}
		return "1"
	}
	if r.Color {
		return ansi.Red + "0" + ansi.Reset
	}
	return "0"
}

func (r Renderer) writeHeader(w io.Writer, letters []byte) error {
	sep := r.sep()
	var sb strings.Builder
	for _, letter := range letters {
		fmt.Fprintf(&sb, "%s %c ", sep, letter)
	}
	sb.WriteString(sep + " = " + sep + "\n")
	for range letters {
		sb.WriteString(sep + "---")
	}
	sb.WriteString(sep + "---" + sep + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r Renderer) formatRow(letters []byte, i int, result bool) string {
	sep := r.sep()
	n := len(letters)
	var sb strings.Builder
	for j := range letters {
		sb.WriteString(sep + " " + r.cell((i>>(n-j-1))&1 == 1) + " ")
	}
	sb.WriteString(sep + " " + r.cell(result) + " " + sep + "\n")
	return sb.String()
}
