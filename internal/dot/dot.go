// Package dot renders expression trees as Graphviz digraphs. Node ids
// combine the node's label character with a per-character base-52
// suffix (A, B, ..., Z, a, ..., z, AA, ...), so two '&' nodes become
// "&_A" and "&_B". Edges run from parent to child in operand order.
package dot

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/formula-tools/boolkit/pkg/expr"
)

// Emit writes the digraph of the tree to w.
func Emit(w io.Writer, t *expr.Tree) error {
	e := &emitter{counts: make(map[byte]int)}
	e.sb.WriteString("digraph {\n")
	e.sb.WriteString("\tnode [shape=none];\n")
	e.sb.WriteString("\tedge [arrowhead=none];\n\n")
	e.node(t.Root)
	e.sb.WriteString("}\n")
	_, err := io.WriteString(w, e.sb.String())
	return err
}

// Render writes <name>.dot and invokes the external dot tool to
// produce <name>.dot.svg alongside it.
func Render(name string, t *expr.Tree) error {
	path := name + ".dot"
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Emit(f, t); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if out, err := exec.Command("dot", "-Tsvg", "-O", path).CombinedOutput(); err != nil {
		return fmt.Errorf("rendering %s: %v: %s", path, err, out)
	}
	return nil
}

type emitter struct {
	counts map[byte]int
	sb     strings.Builder
}

// id mints the next identifier for a label character.
func (e *emitter) id(label byte) string {
	n := e.counts[label]
	e.counts[label]++
	suffix := make([]byte, 0, 4)
	if n == 0 {
		suffix = append(suffix, 'A')
	}
	for n > 0 {
		d := byte(n % 52)
		if d < 26 {
			suffix = append(suffix, 'A'+d)
		} else {
			suffix = append(suffix, 'a'+d-26)
		}
		n /= 52
	}
	return fmt.Sprintf("%q", fmt.Sprintf("%c_%s", label, suffix))
}

// node emits one node (negations become their own '!' nodes, chained
// above the literal) and returns its id.
func (e *emitter) node(n expr.Node) string {
	if n.Not > 0 {
		id := e.id('!')
		fmt.Fprintf(&e.sb, "\t%s [label=\"!\"];\n", id)
		n.Not--
		child := e.node(n)
		fmt.Fprintf(&e.sb, "\t%s -> %s;\n", id, child)
		return id
	}
	switch lit := n.Lit.(type) {
	case expr.Const:
		label := byte('0')
		if lit {
			label = '1'
		}
		id := e.id(label)
		fmt.Fprintf(&e.sb, "\t%s [label=\"%c\"];\n", id, label)
		return id
	case expr.Var:
		id := e.id(lit.Letter())
		fmt.Fprintf(&e.sb, "\t%s [label=\"%c\"];\n", id, lit.Letter())
		return id
	default:
		bin := lit.(expr.Binary)
		id := e.id(bin.Op.Byte())
		fmt.Fprintf(&e.sb, "\t%s [label=\"%s\"];\n", id, bin.Op)
		for _, c := range bin.Children {
			child := e.node(c)
			fmt.Fprintf(&e.sb, "\t%s -> %s;\n", id, child)
		}
		return id
	}
}
