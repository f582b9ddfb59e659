// Package random generates well-formed RPN formulas from an entropy
// source. Generation works backward from the root: the formula is
// prepended token by token while tracking how many operands are still
// owed, and stops when the count reaches zero.
package random

import (
	"fmt"
	"io"
	"os"
)

const entropyDevice = "/dev/urandom"

var binaryOps = []byte{'&', '|', '^', '>', '='}

// Generator draws random bytes from r one at a time.
type Generator struct {
	r io.Reader
}

// New opens the platform entropy device. A failure here aborts only
// the random-formula path; callers fall back to explicit input.
func New() (*Generator, error) {
	f, err := os.Open(entropyDevice)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", entropyDevice, err)
	}
	return &Generator{r: f}, nil
}

// NewFromReader builds a generator over an arbitrary byte source.
// Tests inject deterministic readers here.
func NewFromReader(r io.Reader) *Generator {
	return &Generator{r: r}
}

func (g *Generator) pick(pool []byte) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(g.r, buf[:]); err != nil {
		return 0, fmt.Errorf("reading entropy: %w", err)
	}
	return pool[int(buf[0])%len(pool)], nil
}

// Formula produces a well-formed formula. letters is the number of
// distinct variables to draw leaves from; zero selects the constants
// '0' and '1' instead. size caps growth: once the formula holds that
// many tokens, only leaves are drawn until every operand is paid for.
func (g *Generator) Formula(letters, size int) (string, error) {
	leaves := []byte{'0', '1'}
	if letters > 0 {
		if letters > 26 {
			letters = 26
		}
		leaves = leaves[:0]
		for i := 0; i < letters; i++ {
			leaves = append(leaves, 'A'+byte(i))
		}
	}
	mixed := make([]byte, 0, len(binaryOps)+1+len(leaves))
	mixed = append(mixed, binaryOps...)
	mixed = append(mixed, '!')
	mixed = append(mixed, leaves...)

	var rpn []byte
	needed := 1
	for needed > 0 {
		var pool []byte
		switch {
		case len(rpn) == 0:
			pool = binaryOps
		case needed <= 3 && len(rpn) < size:
			pool = mixed
		default:
			pool = leaves
		}
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		rpn = append([]byte{c}, rpn...)
		needed--
		switch c {
		case '!':
			needed++
		case '&', '|', '^', '>', '=':
			needed += 2
		}
	}
	return string(rpn), nil
}
